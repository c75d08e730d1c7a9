package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	bookingSessionHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/booking_session"
	createBookingSessionHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/create_booking_session"
	getCalendarHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/get_calendar"
	getProviderReceiptsHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/get_provider_receipts"
	publicationSessionHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/publication_session"
	"github.com/m04kA/SMC-SlotBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBooking/internal/config"
	receiptRepo "github.com/m04kA/SMC-SlotBooking/internal/infra/storage/receipt"
	schedulerClient "github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
	"github.com/m04kA/SMC-SlotBooking/internal/service/booking"
	"github.com/m04kA/SMC-SlotBooking/internal/service/publication"
	"github.com/m04kA/SMC-SlotBooking/internal/service/sessions"
	getCalendarUC "github.com/m04kA/SMC-SlotBooking/internal/usecase/get_calendar"
	lookupProviderUC "github.com/m04kA/SMC-SlotBooking/internal/usecase/lookup_provider"
	"github.com/m04kA/SMC-SlotBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
	"github.com/m04kA/SMC-SlotBooking/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SlotBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Контекст фоновых задач (очистка сессий и rate limiter)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики (если включены); nil *Metrics безопасен
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал квитанций (если включен)
	var receipts *receiptRepo.Repository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		var executor dbmetrics.DBExecutor = db
		if cfg.Metrics.Enabled {
			executor = dbmetrics.Wrap(db, metricsCollector)
		}

		if err := receiptRepo.EnsureSchema(ctx, executor); err != nil {
			log.Fatal("Failed to prepare receipts schema: %v", err)
		}

		receipts = receiptRepo.NewRepository(executor)
		log.Info("Receipts journal enabled (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Инициализируем клиента внешнего API
	scheduler := schedulerClient.NewClient(cfg.Scheduler.URL, cfg.Scheduler.TimeoutDuration(), log, metricsCollector)
	log.Info("Scheduler client initialized (url=%s, timeout=%ds)", cfg.Scheduler.URL, cfg.Scheduler.Timeout)

	// Реестры сессий
	bookingSessions := sessions.NewStore[*booking.Session](sessions.KindBooking, cfg.Sessions.TTL(), log, metricsCollector)
	publicationSessions := sessions.NewStore[*publication.Session](sessions.KindPublication, cfg.Sessions.TTL(), log, metricsCollector)
	go bookingSessions.RunJanitor(ctx, cfg.Sessions.SweepInterval())
	go publicationSessions.RunJanitor(ctx, cfg.Sessions.SweepInterval())

	bookingDeps := booking.Dependencies{
		Scheduler: scheduler,
		Metrics:   metricsCollector,
		Logger:    log,
	}
	if receipts != nil {
		bookingDeps.Receipts = receipts
	}
	publicationDeps := publication.Dependencies{
		Scheduler: scheduler,
		Metrics:   metricsCollector,
		Logger:    log,
	}

	// Инициализируем use cases
	lookupProviderUseCase := lookupProviderUC.NewUseCase(scheduler, bookingSessions, bookingDeps, metricsCollector, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingSessions, log)

	// Инициализируем handlers
	createBookingSession := createBookingSessionHandler.NewHandler(lookupProviderUseCase, log)
	bookingSession := bookingSessionHandler.NewHandler(bookingSessions, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	publicationSession := publicationSessionHandler.NewHandler(publicationSessions, publicationDeps, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Сессии бронирования ---
	lookup := http.Handler(http.HandlerFunc(createBookingSession.Handle))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 10*time.Minute, log)
		go limiter.RunCleanup(ctx, time.Minute)
		lookup = limiter.Limit(lookup)
		log.Info("Provider lookup rate limit: %.2f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	api.Handle("/booking-sessions", lookup).Methods(http.MethodPost)

	api.HandleFunc("/booking-sessions/{sessionId}", bookingSession.Get).Methods(http.MethodGet)
	api.HandleFunc("/booking-sessions/{sessionId}", bookingSession.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/booking-sessions/{sessionId}/date", bookingSession.SelectDate).Methods(http.MethodPut)
	api.HandleFunc("/booking-sessions/{sessionId}/slot", bookingSession.SelectSlot).Methods(http.MethodPut)
	api.HandleFunc("/booking-sessions/{sessionId}/contact", bookingSession.UpdateContact).Methods(http.MethodPut)
	api.HandleFunc("/booking-sessions/{sessionId}/submit", bookingSession.Submit).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Сессии публикации доступности ---
	api.HandleFunc("/publication-sessions", publicationSession.Create).Methods(http.MethodPost)
	api.HandleFunc("/publication-sessions/{sessionId}", publicationSession.Get).Methods(http.MethodGet)
	api.HandleFunc("/publication-sessions/{sessionId}", publicationSession.Update).Methods(http.MethodPut)
	api.HandleFunc("/publication-sessions/{sessionId}", publicationSession.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/publication-sessions/{sessionId}/days/{weekday}", publicationSession.SetDay).Methods(http.MethodPut)
	api.HandleFunc("/publication-sessions/{sessionId}/days/{weekday}/toggle", publicationSession.ToggleDay).Methods(http.MethodPost)
	api.HandleFunc("/publication-sessions/{sessionId}/submit", publicationSession.Submit).Methods(http.MethodPost)

	// --- Журнал квитанций ---
	if receipts != nil {
		getProviderReceipts := getProviderReceiptsHandler.NewHandler(receipts, log)
		api.HandleFunc("/providers/{providerId}/receipts", getProviderReceipts.Handle).Methods(http.MethodGet)
	}

	// CORS оборачивает весь роутер: preflight OPTIONS не совпадает ни с одним маршрутом
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         cfg.CORS.MaxAge,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (booking sessions=%d, publication sessions=%d)",
		bookingSessions.Len(), publicationSessions.Len())
}
