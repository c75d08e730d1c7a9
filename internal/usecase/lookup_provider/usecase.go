package lookup_provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
	"github.com/m04kA/SMC-SlotBooking/internal/service/booking"
	"github.com/m04kA/SMC-SlotBooking/pkg/metrics"
)

// UseCase use case для проверки провайдера и открытия сессии бронирования
type UseCase struct {
	scheduler    SchedulerClient
	store        SessionStore
	sessionDeps  booking.Dependencies
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// sessionDeps передаются каждой новой сессии бронирования
func NewUseCase(
	schedulerClient SchedulerClient,
	store SessionStore,
	sessionDeps booking.Dependencies,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		scheduler:    schedulerClient,
		store:        store,
		sessionDeps:  sessionDeps,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case: ровно один запрос available-weekdays, без повторов.
// Сессия создается только после успешного ответа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	providerID := strings.TrimSpace(req.ProviderID)
	if providerID == "" {
		uc.metrics.RecordProviderLookup(metrics.OutcomeRejected)
		uc.logger.Warn("LookupProvider: empty provider id")
		return nil, fmt.Errorf("%w: provider id is empty", ErrInvalidInput)
	}

	uc.logger.Info("LookupProvider: provider=%s", providerID)

	// 2. Получаем ограничение по дням недели
	weekdays, err := uc.scheduler.GetAvailableWeekdays(ctx, providerID)
	if err != nil {
		if errors.Is(err, scheduler.ErrProviderNotFound) {
			uc.metrics.RecordProviderLookup(metrics.OutcomeRejected)
			uc.logger.Warn("LookupProvider: provider=%s not found: %v", providerID, err)
			return nil, fmt.Errorf("%w: %w", ErrProviderNotFound, err)
		}
		uc.metrics.RecordProviderLookup(metrics.OutcomeFailed)
		uc.logger.Error("LookupProvider: failed to get weekdays for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: %w", ErrSchedulerUnavailable, err)
	}

	// 3. Разбираем ответ: пустой список означает отсутствие ограничений
	allowed, err := domain.NewWeekdaySet(weekdays)
	if err != nil {
		uc.metrics.RecordProviderLookup(metrics.OutcomeFailed)
		uc.logger.Error("LookupProvider: invalid weekdays %v for provider=%s: %v", weekdays, providerID, err)
		return nil, fmt.Errorf("%w: %w", ErrSchedulerUnavailable, err)
	}

	// 4. "Сегодня" фиксируется один раз на всю сессию
	today := domain.NewCalendarDate(uc.timeProvider.Now())

	session := uc.store.Create(func(id string) *booking.Session {
		return booking.NewSession(id, providerID, allowed, today, uc.sessionDeps)
	})
	uc.metrics.RecordProviderLookup(metrics.OutcomeSucceeded)

	// 5. Первичная загрузка слотов на сегодня; ошибка загрузки остается в снимке сессии
	snapshot, err := session.Start(ctx)
	if err != nil {
		uc.logger.Error("LookupProvider: failed to start session %s: %v", session.ID(), err)
		if delErr := uc.store.Delete(session.ID()); delErr != nil {
			uc.logger.Warn("LookupProvider: failed to drop session %s: %v", session.ID(), delErr)
		}
		return nil, err
	}

	uc.logger.Info("LookupProvider: session %s opened for provider=%s, weekdays=%v",
		session.ID(), providerID, allowed.Names())

	return &Response{
		SessionID: session.ID(),
		Snapshot:  snapshot,
	}, nil
}
