package publication

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
	"github.com/m04kA/SMC-SlotBooking/pkg/metrics"
)

const (
	msgPublishRejected    = "Failed to create appointment."
	msgPublishFailed      = "Something went wrong. Please try again."
	msgConfirmationFormat = "Availability saved! Share your Appointment ID (%s) with others to let them book a slot."
)

// Dependencies внешние зависимости сессии
type Dependencies struct {
	Scheduler SchedulerClient
	Metrics   Metrics
	Logger    Logger
}

// Session форма публикации недельной доступности провайдера.
// Неделя хранится одним значением и заменяется целиком при каждом изменении дня
type Session struct {
	id   string
	deps Dependencies

	mu           sync.Mutex
	state        State
	providerID   string
	slotDuration int
	week         domain.WeeklyAvailability
	formError    *ValidationError
	submitError  string
	confirmation string
}

// NewSession создает пустую форму: все дни недоступны
func NewSession(id string, deps Dependencies) *Session {
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	return &Session{
		id:    id,
		deps:  deps,
		state: StateEditing,
	}
}

func (s *Session) ID() string {
	return s.id
}

// SetProviderID задает Appointment ID, под которым будет опубликована доступность
func (s *Session) SetProviderID(providerID string) (Snapshot, error) {
	return s.mutate(func() error {
		s.providerID = providerID
		return nil
	})
}

// SetSlotDuration длительность слота в минутах; проверяется при отправке
func (s *Session) SetSlotDuration(minutes int) (Snapshot, error) {
	return s.mutate(func() error {
		s.slotDuration = minutes
		return nil
	})
}

// SetDay заменяет окно одного дня недели
func (s *Session) SetDay(day domain.Weekday, window domain.AvailabilityWindow) (Snapshot, error) {
	return s.mutate(func() error {
		week, err := s.week.Replace(day, window)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.week = week
		return nil
	})
}

// ToggleDay переключает доступность дня, время сохраняется
func (s *Session) ToggleDay(day domain.Weekday) (Snapshot, error) {
	return s.mutate(func() error {
		window := s.week.Window(day)
		window.IsAvailable = !window.IsAvailable
		week, err := s.week.Replace(day, window)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.week = week
		return nil
	})
}

// Submit проверяет форму и публикует все 7 дней одним документом
func (s *Session) Submit(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if err := s.checkMutableLocked(); err != nil {
		s.mu.Unlock()
		s.deps.Metrics.RecordPublication(metrics.OutcomeRejected)
		return s.Snapshot(), err
	}

	doc := &domain.AvailabilityDocument{
		ProviderID:          s.providerID,
		SlotDurationMinutes: s.slotDuration,
		Week:                s.week,
	}
	if verr := validateDocument(doc); verr != nil {
		s.formError = verr
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.deps.Metrics.RecordPublication(metrics.OutcomeRejected)
		s.deps.Logger.Warn("PublicationSession %s: submission blocked on %s: %s", s.id, verr.Field, verr.Message)
		return snap, verr
	}

	s.formError = nil
	s.submitError = ""
	s.state = StateSubmitting
	s.mu.Unlock()

	s.deps.Logger.Info("PublicationSession %s: publishing availability for provider=%s, slot=%dmin, days=%v",
		s.id, doc.ProviderID, doc.SlotDurationMinutes, doc.Week.AvailableWeekdays().Names())

	err := s.deps.Scheduler.CreateAppointment(context.WithoutCancel(ctx), toCreateAppointmentRequest(doc))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateFailed
		s.submitError = failureMessage(err)
		s.deps.Metrics.RecordPublication(metrics.OutcomeFailed)
		s.deps.Logger.Warn("PublicationSession %s: publish rejected: %v", s.id, err)
		return s.snapshotLocked(), fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	s.state = StatePublished
	s.confirmation = fmt.Sprintf(msgConfirmationFormat, doc.ProviderID)
	s.deps.Metrics.RecordPublication(metrics.OutcomeSucceeded)
	s.deps.Logger.Info("PublicationSession %s: published availability for provider=%s", s.id, doc.ProviderID)

	return s.snapshotLocked(), nil
}

// Snapshot текущее состояние формы
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) mutate(apply func() error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMutableLocked(); err != nil {
		return s.snapshotLocked(), err
	}
	if err := apply(); err != nil {
		return s.snapshotLocked(), err
	}
	return s.snapshotLocked(), nil
}

func (s *Session) checkMutableLocked() error {
	switch s.state {
	case StatePublished:
		return ErrSessionCompleted
	case StateSubmitting:
		return ErrSubmissionInFlight
	default:
		return nil
	}
}

func (s *Session) snapshotLocked() Snapshot {
	days := make([]DayWindow, 0, domain.DaysPerWeek)
	for _, day := range domain.DisplayOrder {
		days = append(days, DayWindow{Day: day, Window: s.week.Window(day)})
	}

	snap := Snapshot{
		ID:                  s.id,
		State:               s.state,
		ProviderID:          s.providerID,
		SlotDurationMinutes: s.slotDuration,
		Days:                days,
		SubmitError:         s.submitError,
		Confirmation:        s.confirmation,
		CanSubmit:           s.state == StateEditing || s.state == StateFailed,
	}
	if s.formError != nil {
		verr := *s.formError
		snap.FormError = &verr
	}
	return snap
}

// failureMessage detail сервера, иначе общий текст; сетевые ошибки отдельно
func failureMessage(err error) string {
	var serverErr *scheduler.ServerError
	if errors.As(err, &serverErr) {
		if serverErr.Detail != "" {
			return serverErr.Detail
		}
		return msgPublishRejected
	}
	return msgPublishFailed
}

func toCreateAppointmentRequest(doc *domain.AvailabilityDocument) *scheduler.CreateAppointmentRequest {
	availability := make(map[string]scheduler.DayAvailability, domain.DaysPerWeek)
	for _, day := range domain.DisplayOrder {
		window := doc.Week.Window(day)
		availability[day.String()] = scheduler.DayAvailability{
			IsAvailable: window.IsAvailable,
			StartTime:   window.StartTime.String(),
			EndTime:     window.EndTime.String(),
		}
	}

	return &scheduler.CreateAppointmentRequest{
		UserID:              strings.TrimSpace(doc.ProviderID),
		SlotDurationMinutes: doc.SlotDurationMinutes,
		Availability:        availability,
	}
}
