package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
	"github.com/m04kA/SMC-SlotBooking/pkg/metrics"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

const (
	msgSlotsFetchFailed = "Failed to fetch slots"
	msgSubmitFailed     = "Something went wrong. Please try again."

	defaultReceiptTimeout = 3 * time.Second
)

// Dependencies внешние зависимости сессии; Receipts может быть nil (журнал выключен).
// ReceiptTimeout ограничивает запись квитанции, 0 - значение по умолчанию
type Dependencies struct {
	Scheduler      SchedulerClient
	Receipts       ReceiptRepository
	ReceiptTimeout time.Duration
	Metrics        Metrics
	Logger         Logger
}

// fetchTicket метка запроса слотов. Результат применяется, только если
// метка все еще совпадает с текущей: порядок завершения запросов не важен
type fetchTicket struct {
	seq  uint64
	date domain.CalendarDate
}

// Session сессия бронирования одного клиента у одного провайдера.
// Мьютекс никогда не удерживается во время сетевого вызова
type Session struct {
	id         string
	providerID string
	today      domain.CalendarDate
	allowed    domain.WeekdaySet
	deps       Dependencies

	mu           sync.Mutex
	state        State
	date         domain.CalendarDate
	slots        []types.TimeString
	selected     types.TimeString
	contact      domain.ContactDetails
	ticket       fetchTicket
	slotsError   string
	formError    *ValidationError
	submitError  string
	confirmation string
}

// NewSession создает сессию в состоянии idle с датой today.
// allowed - ограничение по дням недели от провайдера (nil - без ограничений)
func NewSession(id, providerID string, allowed domain.WeekdaySet, today domain.CalendarDate, deps Dependencies) *Session {
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	if deps.ReceiptTimeout <= 0 {
		deps.ReceiptTimeout = defaultReceiptTimeout
	}
	return &Session{
		id:         id,
		providerID: providerID,
		today:      today,
		allowed:    allowed,
		deps:       deps,
		state:      StateIdle,
		date:       today,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) ProviderID() string {
	return s.providerID
}

// Start загружает слоты на сегодня (переход idle -> slots_loading)
func (s *Session) Start(ctx context.Context) (Snapshot, error) {
	return s.selectDate(ctx, s.today, false)
}

// SelectDate меняет дату: выбор слота сбрасывается сразу, до ответа на запрос слотов
func (s *Session) SelectDate(ctx context.Context, date domain.CalendarDate) (Snapshot, error) {
	return s.selectDate(ctx, date, true)
}

func (s *Session) selectDate(ctx context.Context, date domain.CalendarDate, checkAvailability bool) (Snapshot, error) {
	s.mu.Lock()
	if err := s.checkMutableLocked(); err != nil {
		s.mu.Unlock()
		return s.Snapshot(), err
	}
	if !date.IsComplete() {
		s.mu.Unlock()
		return s.Snapshot(), fmt.Errorf("%w: incomplete date", ErrDateUnavailable)
	}
	if checkAvailability && domain.IsDateUnavailable(date, s.today, s.allowed) {
		s.mu.Unlock()
		return s.Snapshot(), fmt.Errorf("%w: %s", ErrDateUnavailable, date)
	}

	s.date = date
	s.selected = ""
	s.slots = nil
	s.slotsError = ""
	s.state = StateSlotsLoading
	s.ticket = fetchTicket{seq: s.ticket.seq + 1, date: date}
	ticket := s.ticket
	s.mu.Unlock()

	raw, err := s.deps.Scheduler.GetAvailableSlots(ctx, s.providerID, date.String())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticket != ticket || s.state != StateSlotsLoading {
		s.deps.Metrics.RecordSlotFetch(metrics.OutcomeStale)
		s.deps.Logger.Info("BookingSession %s: discarded stale slots for %s (current %s)", s.id, date, s.date)
		return s.snapshotLocked(), nil
	}

	s.state = StateSlotsReady
	if err != nil {
		s.deps.Metrics.RecordSlotFetch(metrics.OutcomeFailed)
		s.deps.Logger.Warn("BookingSession %s: failed to fetch slots for provider=%s date=%s: %v",
			s.id, s.providerID, date, err)
		s.slots = []types.TimeString{}
		s.slotsError = msgSlotsFetchFailed
		return s.snapshotLocked(), nil
	}

	s.slots = make([]types.TimeString, len(raw))
	for i, slot := range raw {
		s.slots[i] = types.TimeString(slot)
	}
	s.deps.Metrics.RecordSlotFetch(metrics.OutcomeApplied)
	s.deps.Logger.Info("BookingSession %s: %d slots for provider=%s date=%s", s.id, len(s.slots), s.providerID, date)

	return s.snapshotLocked(), nil
}

// SelectSlot выбирает один слот из загруженных, предыдущий выбор заменяется
func (s *Session) SelectSlot(slot types.TimeString) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMutableLocked(); err != nil {
		return s.snapshotLocked(), err
	}

	switch s.state {
	case StateSlotsReady, StateSlotSelected, StateSubmissionFailed:
	default:
		return s.snapshotLocked(), ErrSlotsNotReady
	}

	if !s.isOfferedLocked(slot) {
		return s.snapshotLocked(), fmt.Errorf("%w: %s on %s", ErrSlotNotOffered, slot, s.date)
	}

	s.selected = slot
	s.state = StateSlotSelected

	return s.snapshotLocked(), nil
}

// UpdateContact сохраняет контактные данные; проверяются они только при отправке
func (s *Session) UpdateContact(contact domain.ContactDetails) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMutableLocked(); err != nil {
		return s.snapshotLocked(), err
	}

	s.contact = contact

	return s.snapshotLocked(), nil
}

// Submit проверяет форму и отправляет бронирование.
// Пока идет отправка, повторный вызов возвращает ErrSubmissionInFlight без запроса
func (s *Session) Submit(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if err := s.checkMutableLocked(); err != nil {
		s.mu.Unlock()
		s.deps.Metrics.RecordBookingSubmission(metrics.OutcomeRejected)
		return s.Snapshot(), err
	}

	input := &submission{
		providerID: s.providerID,
		date:       s.date,
		slot:       s.selected,
		contact:    s.contact,
	}
	if verr := validateSubmission(input); verr != nil {
		s.formError = verr
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.deps.Metrics.RecordBookingSubmission(metrics.OutcomeRejected)
		s.deps.Logger.Warn("BookingSession %s: submission blocked on %s: %s", s.id, verr.Field, verr.Message)
		return snap, verr
	}

	req := &domain.BookingRequest{
		ProviderID: input.providerID,
		Date:       input.date,
		Time:       input.slot,
		Contact:    input.contact,
	}
	s.formError = nil
	s.submitError = ""
	s.state = StateSubmitting
	s.mu.Unlock()

	s.deps.Logger.Info("BookingSession %s: submitting provider=%s date=%s time=%s", s.id, req.ProviderID, req.Date, req.Time)

	// Отмена входящего HTTP запроса не должна оставить бронирование в неизвестном состоянии
	err := s.deps.Scheduler.BookAppointment(context.WithoutCancel(ctx), toBookAppointmentRequest(req))

	s.mu.Lock()
	if err != nil {
		s.state = StateSubmissionFailed
		s.submitError = msgSubmitFailed
		if detail := scheduler.DetailOf(err); detail != "" {
			s.submitError = detail
		}
		snap := s.snapshotLocked()
		s.mu.Unlock()

		s.deps.Metrics.RecordBookingSubmission(metrics.OutcomeFailed)
		s.deps.Logger.Warn("BookingSession %s: booking rejected: %v", s.id, err)
		return snap, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	s.state = StateSucceeded
	s.confirmation = fmt.Sprintf("Appointment booked for %s at %s.", req.Date, req.Time)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.deps.Metrics.RecordBookingSubmission(metrics.OutcomeSucceeded)
	s.deps.Logger.Info("BookingSession %s: booked provider=%s date=%s time=%s", s.id, req.ProviderID, req.Date, req.Time)

	s.recordReceipt(ctx, req)

	return snap, nil
}

// Calendar решение доступности для каждого дня месяца
func (s *Session) Calendar(year int, month time.Month) []CalendarDay {
	days := domain.MonthDays(year, month)
	cells := make([]CalendarDay, len(days))
	for i, day := range days {
		cells[i] = CalendarDay{
			Date:        day,
			Weekday:     day.Weekday(),
			Unavailable: domain.IsDateUnavailable(day, s.today, s.allowed),
		}
	}
	return cells
}

// Snapshot текущее состояние сессии
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:           s.id,
		ProviderID:   s.providerID,
		State:        s.state,
		Today:        s.today,
		Date:         s.date,
		SelectedSlot: s.selected,
		Contact:      s.contact,
		SlotsError:   s.slotsError,
		SubmitError:  s.submitError,
		Confirmation: s.confirmation,
		CanSubmit:    s.state != StateSubmitting && !s.state.IsTerminal(),
	}
	if s.allowed.IsRestricted() {
		snap.AllowedWeekdays = s.allowed.Names()
	}
	if s.slots != nil {
		snap.Slots = append([]types.TimeString(nil), s.slots...)
	}
	if s.formError != nil {
		verr := *s.formError
		snap.FormError = &verr
	}
	return snap
}

func (s *Session) checkMutableLocked() error {
	switch s.state {
	case StateSucceeded:
		return ErrSessionCompleted
	case StateSubmitting:
		return ErrSubmissionInFlight
	default:
		return nil
	}
}

func (s *Session) isOfferedLocked(slot types.TimeString) bool {
	for _, offered := range s.slots {
		if offered == slot {
			return true
		}
	}
	return false
}

// recordReceipt пишет квитанцию в журнал; ошибка журнала не меняет исход бронирования
func (s *Session) recordReceipt(ctx context.Context, req *domain.BookingRequest) {
	if s.deps.Receipts == nil {
		return
	}

	receipt := &domain.BookingReceipt{
		SessionID:  s.id,
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Time:       req.Time,
		Contact:    req.Contact,
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.deps.ReceiptTimeout)
	defer cancel()

	if _, err := s.deps.Receipts.Create(ctx, receipt); err != nil {
		s.deps.Logger.Error("BookingSession %s: failed to store receipt: %v", s.id, err)
	}
}

func toBookAppointmentRequest(req *domain.BookingRequest) *scheduler.BookAppointmentRequest {
	return &scheduler.BookAppointmentRequest{
		UserID:      req.ProviderID,
		Date:        req.Date.String(),
		Time:        req.Time.String(),
		Name:        req.Contact.FullName,
		Email:       req.Contact.Email,
		PhoneNumber: req.Contact.Phone,
	}
}
