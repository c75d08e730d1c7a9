package publication

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
)

type fakeScheduler struct {
	mu      sync.Mutex
	calls   []*scheduler.CreateAppointmentRequest
	err     error
	gate    chan struct{}
	started chan struct{}
}

func (f *fakeScheduler) CreateAppointment(_ context.Context, req *scheduler.CreateAppointmentRequest) error {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	gate, err := f.gate, f.err
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return err
}

func (f *fakeScheduler) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestSession(sched *fakeScheduler) *Session {
	return NewSession("pub-1", Dependencies{Scheduler: sched, Logger: logger.NewNop()})
}

func filledSession(t *testing.T, sched *fakeScheduler) *Session {
	t.Helper()
	s := newTestSession(sched)
	_, err := s.SetProviderID("abc123")
	require.NoError(t, err)
	_, err = s.SetSlotDuration(30)
	require.NoError(t, err)
	_, err = s.SetDay(domain.Monday, domain.AvailabilityWindow{IsAvailable: true, StartTime: "09:00", EndTime: "12:00"})
	require.NoError(t, err)
	return s
}

func TestSession_StartsWithAllDaysUnavailable(t *testing.T) {
	snap := newTestSession(&fakeScheduler{}).Snapshot()

	assert.Equal(t, StateEditing, snap.State)
	require.Len(t, snap.Days, 7)
	assert.Equal(t, domain.Monday, snap.Days[0].Day)
	assert.Equal(t, domain.Sunday, snap.Days[6].Day)
	for _, d := range snap.Days {
		assert.False(t, d.Window.IsAvailable, d.Day)
	}
}

func TestSession_SubmitPublishesFullWeek(t *testing.T) {
	sched := &fakeScheduler{}
	s := filledSession(t, sched)

	snap, err := s.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatePublished, snap.State)
	assert.Equal(t, "Availability saved! Share your Appointment ID (abc123) with others to let them book a slot.", snap.Confirmation)
	require.Len(t, sched.calls, 1)

	req := sched.calls[0]
	assert.Equal(t, "abc123", req.UserID)
	assert.Equal(t, 30, req.SlotDurationMinutes)
	require.Len(t, req.Availability, 7)
	assert.Equal(t, scheduler.DayAvailability{IsAvailable: true, StartTime: "09:00", EndTime: "12:00"}, req.Availability["Monday"])
	assert.Equal(t, scheduler.DayAvailability{}, req.Availability["Sunday"])
}

func TestSession_Validation(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, s *Session)
		field   string
		message string
	}{
		{
			name: "empty provider id",
			prepare: func(t *testing.T, s *Session) {
				_, err := s.SetProviderID("   ")
				require.NoError(t, err)
			},
			field:   FieldProviderID,
			message: "Appointment ID cannot be empty.",
		},
		{
			name: "zero duration",
			prepare: func(t *testing.T, s *Session) {
				_, err := s.SetSlotDuration(0)
				require.NoError(t, err)
			},
			field:   FieldSlotDuration,
			message: "Slot duration must be a positive number.",
		},
		{
			name: "negative duration",
			prepare: func(t *testing.T, s *Session) {
				_, err := s.SetSlotDuration(-15)
				require.NoError(t, err)
			},
			field:   FieldSlotDuration,
			message: "Slot duration must be a positive number.",
		},
		{
			name: "tuesday end before start",
			prepare: func(t *testing.T, s *Session) {
				_, err := s.SetDay(domain.Tuesday, domain.AvailabilityWindow{IsAvailable: true, StartTime: "10:00", EndTime: "09:00"})
				require.NoError(t, err)
			},
			field:   "Tuesday",
			message: "Start time must be earlier than end time for Tuesday.",
		},
		{
			name: "available day without times",
			prepare: func(t *testing.T, s *Session) {
				_, err := s.ToggleDay(domain.Saturday)
				require.NoError(t, err)
			},
			field:   "Saturday",
			message: "Start time must be earlier than end time for Saturday.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := &fakeScheduler{}
			s := filledSession(t, sched)
			tt.prepare(t, s)

			snap, err := s.Submit(context.Background())
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
			require.NotNil(t, snap.FormError)
			assert.Equal(t, tt.message, snap.FormError.Message)
			assert.Equal(t, StateEditing, snap.State)
			assert.Equal(t, 0, sched.callCount())
		})
	}
}

func TestSession_UnavailableDaysSkipTimeCheck(t *testing.T) {
	sched := &fakeScheduler{}
	s := filledSession(t, sched)
	_, err := s.SetDay(domain.Wednesday, domain.AvailabilityWindow{IsAvailable: false, StartTime: "18:00", EndTime: "08:00"})
	require.NoError(t, err)

	_, err = s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sched.callCount())
}

func TestSession_ValidationOrderFollowsDisplayOrder(t *testing.T) {
	s := filledSession(t, &fakeScheduler{})
	_, err := s.SetDay(domain.Sunday, domain.AvailabilityWindow{IsAvailable: true, StartTime: "12:00", EndTime: "11:00"})
	require.NoError(t, err)
	_, err = s.SetDay(domain.Friday, domain.AvailabilityWindow{IsAvailable: true, StartTime: "12:00", EndTime: "12:00"})
	require.NoError(t, err)

	_, err = s.Submit(context.Background())
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Friday", verr.Field)
}

func TestSession_ToggleKeepsTimes(t *testing.T) {
	s := filledSession(t, &fakeScheduler{})

	snap, err := s.ToggleDay(domain.Monday)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityWindow{IsAvailable: false, StartTime: "09:00", EndTime: "12:00"}, snap.Days[0].Window)

	snap, err = s.ToggleDay(domain.Monday)
	require.NoError(t, err)
	assert.True(t, snap.Days[0].Window.IsAvailable)
}

func TestSession_SetDayRejectsMalformedTime(t *testing.T) {
	s := filledSession(t, &fakeScheduler{})

	_, err := s.SetDay(domain.Thursday, domain.AvailabilityWindow{IsAvailable: true, StartTime: "9:00", EndTime: "17:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.SetDay(domain.Weekday("Caturday"), domain.AvailabilityWindow{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSession_FailureIsEditable(t *testing.T) {
	sched := &fakeScheduler{err: &scheduler.ServerError{StatusCode: 400, Detail: "User already exists"}}
	s := filledSession(t, sched)

	snap, err := s.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmissionFailed)
	assert.Equal(t, StateFailed, snap.State)
	assert.Equal(t, "User already exists", snap.SubmitError)
	assert.True(t, snap.CanSubmit)

	_, err = s.SetProviderID("abc124")
	require.NoError(t, err)

	sched.err = nil
	snap, err = s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatePublished, snap.State)
	assert.Equal(t, "abc124", sched.calls[1].UserID)
}

func TestSession_FailureMessages(t *testing.T) {
	sched := &fakeScheduler{err: &scheduler.ServerError{StatusCode: 500}}
	s := filledSession(t, sched)

	snap, _ := s.Submit(context.Background())
	assert.Equal(t, "Failed to create appointment.", snap.SubmitError)

	sched.err = scheduler.ErrUnavailable
	snap, _ = s.Submit(context.Background())
	assert.Equal(t, "Something went wrong. Please try again.", snap.SubmitError)
}

func TestSession_PublishedIsTerminal(t *testing.T) {
	sched := &fakeScheduler{}
	s := filledSession(t, sched)
	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	_, err = s.SetProviderID("other")
	assert.ErrorIs(t, err, ErrSessionCompleted)
	_, err = s.ToggleDay(domain.Friday)
	assert.ErrorIs(t, err, ErrSessionCompleted)
	_, err = s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSessionCompleted)
	assert.Equal(t, 1, sched.callCount())
}

func TestSession_SecondSubmitWhileInFlight(t *testing.T) {
	sched := &fakeScheduler{gate: make(chan struct{}), started: make(chan struct{}, 1)}
	s := filledSession(t, sched)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()
	<-sched.started

	snap, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.False(t, snap.CanSubmit)

	_, err = s.SetSlotDuration(45)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(sched.gate)
	require.NoError(t, <-done)
	assert.Equal(t, 1, sched.callCount())
}
