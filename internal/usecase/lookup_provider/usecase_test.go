package lookup_provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
	"github.com/m04kA/SMC-SlotBooking/internal/service/booking"
	"github.com/m04kA/SMC-SlotBooking/internal/service/sessions"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fakeScheduler struct {
	mu           sync.Mutex
	weekdays     []string
	weekdaysErr  error
	weekdayCalls []string
	slotCalls    []string
}

func (f *fakeScheduler) GetAvailableWeekdays(_ context.Context, providerID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weekdayCalls = append(f.weekdayCalls, providerID)
	return f.weekdays, f.weekdaysErr
}

func (f *fakeScheduler) GetAvailableSlots(_ context.Context, _ string, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slotCalls = append(f.slotCalls, date)
	return []string{"09:00", "09:30"}, nil
}

func (f *fakeScheduler) BookAppointment(context.Context, *scheduler.BookAppointmentRequest) error {
	return nil
}

func newTestUseCase(sched *fakeScheduler) (*UseCase, *sessions.Store[*booking.Session]) {
	log := logger.NewNop()
	store := sessions.NewStore[*booking.Session](sessions.KindBooking, time.Minute, log, nil)
	uc := NewUseCase(sched, store, booking.Dependencies{Scheduler: sched, Logger: log}, nil, log)
	uc.timeProvider = fixedTime{now: time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)}
	return uc, store
}

func TestUseCase_OpensSessionAndLoadsToday(t *testing.T) {
	sched := &fakeScheduler{weekdays: []string{"Monday", "Friday"}}
	uc, store := newTestUseCase(sched)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: "  abc123 "})
	require.NoError(t, err)

	assert.Equal(t, []string{"abc123"}, sched.weekdayCalls)
	assert.Equal(t, []string{"2025-03-14"}, sched.slotCalls)

	snap := resp.Snapshot
	assert.Equal(t, resp.SessionID, snap.ID)
	assert.Equal(t, "abc123", snap.ProviderID)
	assert.Equal(t, booking.StateSlotsReady, snap.State)
	assert.Equal(t, domain.CalendarDate{Year: 2025, Month: time.March, Day: 14}, snap.Today)
	assert.Equal(t, []string{"Monday", "Friday"}, snap.AllowedWeekdays)
	assert.Len(t, snap.Slots, 2)

	session, err := store.Get(resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "abc123", session.ProviderID())
}

func TestUseCase_EmptyRestrictionMeansUnrestricted(t *testing.T) {
	for _, weekdays := range [][]string{nil, {}} {
		t.Run(fmt.Sprintf("%#v", weekdays), func(t *testing.T) {
			uc, _ := newTestUseCase(&fakeScheduler{weekdays: weekdays})

			resp, err := uc.Execute(context.Background(), &Request{ProviderID: "abc123"})
			require.NoError(t, err)
			assert.Nil(t, resp.Snapshot.AllowedWeekdays)
		})
	}
}

func TestUseCase_EmptyProviderID(t *testing.T) {
	sched := &fakeScheduler{}
	uc, store := newTestUseCase(sched)

	_, err := uc.Execute(context.Background(), &Request{ProviderID: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, sched.weekdayCalls)
	assert.Equal(t, 0, store.Len())
}

func TestUseCase_Failures(t *testing.T) {
	tests := []struct {
		name     string
		weekdays []string
		err      error
		want     error
	}{
		{
			name: "provider not found",
			err: fmt.Errorf("%w: %w", scheduler.ErrProviderNotFound,
				&scheduler.ServerError{StatusCode: 404, Detail: "User not found"}),
			want: ErrProviderNotFound,
		},
		{
			name: "transport",
			err:  fmt.Errorf("%w: connection refused", scheduler.ErrUnavailable),
			want: ErrSchedulerUnavailable,
		},
		{
			name:     "unknown weekday in response",
			weekdays: []string{"Funday"},
			want:     ErrSchedulerUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := &fakeScheduler{weekdays: tt.weekdays, weekdaysErr: tt.err}
			uc, store := newTestUseCase(sched)

			resp, err := uc.Execute(context.Background(), &Request{ProviderID: "abc123"})
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, resp)
			assert.Len(t, sched.weekdayCalls, 1)
			assert.Empty(t, sched.slotCalls)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestUseCase_NotFoundKeepsServerDetail(t *testing.T) {
	sched := &fakeScheduler{weekdaysErr: fmt.Errorf("%w: %w", scheduler.ErrProviderNotFound,
		&scheduler.ServerError{StatusCode: 404, Detail: "User not found"})}
	uc, _ := newTestUseCase(sched)

	_, err := uc.Execute(context.Background(), &Request{ProviderID: "abc123"})
	require.True(t, errors.Is(err, ErrProviderNotFound))
	assert.Equal(t, "User not found", scheduler.DetailOf(err))
}
