package booking

import (
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// State состояние сессии бронирования
type State string

const (
	StateIdle             State = "idle"
	StateSlotsLoading     State = "slots_loading"
	StateSlotsReady       State = "slots_ready"
	StateSlotSelected     State = "slot_selected"
	StateSubmitting       State = "submitting"
	StateSucceeded        State = "succeeded"
	StateSubmissionFailed State = "submission_failed"
)

// IsTerminal после succeeded сессия только отображается
func (s State) IsTerminal() bool {
	return s == StateSucceeded
}

// Snapshot неизменяемый срез состояния сессии для отображения
type Snapshot struct {
	ID              string
	ProviderID      string
	State           State
	Today           domain.CalendarDate
	Date            domain.CalendarDate
	AllowedWeekdays []string // nil - ограничений по дням нет
	Slots           []types.TimeString
	SelectedSlot    types.TimeString
	Contact         domain.ContactDetails
	SlotsError      string
	FormError       *ValidationError
	SubmitError     string
	Confirmation    string
	CanSubmit       bool
}

// CalendarDay одна ячейка календаря
type CalendarDay struct {
	Date        domain.CalendarDate
	Weekday     domain.Weekday
	Unavailable bool
}
