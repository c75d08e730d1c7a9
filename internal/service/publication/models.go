package publication

import "github.com/m04kA/SMC-SlotBooking/internal/domain"

// State состояние сессии публикации
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StatePublished  State = "published"
	StateFailed     State = "failed"
)

// DayWindow окно одного дня в порядке отображения
type DayWindow struct {
	Day    domain.Weekday
	Window domain.AvailabilityWindow
}

// Snapshot неизменяемый срез состояния формы
type Snapshot struct {
	ID                  string
	State               State
	ProviderID          string
	SlotDurationMinutes int
	Days                []DayWindow // Monday..Sunday
	FormError           *ValidationError
	SubmitError         string
	Confirmation        string
	CanSubmit           bool
}
