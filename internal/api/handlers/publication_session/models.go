package publication_session

import (
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/service/publication"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// UpdateSessionRequest HTTP request model; отсутствующие поля не меняются
type UpdateSessionRequest struct {
	ProviderID          *string `json:"providerId,omitempty"`
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"`
}

// DayWindow HTTP model окна одного дня
type DayWindow struct {
	IsAvailable bool   `json:"isAvailable"`
	StartTime   string `json:"startTime"` // "09:00" или пусто
	EndTime     string `json:"endTime"`
}

// DayResponse окно дня с его названием
type DayResponse struct {
	Day string `json:"day"`
	DayWindow
}

// FormError первая непройденная проверка формы
type FormError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SessionResponse HTTP response model снимка формы публикации
type SessionResponse struct {
	ID                  string        `json:"id"`
	State               string        `json:"state"`
	ProviderID          string        `json:"providerId"`
	SlotDurationMinutes int           `json:"slotDurationMinutes"`
	Days                []DayResponse `json:"days"` // Monday..Sunday
	FormError           *FormError    `json:"formError,omitempty"`
	SubmitError         string        `json:"submitError,omitempty"`
	Confirmation        string        `json:"confirmation,omitempty"`
	CanSubmit           bool          `json:"canSubmit"`
}

// ToDomain конвертирует HTTP модель в доменную; формат времени проверяет сессия
func (d DayWindow) ToDomain() domain.AvailabilityWindow {
	return domain.AvailabilityWindow{
		IsAvailable: d.IsAvailable,
		StartTime:   types.TimeString(d.StartTime),
		EndTime:     types.TimeString(d.EndTime),
	}
}

// FromSnapshot конвертирует снимок формы в HTTP response
func FromSnapshot(snap publication.Snapshot) *SessionResponse {
	days := make([]DayResponse, len(snap.Days))
	for i, d := range snap.Days {
		days[i] = DayResponse{
			Day: d.Day.String(),
			DayWindow: DayWindow{
				IsAvailable: d.Window.IsAvailable,
				StartTime:   d.Window.StartTime.String(),
				EndTime:     d.Window.EndTime.String(),
			},
		}
	}

	resp := &SessionResponse{
		ID:                  snap.ID,
		State:               string(snap.State),
		ProviderID:          snap.ProviderID,
		SlotDurationMinutes: snap.SlotDurationMinutes,
		Days:                days,
		SubmitError:         snap.SubmitError,
		Confirmation:        snap.Confirmation,
		CanSubmit:           snap.CanSubmit,
	}
	if snap.FormError != nil {
		resp.FormError = &FormError{Field: snap.FormError.Field, Message: snap.FormError.Message}
	}
	return resp
}
