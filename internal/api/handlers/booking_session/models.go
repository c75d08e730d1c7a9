package booking_session

import (
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/service/booking"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2025-03-17"
}

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	Time string `json:"time"` // "09:30"
}

// ContactDetails HTTP model контактных данных
type ContactDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// FormError первая непройденная проверка формы
type FormError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SessionResponse HTTP response model снимка сессии бронирования
type SessionResponse struct {
	ID              string         `json:"id"`
	ProviderID      string         `json:"providerId"`
	State           string         `json:"state"`
	Today           string         `json:"today"`
	Date            string         `json:"date"`
	AllowedWeekdays []string       `json:"allowedWeekdays"` // null - без ограничений
	Slots           []string       `json:"slots"`           // null - слоты еще не загружены
	SelectedSlot    string         `json:"selectedSlot,omitempty"`
	Contact         ContactDetails `json:"contact"`
	SlotsError      string         `json:"slotsError,omitempty"`
	FormError       *FormError     `json:"formError,omitempty"`
	SubmitError     string         `json:"submitError,omitempty"`
	Confirmation    string         `json:"confirmation,omitempty"`
	CanSubmit       bool           `json:"canSubmit"`
}

// ToDomain конвертирует HTTP модель в доменную
func (c ContactDetails) ToDomain() domain.ContactDetails {
	return domain.ContactDetails{
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}

// FromSnapshot конвертирует снимок сессии в HTTP response
func FromSnapshot(snap booking.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		ID:              snap.ID,
		ProviderID:      snap.ProviderID,
		State:           string(snap.State),
		Today:           snap.Today.String(),
		Date:            snap.Date.String(),
		AllowedWeekdays: snap.AllowedWeekdays,
		SelectedSlot:    snap.SelectedSlot.String(),
		Contact: ContactDetails{
			FullName: snap.Contact.FullName,
			Email:    snap.Contact.Email,
			Phone:    snap.Contact.Phone,
		},
		SlotsError:   snap.SlotsError,
		SubmitError:  snap.SubmitError,
		Confirmation: snap.Confirmation,
		CanSubmit:    snap.CanSubmit,
	}

	if snap.Slots != nil {
		resp.Slots = make([]string, len(snap.Slots))
		for i, slot := range snap.Slots {
			resp.Slots[i] = slot.String()
		}
	}

	if snap.FormError != nil {
		resp.FormError = &FormError{Field: snap.FormError.Field, Message: snap.FormError.Message}
	}

	return resp
}
