package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// ContactDetails are the client's details entered on the booking form
type ContactDetails struct {
	FullName string
	Email    string
	Phone    string
}

// BookingRequest is built only after every local validation gate passed
type BookingRequest struct {
	ProviderID string
	Date       CalendarDate
	Time       types.TimeString
	Contact    ContactDetails
}

// AvailabilityDocument is the snapshot submitted by a publication session
type AvailabilityDocument struct {
	ProviderID          string
	SlotDurationMinutes int
	Week                WeeklyAvailability
}

// BookingReceipt records a booking the scheduling API accepted
type BookingReceipt struct {
	ID         int64
	SessionID  string
	ProviderID string
	Date       CalendarDate
	Time       types.TimeString
	Contact    ContactDetails
	CreatedAt  time.Time
}
