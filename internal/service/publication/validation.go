package publication

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

const (
	FieldProviderID   = "providerId"
	FieldSlotDuration = "slotDurationMinutes"
)

const (
	msgProviderRequired = "Appointment ID cannot be empty."
	msgDurationInvalid  = "Slot duration must be a positive number."
	msgTimeOrderFormat  = "Start time must be earlier than end time for %s."
)

// validateDocument проверки в порядке: ID, длительность, окна по дням (Monday..Sunday).
// Недоступные дни время не проверяют
func validateDocument(doc *domain.AvailabilityDocument) *ValidationError {
	if strings.TrimSpace(doc.ProviderID) == "" {
		return &ValidationError{Field: FieldProviderID, Message: msgProviderRequired}
	}

	if doc.SlotDurationMinutes <= 0 {
		return &ValidationError{Field: FieldSlotDuration, Message: msgDurationInvalid}
	}

	for _, day := range domain.DisplayOrder {
		window := doc.Week.Window(day)
		if window.IsAvailable && !window.HasValidRange() {
			return &ValidationError{Field: day.String(), Message: fmt.Sprintf(msgTimeOrderFormat, day)}
		}
	}

	return nil
}
