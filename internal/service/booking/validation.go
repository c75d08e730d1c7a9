package booking

import (
	"regexp"
	"strings"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// Поля формы, на которые указывает ValidationError
const (
	FieldProviderID = "providerId"
	FieldDate       = "date"
	FieldSlot       = "slot"
	FieldFullName   = "fullName"
	FieldEmail      = "email"
	FieldPhone      = "phone"
)

const (
	msgProviderRequired = "User ID is required."
	msgDateRequired     = "Please select a valid date."
	msgSlotRequired     = "Please select a time slot."
	msgNameRequired     = "Full name is required."
	msgEmailInvalid     = "Valid email is required."
	msgPhoneInvalid     = "Valid 10-digit phone number is required."
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// submission все, что проверяется перед отправкой бронирования
type submission struct {
	providerID string
	date       domain.CalendarDate
	slot       types.TimeString
	contact    domain.ContactDetails
}

// submissionRule проверка формы: failed возвращает true, если правило нарушено
type submissionRule struct {
	field   string
	message string
	failed  func(s *submission) bool
}

// submissionRules порядок важен: показывается только первая ошибка
var submissionRules = []submissionRule{
	{
		field:   FieldProviderID,
		message: msgProviderRequired,
		failed:  func(s *submission) bool { return strings.TrimSpace(s.providerID) == "" },
	},
	{
		field:   FieldDate,
		message: msgDateRequired,
		failed:  func(s *submission) bool { return !s.date.IsComplete() },
	},
	{
		field:   FieldSlot,
		message: msgSlotRequired,
		failed:  func(s *submission) bool { return s.slot.IsZero() },
	},
	{
		field:   FieldFullName,
		message: msgNameRequired,
		failed:  func(s *submission) bool { return strings.TrimSpace(s.contact.FullName) == "" },
	},
	{
		field:   FieldEmail,
		message: msgEmailInvalid,
		failed: func(s *submission) bool {
			return strings.TrimSpace(s.contact.Email) == "" || !emailPattern.MatchString(s.contact.Email)
		},
	},
	{
		field:   FieldPhone,
		message: msgPhoneInvalid,
		failed: func(s *submission) bool {
			return strings.TrimSpace(s.contact.Phone) == "" || !phonePattern.MatchString(s.contact.Phone)
		},
	},
}

// validateSubmission возвращает первую непройденную проверку или nil
func validateSubmission(s *submission) *ValidationError {
	for _, rule := range submissionRules {
		if rule.failed(s) {
			return &ValidationError{Field: rule.field, Message: rule.message}
		}
	}
	return nil
}
