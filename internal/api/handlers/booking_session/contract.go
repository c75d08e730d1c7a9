package booking_session

import "github.com/m04kA/SMC-SlotBooking/internal/service/booking"

// SessionStore реестр сессий бронирования
type SessionStore interface {
	Get(id string) (*booking.Session, error)
	Delete(id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
