package publication_session

import "github.com/m04kA/SMC-SlotBooking/internal/service/publication"

// SessionStore реестр сессий публикации
type SessionStore interface {
	Create(build func(id string) *publication.Session) *publication.Session
	Get(id string) (*publication.Session, error)
	Delete(id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
