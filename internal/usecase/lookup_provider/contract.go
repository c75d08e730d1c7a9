package lookup_provider

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/service/booking"
)

// SchedulerClient интерфейс клиента внешнего API расписаний
type SchedulerClient interface {
	GetAvailableWeekdays(ctx context.Context, providerID string) ([]string, error)
}

// SessionStore реестр сессий бронирования
type SessionStore interface {
	Create(build func(id string) *booking.Session) *booking.Session
	Delete(id string) error
}

// Metrics счетчик исходов поиска провайдера
type Metrics interface {
	RecordProviderLookup(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) RecordProviderLookup(string) {}
