package publication

import (
	"context"

	"github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
)

// SchedulerClient публикация доступности во внешнем API
type SchedulerClient interface {
	CreateAppointment(ctx context.Context, req *scheduler.CreateAppointmentRequest) error
}

// Metrics счетчик исходов публикации
type Metrics interface {
	RecordPublication(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) RecordPublication(string) {}
