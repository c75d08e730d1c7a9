package booking

import (
	"context"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
)

// SchedulerClient внешний API: слоты и отправка бронирования
type SchedulerClient interface {
	GetAvailableSlots(ctx context.Context, providerID, date string) ([]string, error)
	BookAppointment(ctx context.Context, req *scheduler.BookAppointmentRequest) error
}

// ReceiptRepository журнал принятых бронирований
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.BookingReceipt) (*domain.BookingReceipt, error)
}

// Metrics счетчики исходов загрузки слотов и отправок
type Metrics interface {
	RecordSlotFetch(outcome string)
	RecordBookingSubmission(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) RecordSlotFetch(string)         {}
func (nopMetrics) RecordBookingSubmission(string) {}
