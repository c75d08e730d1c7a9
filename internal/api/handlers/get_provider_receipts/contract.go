package get_provider_receipts

import (
	"context"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

type ReceiptRepository interface {
	ListByProvider(ctx context.Context, providerID string, limit uint64) ([]*domain.BookingReceipt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
