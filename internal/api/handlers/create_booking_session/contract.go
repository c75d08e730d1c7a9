package create_booking_session

import (
	"context"

	lookupProvider "github.com/m04kA/SMC-SlotBooking/internal/usecase/lookup_provider"
)

type LookupProviderUseCase interface {
	Execute(ctx context.Context, req *lookupProvider.Request) (*lookupProvider.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
