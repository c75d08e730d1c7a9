package lookup_provider

import "github.com/m04kA/SMC-SlotBooking/internal/service/booking"

// Request модель запроса на открытие сессии бронирования
type Request struct {
	ProviderID string // ID провайдера в том виде, как его ввел пользователь
}

// Response созданная сессия после первичной загрузки слотов на сегодня
type Response struct {
	SessionID string
	Snapshot  booking.Snapshot
}
