package lookup_provider

import "errors"

var (
	// ErrInvalidInput возвращается при пустом ID провайдера
	ErrInvalidInput = errors.New("lookup_provider: invalid input data")

	// ErrProviderNotFound возвращается, когда внешний API не знает провайдера (4xx)
	ErrProviderNotFound = errors.New("lookup_provider: provider not found")

	// ErrSchedulerUnavailable возвращается при сетевой ошибке, 5xx или некорректном ответе
	ErrSchedulerUnavailable = errors.New("lookup_provider: scheduler unavailable")
)

// MsgEmptyProviderID текст ошибки пустого ID для пользователя
const MsgEmptyProviderID = "User ID cannot be empty."
