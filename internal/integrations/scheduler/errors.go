package scheduler

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderNotFound возвращается на 404 от available-weekdays / available-slots
	ErrProviderNotFound = errors.New("scheduler client: provider not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduler client: internal error")

	// ErrUnavailable возвращается, когда внешний API недоступен (сеть, таймаут)
	ErrUnavailable = errors.New("scheduler client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduler client: invalid response")
)

// ServerError не-2xx ответ внешнего API; Detail пустой, если сервер его не прислал
type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("scheduler client: status %d", e.StatusCode)
	}
	return fmt.Sprintf("scheduler client: status %d: %s", e.StatusCode, e.Detail)
}

// IsClientError 4xx
func (e *ServerError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// DetailOf возвращает текст detail из ошибки сервера, если он есть
func DetailOf(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Detail
	}
	return ""
}
