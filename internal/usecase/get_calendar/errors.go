package get_calendar

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("get_calendar: session not found")

	// ErrInvalidInput возвращается при некорректном месяце
	ErrInvalidInput = errors.New("get_calendar: invalid input data")
)
