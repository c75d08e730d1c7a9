package booking

import "errors"

var (
	// ErrValidation локальная ошибка валидации формы, запрос не отправлялся
	ErrValidation = errors.New("booking: validation failed")

	// ErrSessionCompleted сессия уже в терминальном состоянии succeeded
	ErrSessionCompleted = errors.New("booking: session already completed")

	// ErrSubmissionInFlight бронирование уже отправляется, повторный клик игнорируется
	ErrSubmissionInFlight = errors.New("booking: submission already in flight")

	// ErrSlotsNotReady слоты для выбранной даты еще не загружены
	ErrSlotsNotReady = errors.New("booking: slots are not loaded")

	// ErrSlotNotOffered выбранного времени нет среди предложенных слотов
	ErrSlotNotOffered = errors.New("booking: slot is not offered for the selected date")

	// ErrDateUnavailable дата в прошлом или день недели не разрешен провайдером
	ErrDateUnavailable = errors.New("booking: date is unavailable")

	// ErrSubmissionFailed внешний API отклонил бронирование или недоступен
	ErrSubmissionFailed = errors.New("booking: submission failed")
)

// ValidationError первая непройденная проверка формы
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is позволяет матчить любую ValidationError через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
