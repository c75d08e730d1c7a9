package publication

import "errors"

var (
	// ErrValidation локальная ошибка валидации формы
	ErrValidation = errors.New("publication: validation failed")

	// ErrSessionCompleted доступность уже опубликована
	ErrSessionCompleted = errors.New("publication: session already completed")

	// ErrSubmissionInFlight публикация уже отправляется
	ErrSubmissionInFlight = errors.New("publication: submission already in flight")

	// ErrInvalidInput некорректный день недели или время
	ErrInvalidInput = errors.New("publication: invalid input")

	// ErrSubmissionFailed внешний API отклонил публикацию или недоступен
	ErrSubmissionFailed = errors.New("publication: submission failed")
)

// ValidationError первая непройденная проверка формы
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
