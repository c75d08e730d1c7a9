package get_calendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotBooking/internal/service/sessions"
)

// UseCase use case для построения календаря месяца сессии бронирования
type UseCase struct {
	store  SessionStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute применяет фильтр доступности к каждому дню месяца
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	// 1. Получаем сессию
	session, err := uc.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("GetCalendar: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetCalendar: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("get_calendar: %w", err)
	}

	// 2. Определяем месяц: по умолчанию месяц выбранной даты
	var resp Response
	if req.Month == "" {
		date := session.Snapshot().Date
		resp.Year, resp.Month = date.Year, date.Month
	} else {
		resp.Year, resp.Month, err = parseMonth(req.Month)
		if err != nil {
			uc.logger.Warn("GetCalendar: validation failed: %v", err)
			return nil, err
		}
	}

	// 3. Решение по каждому дню
	resp.Days = session.Calendar(resp.Year, resp.Month)

	return &resp, nil
}
