package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/service/booking"
)

// Request модель запроса календаря
type Request struct {
	SessionID string
	Month     string // YYYY-MM; пусто - месяц выбранной даты
}

// Response месяц календаря с решением доступности по каждому дню
type Response struct {
	Year  int
	Month time.Month
	Days  []booking.CalendarDay
}
