package get_calendar

import (
	"fmt"

	getCalendar "github.com/m04kA/SMC-SlotBooking/internal/usecase/get_calendar"
)

// CalendarDayResponse одна ячейка календаря
type CalendarDayResponse struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	Unavailable bool   `json:"unavailable"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Month string                `json:"month"` // "2025-03"
	Days  []CalendarDayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDayResponse, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = CalendarDayResponse{
			Date:        day.Date.String(),
			Weekday:     day.Weekday.String(),
			Unavailable: day.Unavailable,
		}
	}

	return &CalendarResponse{
		Month: fmt.Sprintf("%04d-%02d", resp.Year, int(resp.Month)),
		Days:  days,
	}
}
