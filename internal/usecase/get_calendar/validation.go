package get_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// parseMonth разбирает YYYY-MM
func parseMonth(month string) (int, time.Month, error) {
	t, err := time.Parse(domain.MonthFormat, month)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month must be in YYYY-MM format", ErrInvalidInput)
	}
	return t.Year(), t.Month(), nil
}
