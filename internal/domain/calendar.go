package domain

import (
	"fmt"
	"time"
)

// CalendarDate is a date without time of day or zone.
// Dates compare in calendar order, never by wall-clock instant.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate takes the calendar components of t in t's own location
func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate parses YYYY-MM-DD
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewCalendarDate(t), nil
}

// IsComplete reports whether year, month and day are all present
func (d CalendarDate) IsComplete() bool {
	return d.Year > 0 && d.Month >= time.January && d.Month <= time.December && d.Day > 0
}

// Compare returns -1, 0 or +1 in calendar order
func (d CalendarDate) Compare(other CalendarDate) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Compare(other) < 0
}

// Weekday computes the day of week from the proleptic Gregorian calendar, independent of any locale
func (d CalendarDate) Weekday() Weekday {
	return WeekdayFromTime(d.Time().Weekday())
}

// AddDays shifts the date by n calendar days
func (d CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(d.Time().AddDate(0, 0, n))
}

// Time returns midnight UTC of the date
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD; incomplete dates format as ""
func (d CalendarDate) String() string {
	if !d.IsComplete() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthDays lists every date of the month containing d
func MonthDays(year int, month time.Month) []CalendarDate {
	first := CalendarDate{Year: year, Month: month, Day: 1}
	days := make([]CalendarDate, 0, 31)
	for day := first; day.Month == month; day = day.AddDays(1) {
		days = append(days, day)
	}
	return days
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
