package domain

import (
	"fmt"

	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// AvailabilityWindow is one weekday of a provider's published availability.
// Start and end are empty until the provider fills them in.
type AvailabilityWindow struct {
	IsAvailable bool
	StartTime   types.TimeString
	EndTime     types.TimeString
}

// HasValidRange reports start < end, compared lexicographically on zero-padded HH:MM
func (w AvailabilityWindow) HasValidRange() bool {
	return w.StartTime.IsBefore(w.EndTime)
}

// WeeklyAvailability always holds exactly one window per weekday.
// The zero value is a week with every day unavailable.
type WeeklyAvailability struct {
	windows [DaysPerWeek]AvailabilityWindow
}

// Window returns the window for wd
func (a WeeklyAvailability) Window(wd Weekday) AvailabilityWindow {
	idx := wd.Index()
	if idx < 0 {
		return AvailabilityWindow{}
	}
	return a.windows[idx]
}

// Replace returns a copy of a with the window of wd swapped for w.
// Non-empty boundaries must be valid HH:MM values.
func (a WeeklyAvailability) Replace(wd Weekday, w AvailabilityWindow) (WeeklyAvailability, error) {
	idx := wd.Index()
	if idx < 0 {
		return a, fmt.Errorf("%w: %q", ErrUnknownWeekday, string(wd))
	}
	for _, bound := range []types.TimeString{w.StartTime, w.EndTime} {
		if bound.IsZero() {
			continue
		}
		if err := bound.Validate(); err != nil {
			return a, fmt.Errorf("%w: %s %s", ErrInvalidTime, wd, bound)
		}
	}
	a.windows[idx] = w
	return a, nil
}

// AvailableWeekdays returns the days marked available as a set
func (a WeeklyAvailability) AvailableWeekdays() WeekdaySet {
	set := make(WeekdaySet)
	for i, w := range a.windows {
		if w.IsAvailable {
			set[weekdayByIndex[i]] = struct{}{}
		}
	}
	return set
}

// IsDateUnavailable decides whether a calendar cell must be disabled.
// With no weekday restriction every date is bookable. Otherwise past dates
// are not, and the date's weekday must be in allowed.
func IsDateUnavailable(date, today CalendarDate, allowed WeekdaySet) bool {
	if !allowed.IsRestricted() {
		return false
	}
	if date.Before(today) {
		return true
	}
	return !allowed.Contains(date.Weekday())
}
