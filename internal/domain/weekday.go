package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is the English weekday name used on the wire by the scheduling API
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// weekdayByIndex follows time.Weekday numbering: Sunday=0 ... Saturday=6
var weekdayByIndex = [DaysPerWeek]Weekday{
	Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday,
}

// DisplayOrder is the canonical Monday-first order used by the publication form
var DisplayOrder = [DaysPerWeek]Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// WeekdayFromTime maps time.Weekday to its name
func WeekdayFromTime(wd time.Weekday) Weekday {
	return weekdayByIndex[int(wd)%DaysPerWeek]
}

// ParseWeekday accepts a weekday name in any letter case
func ParseWeekday(s string) (Weekday, error) {
	for _, wd := range weekdayByIndex {
		if strings.EqualFold(string(wd), strings.TrimSpace(s)) {
			return wd, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// Index returns the Sunday=0 based position of the weekday
func (w Weekday) Index() int {
	for i, wd := range weekdayByIndex {
		if wd == w {
			return i
		}
	}
	return -1
}

// IsValid reports whether w is one of the seven canonical names
func (w Weekday) IsValid() bool {
	return w.Index() >= 0
}

func (w Weekday) String() string {
	return string(w)
}

// WeekdaySet is a provider's weekday restriction.
// A nil or empty set means the provider accepts bookings on every weekday.
type WeekdaySet map[Weekday]struct{}

// NewWeekdaySet builds a set from wire names; unknown names are reported as an error
func NewWeekdaySet(names []string) (WeekdaySet, error) {
	if names == nil {
		return nil, nil
	}
	set := make(WeekdaySet, len(names))
	for _, name := range names {
		wd, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		set[wd] = struct{}{}
	}
	return set, nil
}

// IsRestricted returns false when no weekday restriction applies
func (s WeekdaySet) IsRestricted() bool {
	return len(s) > 0
}

// Contains reports membership of wd
func (s WeekdaySet) Contains(wd Weekday) bool {
	_, ok := s[wd]
	return ok
}

// Names returns the members in Sunday-first calendar order
func (s WeekdaySet) Names() []string {
	names := make([]string, 0, len(s))
	for _, wd := range weekdayByIndex {
		if s.Contains(wd) {
			names = append(names, string(wd))
		}
	}
	return names
}
