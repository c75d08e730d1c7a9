package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarDate_Weekday(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{date: "2024-06-03", want: Monday},
		{date: "2024-06-09", want: Sunday},
		{date: "2024-02-29", want: Thursday},
		{date: "2000-01-01", want: Saturday},
		{date: "2026-10-18", want: Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseCalendarDate(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Weekday())
		})
	}
}

func TestCalendarDate_CompareIgnoresClock(t *testing.T) {
	late := NewCalendarDate(time.Date(2024, 6, 3, 23, 59, 0, 0, time.UTC))
	early := NewCalendarDate(time.Date(2024, 6, 3, 0, 1, 0, 0, time.UTC))

	assert.Equal(t, 0, late.Compare(early))
	assert.False(t, late.Before(early))
	assert.True(t, early.Before(CalendarDate{Year: 2024, Month: time.June, Day: 4}))
	assert.True(t, CalendarDate{Year: 2023, Month: time.December, Day: 31}.Before(early))
}

func TestCalendarDate_String(t *testing.T) {
	assert.Equal(t, "2024-06-03", CalendarDate{Year: 2024, Month: time.June, Day: 3}.String())
	assert.Equal(t, "", CalendarDate{Year: 2024, Day: 3}.String())
	assert.False(t, CalendarDate{Year: 2024, Month: time.June}.IsComplete())
}

func TestParseCalendarDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024-6-3", "03.06.2024", "2024-02-30"} {
		_, err := ParseCalendarDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestMonthDays(t *testing.T) {
	assert.Len(t, MonthDays(2024, time.February), 29)
	assert.Len(t, MonthDays(2023, time.February), 28)

	june := MonthDays(2024, time.June)
	require.Len(t, june, 30)
	assert.Equal(t, "2024-06-01", june[0].String())
	assert.Equal(t, "2024-06-30", june[29].String())
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday("tuesday")
	require.NoError(t, err)
	assert.Equal(t, Tuesday, wd)
	assert.Equal(t, 2, wd.Index())

	_, err = ParseWeekday("Tue")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}

func TestNewWeekdaySet(t *testing.T) {
	set, err := NewWeekdaySet(nil)
	require.NoError(t, err)
	assert.Nil(t, set)
	assert.False(t, set.IsRestricted())

	set, err = NewWeekdaySet([]string{"Friday", "Monday", "Friday"})
	require.NoError(t, err)
	assert.True(t, set.IsRestricted())
	assert.Equal(t, []string{"Monday", "Friday"}, set.Names())

	_, err = NewWeekdaySet([]string{"Someday"})
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}
