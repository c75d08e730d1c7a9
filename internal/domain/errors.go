package domain

import "errors"

var (
	// ErrUnknownWeekday is returned for names outside Sunday..Saturday
	ErrUnknownWeekday = errors.New("domain: unknown weekday")

	// ErrInvalidDate is returned for dates not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrInvalidTime is returned for window boundaries not in HH:MM form
	ErrInvalidTime = errors.New("domain: invalid time of day")
)
