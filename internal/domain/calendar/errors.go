package calendar

import "errors"

var (
	ErrWorkingDayConfigNotFound = errors.New("working day config not found")
	ErrEventNotFound            = errors.New("event not found")
	ErrInvalidEventType         = errors.New("invalid event type")
	ErrInvalidDate              = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth             = errors.New("invalid month, expected YYYY-MM")
	ErrInvalidDateRange         = errors.New("end date must not be before start date")
)
