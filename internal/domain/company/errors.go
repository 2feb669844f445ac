package company

import "errors"

var (
	ErrWorkingSettingsNotFound = errors.New("company working settings not found")
	ErrMonthlyOverrideNotFound = errors.New("monthly working days override not found")
	ErrInvalidDivisorPolicy    = errors.New("invalid divisor policy")
)
