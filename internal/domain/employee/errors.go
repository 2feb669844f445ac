package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidStatus    = errors.New("status must be active or inactive")
	ErrNegativeWageRate = errors.New("wage rate must be non-negative")
)
