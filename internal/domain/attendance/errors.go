package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("status must be present, short_leave, leave or not_set")
	ErrNoEmployees        = errors.New("no employees to mark")
)
