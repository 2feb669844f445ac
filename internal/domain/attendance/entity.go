package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent    Status = "present"
	StatusShortLeave Status = "short_leave"
	StatusLeave      Status = "leave"

	// StatusNotSet is shown for employees without a record; it is never stored
	StatusNotSet Status = "not_set"
)

// IsStorable reports whether s can be persisted
func (s Status) IsStorable() bool {
	switch s {
	case StatusPresent, StatusShortLeave, StatusLeave:
		return true
	default:
		return false
	}
}

// Record - One attendance mark. At most one per (EmployeeID, Date).
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Counts - Per-employee tallies for a period
type Counts struct {
	Present    int
	ShortLeave int
	Leave      int
}

// Tally groups records by employee and counts each status
func Tally(records []Record) map[string]Counts {
	result := make(map[string]Counts)
	for _, r := range records {
		c := result[r.EmployeeID]
		switch r.Status {
		case StatusPresent:
			c.Present++
		case StatusShortLeave:
			c.ShortLeave++
		case StatusLeave:
			c.Leave++
		}
		result[r.EmployeeID] = c
	}
	return result
}
