package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string
	CompanyID string
	Name      string
	Rank      string // position title
	WageRate  decimal.Decimal
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}
