package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un miembro del personal del restaurante.
type Employee struct {
	ID           string
	Name         string
	Role         string // cocinero, mesero, cajero...
	HourlyRate   decimal.Decimal
	HoursPerWeek decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
