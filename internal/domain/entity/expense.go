package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo registrado (arriendo, servicios, insumos...).
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
