package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada.
// ProductID y EmployeeID son referencias blandas: pueden apuntar a registros ya eliminados.
// Date en cero significa fecha inválida o ausente.
type Sale struct {
	ID         string
	ProductID  string
	Quantity   int
	Price      decimal.Decimal // precio unitario al momento de la venta
	Date       time.Time
	EmployeeID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Total devuelve precio × cantidad de la venta.
func (s Sale) Total() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
