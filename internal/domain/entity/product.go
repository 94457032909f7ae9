package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientQuantity par ingrediente-cantidad de la receta de un producto.
type IngredientQuantity struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Product representa un plato o bebida de la carta.
// PreparationTime en minutos; StorageRequired en unidades de volumen; EmployeeHoursRequired en horas por unidad.
type Product struct {
	ID                    string
	Name                  string
	Price                 decimal.Decimal // precio de venta actual (no se usa para ingresos históricos)
	Category              string
	Ingredients           []IngredientQuantity
	PreparationTime       int
	StorageRequired       decimal.Decimal
	EmployeeHoursRequired decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
