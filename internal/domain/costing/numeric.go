package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// UnknownLabel sustituye el nombre de una referencia colgante.
const UnknownLabel = "Unknown"

var (
	hundred = decimal.NewFromInt(100)
	sixty   = decimal.NewFromInt(60)
)

// SafeDiv divide a entre b; devuelve cero si b es cero.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// Percent devuelve part / whole × 100, o cero si whole es cero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	return SafeDiv(part, whole).Mul(hundred)
}

// LookupName devuelve names[id] o UnknownLabel si la referencia no existe.
func LookupName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return UnknownLabel
}

func employeeNames(employees []entity.Employee) map[string]string {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names
}

func productIndex(products []entity.Product) map[string]entity.Product {
	idx := make(map[string]entity.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

func qty(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
