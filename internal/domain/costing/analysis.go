package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ProductAnalysis rendimiento de un producto sobre las ventas registradas.
// IngredientCost + LaborCost + StorageCost == TotalCost.
type ProductAnalysis struct {
	ProductID        string
	ProductName      string
	Category         string
	UnitsSold        int
	Revenue          decimal.Decimal // Σ precio de venta × cantidad (precio histórico, no el actual)
	CostPerUnit      decimal.Decimal
	TotalCost        decimal.Decimal
	IngredientCost   decimal.Decimal
	LaborCost        decimal.Decimal
	StorageCost      decimal.Decimal
	Margin           decimal.Decimal
	MarginPercentage decimal.Decimal // 0 cuando no hay ingresos
}

// Analyze calcula el rendimiento del producto productID. Devuelve false si el producto no existe.
func (c *Calculator) Analyze(
	productID string,
	products []entity.Product,
	sales []entity.Sale,
	employees []entity.Employee,
) (ProductAnalysis, bool) {
	var product *entity.Product
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return ProductAnalysis{}, false
	}

	var totals productTotals
	for _, s := range sales {
		if s.ProductID == productID {
			totals.add(s)
		}
	}
	rate := AverageHourlyRate(employees, c.rates.FallbackHourlyRate)
	return c.analyze(*product, totals, rate), true
}

// productTotals acumulado de ventas de un producto.
type productTotals struct {
	units   int
	revenue decimal.Decimal
}

func (t *productTotals) add(s entity.Sale) {
	t.units += s.Quantity
	t.revenue = t.revenue.Add(s.Total())
}

func (c *Calculator) analyze(p entity.Product, totals productTotals, hourlyRate decimal.Decimal) ProductAnalysis {
	unit := c.unitCostWithRate(p, hourlyRate)
	// Cada componente se escala por separado para que el desglose sume exactamente el total.
	scaled := unit.Scale(totals.units)
	totalCost := unit.Total().Mul(qty(totals.units))
	margin := totals.revenue.Sub(totalCost)

	return ProductAnalysis{
		ProductID:        p.ID,
		ProductName:      p.Name,
		Category:         p.Category,
		UnitsSold:        totals.units,
		Revenue:          totals.revenue,
		CostPerUnit:      unit.Total(),
		TotalCost:        totalCost,
		IngredientCost:   scaled.Ingredient,
		LaborCost:        scaled.Labor,
		StorageCost:      scaled.Storage,
		Margin:           margin,
		MarginPercentage: Percent(margin, totals.revenue),
	}
}
