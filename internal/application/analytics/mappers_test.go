package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
)

func TestToProductAnalysisDTO_PartesSumanElTotal(t *testing.T) {
	d := decimal.RequireFromString
	// Cada parte redondea hacia arriba: 1.01 * 3 = 3.03, mientras que Round(3.015) = 3.02.
	a := costing.ProductAnalysis{
		ProductID:        "p1",
		UnitsSold:        3,
		Revenue:          d("10"),
		CostPerUnit:      d("1.005"),
		IngredientCost:   d("1.005"),
		LaborCost:        d("1.005"),
		StorageCost:      d("1.005"),
		TotalCost:        d("3.015"),
		Margin:           d("6.985"),
		MarginPercentage: d("69.85"),
	}

	out := toProductAnalysisDTO(a)

	parts := out.IngredientCost.Add(out.LaborCost).Add(out.StorageCost)
	assert.True(t, parts.Equal(out.TotalCost), "partes %s != total %s", parts, out.TotalCost)
	assert.Equal(t, "3.03", out.TotalCost.String())
	assert.True(t, out.Revenue.Sub(out.TotalCost).Equal(out.Margin))
	assert.Equal(t, "6.97", out.Margin.String())
	assert.Equal(t, "69.85", out.MarginPercentage.String())
}
