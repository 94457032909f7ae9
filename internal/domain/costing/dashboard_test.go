package costing_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func TestDashboard_SinVentasNiGastos(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	snap := costing.Snapshot{
		Products:  []entity.Product{burger(), {ID: "p2", Name: "Jugo", EmployeeHoursRequired: dec("0.1")}},
		Employees: []entity.Employee{{ID: "e1", HourlyRate: dec("20")}},
	}

	stats := calc.Dashboard(snap)

	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.TotalExpenses.IsZero(), "sin unidades vendidas no hay costo de ventas")
	assert.True(t, stats.NetProfit.IsZero())
	assert.True(t, stats.ProfitMargin.IsZero())
	assert.True(t, stats.AverageOrderValue.IsZero())
	require.Len(t, stats.TopProducts, 2, "los productos sin ventas se incluyen")
	for _, p := range stats.TopProducts {
		assert.True(t, p.Revenue.IsZero())
		assert.True(t, p.TotalCost.IsZero())
		assert.True(t, p.Margin.IsZero())
		assert.True(t, p.MarginPercentage.IsZero())
	}
}

func TestDashboard_MargenCeroSinIngresosAunqueHayaGastos(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	snap := costing.Snapshot{
		Expenses: []entity.Expense{{ID: "x1", Amount: dec("500"), Category: "arriendo"}},
	}

	stats := calc.Dashboard(snap)

	assert.Equal(t, "500", stats.TotalExpenses.String())
	assert.Equal(t, "-500", stats.NetProfit.String())
	assert.True(t, stats.ProfitMargin.IsZero())
}

func TestDashboard_TotalesYCostoDeVentas(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	cafe := entity.Product{ID: "p-cafe", Name: "Café", EmployeeHoursRequired: dec("0.1")}
	snap := costing.Snapshot{
		Products:  []entity.Product{cafe},
		Employees: []entity.Employee{{ID: "e1", HourlyRate: dec("10")}},
		Sales: []entity.Sale{
			{ID: "s1", ProductID: "p-cafe", Quantity: 2, Price: dec("3")},
			{ID: "s2", ProductID: "p-cafe", Quantity: 4, Price: dec("3")},
			{ID: "s3", ProductID: "borrado", Quantity: 1, Price: dec("12")},
		},
		Expenses: []entity.Expense{
			{ID: "x1", Amount: dec("4")},
			{ID: "x2", Amount: dec("2")},
		},
	}

	stats := calc.Dashboard(snap)

	assert.Equal(t, "30", stats.TotalRevenue.String())
	assert.Equal(t, "6", stats.LoggedExpenses.String())
	assert.Equal(t, "6", stats.ProductCosts.String(), "6 cafés × (0.1h × 10)")
	assert.Equal(t, "12", stats.TotalExpenses.String())
	assert.Equal(t, "18", stats.NetProfit.String())
	assert.Equal(t, "60", stats.ProfitMargin.String())
	assert.Equal(t, "10", stats.AverageOrderValue.String())
	assert.Equal(t, 3, stats.NumberOfSales)
}

func TestDashboard_TopProductsOrdenadoYTruncado(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	var snap costing.Snapshot
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("p%02d", i)
		snap.Products = append(snap.Products, entity.Product{ID: id, Name: id})
		snap.Sales = append(snap.Sales, entity.Sale{
			ID: "s" + id, ProductID: id, Quantity: 1, Price: decimal.NewFromInt(int64((i * 7) % 25)),
		})
	}

	stats := calc.Dashboard(snap)

	require.Len(t, stats.TopProducts, costing.TopProductsLimit)
	for i := 1; i < len(stats.TopProducts); i++ {
		assert.False(t, stats.TopProducts[i].Margin.GreaterThan(stats.TopProducts[i-1].Margin),
			"posición %d fuera de orden", i)
	}
	assert.Equal(t, "24", stats.TopProducts[0].Margin.String())
}

func TestDashboard_IngresoSeConservaEnAgrupacionPorEmpleado(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	snap := costing.Snapshot{
		Products:  []entity.Product{burger()},
		Employees: []entity.Employee{{ID: "e1", Name: "Ana"}, {ID: "e2", Name: "Luis"}},
		Sales: []entity.Sale{
			{ProductID: "p-burger", EmployeeID: "e1", Quantity: 2, Price: dec("10.25")},
			{ProductID: "p-burger", EmployeeID: "e2", Quantity: 1, Price: dec("9.99")},
			{ProductID: "p-burger", EmployeeID: "ex", Quantity: 3, Price: dec("1.01")},
			{ProductID: "p-burger", EmployeeID: "e1", Quantity: 1, Price: dec("10")},
		},
	}

	stats := calc.Dashboard(snap)
	rows := costing.SalesByEmployee(snap.Sales, snap.Employees)

	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.TotalRevenue)
	}
	assert.True(t, sum.Equal(stats.TotalRevenue), "%s != %s", sum, stats.TotalRevenue)
}
