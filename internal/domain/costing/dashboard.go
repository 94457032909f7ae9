package costing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// TopProductsLimit máximo de productos en el ranking del dashboard.
const TopProductsLimit = 10

// Snapshot contenido completo de las cuatro colecciones en el momento de la consulta.
type Snapshot struct {
	Products  []entity.Product
	Employees []entity.Employee
	Sales     []entity.Sale
	Expenses  []entity.Expense
}

// DashboardStats resumen financiero global.
//
// TotalExpenses es gastos registrados + costo de lo vendido (no solo los Expense).
type DashboardStats struct {
	TotalRevenue      decimal.Decimal
	LoggedExpenses    decimal.Decimal
	ProductCosts      decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetProfit         decimal.Decimal
	ProfitMargin      decimal.Decimal
	AverageOrderValue decimal.Decimal
	NumberOfSales     int
	TopProducts       []ProductAnalysis
}

// Dashboard calcula las estadísticas agregadas del snapshot.
func (c *Calculator) Dashboard(snap Snapshot) DashboardStats {
	totalRevenue := decimal.Zero
	byProduct := make(map[string]*productTotals, len(snap.Products))
	for _, s := range snap.Sales {
		totalRevenue = totalRevenue.Add(s.Total())
		t, ok := byProduct[s.ProductID]
		if !ok {
			t = &productTotals{}
			byProduct[s.ProductID] = t
		}
		t.add(s)
	}

	logged := decimal.Zero
	for _, e := range snap.Expenses {
		logged = logged.Add(e.Amount)
	}

	rate := AverageHourlyRate(snap.Employees, c.rates.FallbackHourlyRate)
	productCosts := decimal.Zero
	analyses := make([]ProductAnalysis, 0, len(snap.Products))
	for _, p := range snap.Products {
		var totals productTotals
		if t, ok := byProduct[p.ID]; ok {
			totals = *t
		}
		a := c.analyze(p, totals, rate)
		productCosts = productCosts.Add(a.TotalCost)
		analyses = append(analyses, a)
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].Margin.GreaterThan(analyses[j].Margin)
	})
	if len(analyses) > TopProductsLimit {
		analyses = analyses[:TopProductsLimit]
	}

	totalCosts := logged.Add(productCosts)
	netProfit := totalRevenue.Sub(totalCosts)

	return DashboardStats{
		TotalRevenue:      totalRevenue,
		LoggedExpenses:    logged,
		ProductCosts:      productCosts,
		TotalExpenses:     totalCosts,
		NetProfit:         netProfit,
		ProfitMargin:      Percent(netProfit, totalRevenue),
		AverageOrderValue: SafeDiv(totalRevenue, qty(len(snap.Sales))),
		NumberOfSales:     len(snap.Sales),
		TopProducts:       analyses,
	}
}
