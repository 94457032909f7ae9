package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/analytics/dashboard.
//
// total_expenses incluye los gastos registrados más el costo estimado de lo vendido;
// logged_expenses y product_costs muestran cada parte por separado.
type DashboardStatsDTO struct {
	TotalRevenue      decimal.Decimal      `json:"total_revenue"`
	TotalExpenses     decimal.Decimal      `json:"total_expenses"`
	LoggedExpenses    decimal.Decimal      `json:"logged_expenses"`
	ProductCosts      decimal.Decimal      `json:"product_costs"`
	NetProfit         decimal.Decimal      `json:"net_profit"`
	ProfitMargin      decimal.Decimal      `json:"profit_margin"` // % sobre ingresos, 0 sin ingresos
	AverageOrderValue decimal.Decimal      `json:"average_order_value"`
	NumberOfSales     int                  `json:"number_of_sales"`
	TopProducts       []ProductAnalysisDTO `json:"top_products"` // máx. 10, por margen descendente
}
