package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// SalesByDayRequest parámetros para GET /api/analytics/sales-by-day.
type SalesByDayRequest struct {
	Range string `query:"range"` // week | month (default month)
}

// ── Por producto ──────────────────────────────────────────────────────────────

// CostBreakdownDTO costo estimado de una unidad del producto.
type CostBreakdownDTO struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	IngredientCost decimal.Decimal `json:"ingredient_cost"`
	LaborCost      decimal.Decimal `json:"labor_cost"`
	StorageCost    decimal.Decimal `json:"storage_cost"`
	CostPerUnit    decimal.Decimal `json:"cost_per_unit"`
}

// ProductAnalysisDTO rendimiento de un producto sobre todas sus ventas.
type ProductAnalysisDTO struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Category         string          `json:"category"`
	UnitsSold        int             `json:"units_sold"`
	Revenue          decimal.Decimal `json:"revenue"`           // Σ precio de venta × cantidad
	CostPerUnit      decimal.Decimal `json:"cost_per_unit"`
	TotalCost        decimal.Decimal `json:"total_cost"`        // CostPerUnit × UnitsSold
	IngredientCost   decimal.Decimal `json:"ingredient_cost"`
	LaborCost        decimal.Decimal `json:"labor_cost"`
	StorageCost      decimal.Decimal `json:"storage_cost"`
	Margin           decimal.Decimal `json:"margin"`            // Revenue - TotalCost
	MarginPercentage decimal.Decimal `json:"margin_percentage"` // Margin / Revenue * 100 (0 sin ingresos)
}

// ── Agrupaciones ──────────────────────────────────────────────────────────────

// EmployeeSalesDTO ventas por empleado.
type EmployeeSalesDTO struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"` // "Unknown" si el empleado ya no existe
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	NumberOfSales int             `json:"number_of_sales"`
}

// CategoryTimeDTO tiempo de preparación por categoría.
type CategoryTimeDTO struct {
	Category   string          `json:"category"`
	TotalTime  int             `json:"total_time"` // minutos
	TotalHours decimal.Decimal `json:"total_hours"`
	UnitsSold  int             `json:"units_sold"`
}

// ProductStorageDTO bodegaje por producto (top 15).
type ProductStorageDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	TotalStorage decimal.Decimal `json:"total_storage"`
	UnitsSold    int             `json:"units_sold"`
}

// ExpenseCategoryDTO gastos por categoría.
type ExpenseCategoryDTO struct {
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int             `json:"count"`
}

// DaySalesDTO ventas de un día del mes seleccionado.
type DaySalesDTO struct {
	Day           int             `json:"day"`
	Date          string          `json:"date"` // YYYY-MM-DD
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalQuantity int             `json:"total_quantity"`
	Employees     []string        `json:"employees"`
}
