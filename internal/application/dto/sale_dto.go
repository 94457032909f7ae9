package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
// Si Price es cero se toma el precio actual del producto; si Date está vacío se usa la fecha actual.
type CreateSaleRequest struct {
	ProductID  string          `json:"product_id"`
	EmployeeID string          `json:"employee_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Date       string          `json:"date"` // YYYY-MM-DD o RFC3339
}

// UpdateSaleRequest entrada para corregir una venta.
type UpdateSaleRequest struct {
	ProductID  *string          `json:"product_id"`
	EmployeeID *string          `json:"employee_id"`
	Quantity   *int             `json:"quantity"`
	Price      *decimal.Decimal `json:"price"`
	Date       *string          `json:"date"`
}

// ListSalesRequest filtros de GET /api/sales.
type ListSalesRequest struct {
	From       string `query:"from"` // YYYY-MM-DD inclusive
	To         string `query:"to"`   // YYYY-MM-DD inclusive
	EmployeeID string `query:"employee_id"`
	ProductID  string `query:"product_id"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	EmployeeID string          `json:"employee_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Total      decimal.Decimal `json:"total"`
	Date       time.Time       `json:"date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
