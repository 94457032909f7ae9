package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientDTO par ingrediente-cantidad.
type IngredientDTO struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name                  string          `json:"name" validate:"required,min=1,max=200"`
	Price                 decimal.Decimal `json:"price"`
	Category              string          `json:"category"`
	Ingredients           []IngredientDTO `json:"ingredients"`
	PreparationTime       int             `json:"preparation_time"` // minutos
	StorageRequired       decimal.Decimal `json:"storage_required"`
	EmployeeHoursRequired decimal.Decimal `json:"employee_hours_required"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name                  *string          `json:"name"`
	Price                 *decimal.Decimal `json:"price"`
	Category              *string          `json:"category"`
	Ingredients           []IngredientDTO  `json:"ingredients"`
	PreparationTime       *int             `json:"preparation_time"`
	StorageRequired       *decimal.Decimal `json:"storage_required"`
	EmployeeHoursRequired *decimal.Decimal `json:"employee_hours_required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Price                 decimal.Decimal `json:"price"`
	Category              string          `json:"category"`
	Ingredients           []IngredientDTO `json:"ingredients"`
	PreparationTime       int             `json:"preparation_time"`
	StorageRequired       decimal.Decimal `json:"storage_required"`
	EmployeeHoursRequired decimal.Decimal `json:"employee_hours_required"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
