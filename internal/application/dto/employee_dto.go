package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	HoursPerWeek decimal.Decimal `json:"hours_per_week"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	Name         *string          `json:"name"`
	Role         *string          `json:"role"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate"`
	HoursPerWeek *decimal.Decimal `json:"hours_per_week"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	HoursPerWeek decimal.Decimal `json:"hours_per_week"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
