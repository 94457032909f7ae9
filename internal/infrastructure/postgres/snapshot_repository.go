package postgres

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.SnapshotReader = (*SnapshotRepo)(nil)

// SnapshotRepo lectura completa de las cuatro colecciones para el motor de costos.
// Cada colección sale en orden de alta, que es el orden de "primera aparición" de las agrupaciones.
type SnapshotRepo struct {
	products  *ProductRepo
	employees *EmployeeRepo
	sales     *SaleRepo
	expenses  *ExpenseRepo
}

// NewSnapshotRepository construye el lector sobre pool o tx.
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{
		products:  NewProductRepository(q),
		employees: NewEmployeeRepository(q),
		sales:     NewSaleRepository(q),
		expenses:  NewExpenseRepository(q),
	}
}

// GetProducts todos los productos.
func (r *SnapshotRepo) GetProducts(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.products.All(ctx)
	return values(rows), err
}

// GetEmployees todos los empleados.
func (r *SnapshotRepo) GetEmployees(ctx context.Context) ([]entity.Employee, error) {
	rows, err := r.employees.All(ctx)
	return values(rows), err
}

// GetSales todas las ventas.
func (r *SnapshotRepo) GetSales(ctx context.Context) ([]entity.Sale, error) {
	rows, err := r.sales.All(ctx)
	return values(rows), err
}

// GetExpenses todos los gastos.
func (r *SnapshotRepo) GetExpenses(ctx context.Context) ([]entity.Expense, error) {
	rows, err := r.expenses.All(ctx)
	return values(rows), err
}

func values[T any](rows []*T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out
}
