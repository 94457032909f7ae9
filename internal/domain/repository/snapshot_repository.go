package repository

//go:generate mockgen -source=snapshot_repository.go -destination=mocks/mock_snapshot_repository.go -package=mocks

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// SnapshotReader lectura completa (read-only) de las cuatro colecciones que consume el motor de costos.
// Cada método devuelve la colección entera en el momento de la llamada; nunca resultados parciales.
type SnapshotReader interface {
	GetProducts(ctx context.Context) ([]entity.Product, error)
	GetEmployees(ctx context.Context) ([]entity.Employee, error)
	GetSales(ctx context.Context) ([]entity.Sale, error)
	GetExpenses(ctx context.Context) ([]entity.Expense, error)
}
