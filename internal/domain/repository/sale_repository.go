package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// SaleFilter filtros opcionales del listado de ventas. Los campos vacíos no filtran.
type SaleFilter struct {
	From       *time.Time // inclusive
	To         *time.Time // exclusivo
	EmployeeID string
	ProductID  string
	Limit      int
	Offset     int
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
	Delete(ctx context.Context, id string) error
}
