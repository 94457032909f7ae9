package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context, limit, offset int) ([]*entity.Expense, error)
	Delete(ctx context.Context, id string) error
}
