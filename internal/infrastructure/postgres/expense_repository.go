package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, description, amount, category, expense_date, created_at, updated_at`

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el repositorio.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO expenses (`+expenseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Description, e.Amount, e.Category, e.Date, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto. (nil, nil) si no existe.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := scanExpense(r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// Update actualiza un gasto.
func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE expenses SET description = $2, amount = $3, category = $4, expense_date = $5, updated_at = $6 WHERE id = $1`,
		e.ID, e.Description, e.Amount, e.Category, e.Date, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista gastos del más reciente al más antiguo.
func (r *ExpenseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Expense, error) {
	return r.query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY expense_date DESC, id LIMIT $1 OFFSET $2`, limit, offset)
}

// All devuelve todos los gastos en orden de alta.
func (r *ExpenseRepo) All(ctx context.Context) ([]*entity.Expense, error) {
	return r.query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY created_at, id`)
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanExpense(row rowScanner) (*entity.Expense, error) {
	var e entity.Expense
	if err := row.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
