package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

var saleColumns = []string{"id", "product_id", "quantity", "price", "sold_at", "employee_id", "created_at", "updated_at"}

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
// product_id y employee_id no llevan FK: una venta sobrevive al borrado del producto o empleado.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func salesSelect() squirrel.SelectBuilder {
	return squirrel.Select(saleColumns...).From("sales").PlaceholderFormat(squirrel.Dollar)
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query, args, err := squirrel.Insert("sales").
		Columns(saleColumns...).
		Values(s.ID, s.ProductID, s.Quantity, s.Price, s.Date, s.EmployeeID, s.CreatedAt, s.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert sale: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query, args, err := salesSelect().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get sale: %w", err)
	}
	s, err := scanSale(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Update actualiza una venta.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	query, args, err := squirrel.Update("sales").
		Set("product_id", s.ProductID).
		Set("quantity", s.Quantity).
		Set("price", s.Price).
		Set("sold_at", s.Date).
		Set("employee_id", s.EmployeeID).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"id": s.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update sale: %w", err)
	}
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ventas aplicando los filtros presentes, de la más reciente a la más antigua.
func (r *SaleRepo) List(ctx context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	query, args, err := buildSaleListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list sales: %w", err)
	}
	return r.query(ctx, query, args...)
}

// All devuelve todas las ventas en orden de registro (usado por el snapshot).
func (r *SaleRepo) All(ctx context.Context) ([]*entity.Sale, error) {
	query, args, err := salesSelect().OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build all sales: %w", err)
	}
	return r.query(ctx, query, args...)
}

// Delete elimina una venta.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func buildSaleListQuery(f repository.SaleFilter) (string, []any, error) {
	b := salesSelect()
	if f.From != nil {
		b = b.Where(squirrel.GtOrEq{"sold_at": *f.From})
	}
	if f.To != nil {
		b = b.Where(squirrel.Lt{"sold_at": *f.To})
	}
	if f.EmployeeID != "" {
		b = b.Where(squirrel.Eq{"employee_id": f.EmployeeID})
	}
	if f.ProductID != "" {
		b = b.Where(squirrel.Eq{"product_id": f.ProductID})
	}
	b = b.OrderBy("sold_at DESC", "id")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	return b.ToSql()
}

func (r *SaleRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row rowScanner) (*entity.Sale, error) {
	var s entity.Sale
	if err := row.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.Price, &s.Date, &s.EmployeeID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
