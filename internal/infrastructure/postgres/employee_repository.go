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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, name, role, hourly_rate, hours_per_week, created_at, updated_at`

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el repositorio.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, e.ID, e.Name, e.Role, e.HourlyRate, e.HoursPerWeek, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE employees SET name = $2, role = $3, hourly_rate = $4, hours_per_week = $5, updated_at = $6 WHERE id = $1`,
		e.ID, e.Name, e.Role, e.HourlyRate, e.HoursPerWeek, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista empleados por nombre con paginación.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	return r.query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
}

// All devuelve todos los empleados en orden de alta.
func (r *EmployeeRepo) All(ctx context.Context) ([]*entity.Employee, error) {
	return r.query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY created_at, id`)
}

// Delete elimina un empleado.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var e entity.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Role, &e.HourlyRate, &e.HoursPerWeek, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
