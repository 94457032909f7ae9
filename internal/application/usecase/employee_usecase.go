package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create registra un empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.HourlyRate.IsNegative() || in.HoursPerWeek.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         name,
		Role:         strings.TrimSpace(in.Role),
		HourlyRate:   in.HourlyRate,
		HoursPerWeek: in.HoursPerWeek,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID. (nil, nil) si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza los campos enviados de un empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.Name = name
	}
	if in.Role != nil {
		employee.Role = strings.TrimSpace(*in.Role)
	}
	if in.HourlyRate != nil {
		if in.HourlyRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		employee.HourlyRate = *in.HourlyRate
	}
	if in.HoursPerWeek != nil {
		if in.HoursPerWeek.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		employee.HoursPerWeek = *in.HoursPerWeek
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, limit, offset int) (*dto.EmployeeListResponse, error) {
	limit, offset = dto.NormalizePage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un empleado. Sus ventas pasan a mostrarse como "Unknown" en la analítica.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Role:         e.Role,
		HourlyRate:   e.HourlyRate,
		HoursPerWeek: e.HoursPerWeek,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
