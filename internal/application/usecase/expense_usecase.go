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

// ExpenseUseCase casos de uso CRUD para gastos operativos.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
	loc  *time.Location
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, loc: time.Local}
}

// WithLocation fija la zona horaria usada para fechas sin hora.
func (uc *ExpenseUseCase) WithLocation(loc *time.Location) *ExpenseUseCase {
	uc.loc = locationOrLocal(loc)
	return uc
}

// Create registra un gasto. Sin categoría queda como "general".
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date, err := parseDate(in.Date, now, uc.loc)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "general"
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto por ID. (nil, nil) si no existe.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	return toExpenseResponse(expense), nil
}

// Update actualiza los campos enviados de un gasto.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if in.Description != nil {
		expense.Description = strings.TrimSpace(*in.Description)
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Category != nil {
		if c := strings.TrimSpace(*in.Category); c != "" {
			expense.Category = c
		}
	}
	if in.Date != nil {
		date, err := parseDate(*in.Date, expense.Date, uc.loc)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List lista gastos con paginación.
func (uc *ExpenseUseCase) List(ctx context.Context, limit, offset int) (*dto.ExpenseListResponse, error) {
	limit, offset = dto.NormalizePage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
