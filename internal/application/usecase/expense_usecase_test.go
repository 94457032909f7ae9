package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain"
)

func TestExpenseUseCase_CreateCategoriaPorDefecto(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newMemExpenses())

	out, err := uc.Create(context.Background(), dto.CreateExpenseRequest{Description: "Gas", Amount: dec("80")})
	require.NoError(t, err)
	assert.Equal(t, "general", out.Category)
	assert.False(t, out.Date.IsZero())
}

func TestExpenseUseCase_MontoNegativo(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newMemExpenses())

	_, err := uc.Create(context.Background(), dto.CreateExpenseRequest{Amount: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUseCase_CreateYUpdate(t *testing.T) {
	repo := newMemEmployees()
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateEmployeeRequest{Name: "Marta", Role: "mesera", HourlyRate: dec("11")})
	require.NoError(t, err)

	rate := dec("13.5")
	out, err := uc.Update(ctx, created.ID, dto.UpdateEmployeeRequest{HourlyRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "13.5", out.HourlyRate.String())
	assert.Equal(t, "mesera", out.Role)

	empty := ""
	_, err = uc.Update(ctx, created.ID, dto.UpdateEmployeeRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
