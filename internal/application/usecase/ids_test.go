package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// pgProducts se comporta como la columna uuid de Postgres: rechaza ids mal formados.
type pgProducts struct{ *memProducts }

var errUUIDSyntax = errors.New(`ERROR: invalid input syntax for type uuid: "abc" (SQLSTATE 22P02)`)

func (p pgProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errUUIDSyntax
	}
	return p.memProducts.GetByID(ctx, id)
}

func (p pgProducts) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errUUIDSyntax
	}
	return p.memProducts.Delete(ctx, id)
}

func TestProductUseCase_IDMalFormadoEsNoEncontrado(t *testing.T) {
	uc := usecase.NewProductUseCase(pgProducts{newMemProducts(entity.Product{ID: pizzaID, Name: "Pizza", Price: dec("20")})})
	ctx := context.Background()

	out, err := uc.GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, out)

	price := dec("9")
	upd, err := uc.Update(ctx, "abc", dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Nil(t, upd)

	assert.ErrorIs(t, uc.Delete(ctx, "abc"), domain.ErrNotFound)
}

func TestUseCases_IDMalFormadoEnRuta(t *testing.T) {
	ctx := context.Background()

	employees := usecase.NewEmployeeUseCase(newMemEmployees())
	e, err := employees.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, e)
	assert.ErrorIs(t, employees.Delete(ctx, "1"), domain.ErrNotFound)

	expenses := usecase.NewExpenseUseCase(newMemExpenses())
	x, err := expenses.GetByID(ctx, "gasto-1")
	require.NoError(t, err)
	assert.Nil(t, x)
	assert.ErrorIs(t, expenses.Delete(ctx, "gasto-1"), domain.ErrNotFound)

	sales, _ := newSaleUseCase()
	s, err := sales.GetByID(ctx, "venta")
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, sales.Delete(ctx, "venta"), domain.ErrNotFound)

	users := usecase.NewUserUseCase(&memUsers{rows: map[string]*entity.User{}})
	u, err := users.GetByID(ctx, "admin")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSaleUseCase_IDMalFormadoEnCuerpoOFiltro(t *testing.T) {
	uc, _ := newSaleUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateSaleRequest{
		ProductID: pizzaID, EmployeeID: luisID, Quantity: 1, Date: "2024-03-01",
	})
	require.NoError(t, err)

	bad := "no-es-uuid"
	_, err = uc.Update(ctx, created.ID, dto.UpdateSaleRequest{ProductID: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, created.ID, dto.UpdateSaleRequest{EmployeeID: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(ctx, dto.ListSalesRequest{EmployeeID: bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(ctx, dto.ListSalesRequest{ProductID: bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.List(ctx, dto.ListSalesRequest{From: "2024-03-01", To: "2024-03-01", ProductID: pizzaID})
	require.NoError(t, err)
	require.NotNil(t, out)
}
