package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProductUseCase_Create(t *testing.T) {
	repo := newMemProducts()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:                  "  Hamburguesa ",
		Price:                 dec("12.50"),
		Category:              "platos",
		Ingredients:           []dto.IngredientDTO{{Name: "pan", Quantity: dec("1")}},
		PreparationTime:       15,
		StorageRequired:       dec("0.2"),
		EmployeeHoursRequired: dec("0.25"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Hamburguesa", out.Name)
	require.Len(t, out.Ingredients, 1)
	assert.Contains(t, repo.rows, out.ID)
}

func TestProductUseCase_CreateRechazaEntradaInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())
	ctx := context.Background()

	cases := map[string]dto.CreateProductRequest{
		"sin nombre":           {Name: " "},
		"precio negativo":      {Name: "x", Price: dec("-1")},
		"tiempo negativo":      {Name: "x", PreparationTime: -5},
		"ingrediente sin name": {Name: "x", Ingredients: []dto.IngredientDTO{{Quantity: dec("1")}}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductUseCase_UpdateParcial(t *testing.T) {
	repo := newMemProducts()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Sopa", Price: dec("5"), Category: "entradas"})
	require.NoError(t, err)

	price := dec("6")
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "6", out.Price.String())
	assert.Equal(t, "Sopa", out.Name)
	assert.Equal(t, "entradas", out.Category)

	missing, err := uc.Update(ctx, ausenteID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductUseCase_ListNormalizaPagina(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())

	out, err := uc.List(context.Background(), 0, -3)
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultPageLimit, out.Page.Limit)
	assert.Equal(t, 0, out.Page.Offset)
	assert.NotNil(t, out.Items)
}
