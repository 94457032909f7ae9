package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func burger() entity.Product {
	return entity.Product{
		ID:                    "p-burger",
		Name:                  "Hamburguesa",
		Price:                 dec("10"),
		Category:              "platos",
		PreparationTime:       30,
		StorageRequired:       dec("0.1"),
		EmployeeHoursRequired: dec("1"),
	}
}

func TestUnitCost_SinIngredientesUnEmpleado(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	employees := []entity.Employee{{ID: "e1", Name: "Ana", HourlyRate: dec("15")}}

	b := calc.UnitCost(burger(), employees)

	assert.True(t, b.Ingredient.IsZero())
	assert.Equal(t, "15", b.Labor.String())
	assert.Equal(t, "0.0167", b.Storage.StringFixed(4))
	assert.Equal(t, "15.0167", b.Total().StringFixed(4))
}

func TestUnitCost_IngredientesUsanCostoEstimado(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	p := entity.Product{
		ID: "p1",
		Ingredients: []entity.IngredientQuantity{
			{Name: "pan", Quantity: dec("2")},
			{Name: "carne", Quantity: dec("1.5")},
		},
	}

	b := calc.UnitCost(p, nil)

	// (2 + 1.5) × 0.5
	assert.Equal(t, "1.75", b.Ingredient.String())
	assert.True(t, b.Labor.IsZero())
	assert.True(t, b.Storage.IsZero())
}

func TestUnitCost_SinEmpleadosUsaTarifaPorDefecto(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	p := entity.Product{ID: "p1", EmployeeHoursRequired: dec("2")}

	b := calc.UnitCost(p, []entity.Employee{})

	assert.Equal(t, "30", b.Labor.String(), "2h × tarifa por defecto 15")
}

func TestUnitCost_PromedioDeTarifas(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	p := entity.Product{ID: "p1", EmployeeHoursRequired: dec("0.5")}
	employees := []entity.Employee{
		{ID: "e1", HourlyRate: dec("10")},
		{ID: "e2", HourlyRate: dec("20")},
		{ID: "e3", HourlyRate: dec("30")},
	}

	b := calc.UnitCost(p, employees)

	assert.Equal(t, "10", b.Labor.String(), "0.5h × promedio 20")
}

func TestUnitCost_DiasPorMesCeroNoDivideEntreCero(t *testing.T) {
	rates := costing.DefaultRates()
	rates.DaysPerMonth = 0
	calc := costing.NewCalculator(rates)
	p := entity.Product{ID: "p1", StorageRequired: dec("3")}

	b := calc.UnitCost(p, nil)

	assert.Equal(t, "0.5", b.Storage.String(), "3 × 5 / 30")
}

func TestUnitCost_Determinista(t *testing.T) {
	calc := costing.NewCalculator(costing.DefaultRates())
	employees := []entity.Employee{{ID: "e1", HourlyRate: dec("12.5")}}

	a := calc.UnitCost(burger(), employees)
	b := calc.UnitCost(burger(), employees)

	assert.True(t, a.Total().Equal(b.Total()))
}

func TestAverageHourlyRate(t *testing.T) {
	fallback := dec("15")
	assert.True(t, costing.AverageHourlyRate(nil, fallback).Equal(fallback))
	assert.Equal(t, "11", costing.AverageHourlyRate([]entity.Employee{
		{HourlyRate: dec("10")}, {HourlyRate: dec("12")},
	}, fallback).String())
}

func TestPercentYSafeDiv(t *testing.T) {
	assert.True(t, costing.Percent(dec("5"), decimal.Zero).IsZero())
	assert.True(t, costing.SafeDiv(dec("5"), decimal.Zero).IsZero())
	assert.Equal(t, "25", costing.Percent(dec("5"), dec("20")).String())
}

func TestLookupName(t *testing.T) {
	names := map[string]string{"e1": "Ana"}
	assert.Equal(t, "Ana", costing.LookupName(names, "e1"))
	assert.Equal(t, costing.UnknownLabel, costing.LookupName(names, "borrado"))
}
