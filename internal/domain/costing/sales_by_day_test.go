package costing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

var (
	now       = time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	employees = []entity.Employee{{ID: "e1", Name: "Ana"}, {ID: "e2", Name: "Luis"}}
)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 13, 0, 0, 0, time.UTC)
}

func TestSalesByDay_MismoDiaDosEmpleados(t *testing.T) {
	sales := []entity.Sale{
		{ProductID: "p1", EmployeeID: "e1", Quantity: 2, Price: dec("10"), Date: at(2024, 3, 10)},
		{ProductID: "p2", EmployeeID: "e2", Quantity: 3, Price: dec("5"), Date: at(2024, 3, 10)},
		{ProductID: "p2", EmployeeID: "e2", Quantity: 1, Price: dec("5"), Date: at(2024, 3, 10)},
	}

	rows := costing.SalesByDay(sales, employees, costing.RangeMonth, now)

	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].Day)
	assert.Equal(t, 6, rows[0].TotalQuantity)
	assert.Equal(t, "40", rows[0].TotalRevenue.String())
	assert.ElementsMatch(t, []string{"Ana", "Luis"}, rows[0].Employees)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), rows[0].Date)
}

func TestSalesByDay_OrdenAscendenteYSoloMesEnCurso(t *testing.T) {
	sales := []entity.Sale{
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 3, 14)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 3, 2)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 2, 20)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 3, 9)},
	}

	rows := costing.SalesByDay(sales, employees, costing.RangeMonth, now)

	require.Len(t, rows, 3)
	assert.Equal(t, []int{2, 9, 14}, []int{rows[0].Day, rows[1].Day, rows[2].Day})
}

func TestSalesByDay_SinVentasEnElMesUsaElMasReciente(t *testing.T) {
	sales := []entity.Sale{
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2023, 12, 5)},
		{EmployeeID: "e2", Quantity: 2, Price: dec("1"), Date: at(2024, 1, 28)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 1, 3)},
	}

	rows := costing.SalesByDay(sales, employees, costing.RangeMonth, now)

	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Day)
	assert.Equal(t, 28, rows[1].Day)
	assert.Equal(t, time.January, rows[1].Date.Month())
}

func TestSalesByDay_SemanaEnMesEnCurso(t *testing.T) {
	sales := []entity.Sale{
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 3, 8)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 3, 9)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 3, 15)},
	}

	rows := costing.SalesByDay(sales, employees, costing.RangeWeek, now)

	require.Len(t, rows, 2, "del 9 al 15 de marzo")
	assert.Equal(t, 9, rows[0].Day)
	assert.Equal(t, 15, rows[1].Day)
}

func TestSalesByDay_SemanaEnMesAnteriorUsaUltimosDiasDelMes(t *testing.T) {
	sales := []entity.Sale{
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 2, 22)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 2, 23)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 2, 29)},
	}

	rows := costing.SalesByDay(sales, employees, costing.RangeWeek, now)

	require.Len(t, rows, 2, "del 23 al 29 de febrero (bisiesto)")
	assert.Equal(t, 23, rows[0].Day)
	assert.Equal(t, 29, rows[1].Day)
}

func TestSalesByDay_SemanaAlInicioDelMesNoCruzaAlMesAnterior(t *testing.T) {
	sales := []entity.Sale{
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 2, 28)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("1"), Date: at(2024, 3, 1)},
		{EmployeeID: "e2", Quantity: 2, Price: dec("1"), Date: at(2024, 3, 3)},
	}
	third := time.Date(2024, 3, 3, 20, 0, 0, 0, time.UTC)

	rows := costing.SalesByDay(sales, employees, costing.RangeWeek, third)

	require.Len(t, rows, 2, "la ventana se recorta al 1 de marzo")
	assert.Equal(t, 1, rows[0].Day)
	assert.Equal(t, 3, rows[1].Day)
	assert.Equal(t, time.March, rows[0].Date.Month())
}

func TestSalesByDay_AgrupaEnLaZonaDeNow(t *testing.T) {
	cot := time.FixedZone("COT", -5*60*60)
	sales := []entity.Sale{
		// medianoche del 1 de marzo en Bogotá, tal como llega de la base (UTC)
		{EmployeeID: "e1", Quantity: 1, Price: dec("3"), Date: time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)},
		{EmployeeID: "e1", Quantity: 1, Price: dec("3"), Date: time.Date(2024, 3, 10, 0, 0, 0, 0, cot)},
	}

	rows := costing.SalesByDay(sales, employees, costing.RangeMonth, time.Date(2024, 3, 15, 12, 0, 0, 0, cot))

	require.Len(t, rows, 2)
	assert.Equal(t, []int{1, 10}, []int{rows[0].Day, rows[1].Day})
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, cot), rows[0].Date)
}

func TestSalesByDay_FechasInvalidasYVacio(t *testing.T) {
	assert.Empty(t, costing.SalesByDay(nil, nil, costing.RangeMonth, now))

	sales := []entity.Sale{
		{EmployeeID: "e1", Quantity: 1, Price: dec("1")},
		{EmployeeID: "borrado", Quantity: 1, Price: dec("2"), Date: at(2024, 3, 1)},
	}
	rows := costing.SalesByDay(sales, employees, costing.RangeMonth, now)

	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].TotalQuantity)
	assert.Equal(t, []string{costing.UnknownLabel}, rows[0].Employees)
}

func TestParseDayRange(t *testing.T) {
	r, ok := costing.ParseDayRange("week")
	assert.True(t, ok)
	assert.Equal(t, costing.RangeWeek, r)

	r, ok = costing.ParseDayRange("")
	assert.True(t, ok)
	assert.Equal(t, costing.RangeMonth, r)

	_, ok = costing.ParseDayRange("year")
	assert.False(t, ok)
}
