package costing_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func TestGroupings_ColeccionesVacias(t *testing.T) {
	assert.Empty(t, costing.SalesByEmployee(nil, nil))
	assert.NotNil(t, costing.SalesByEmployee(nil, nil))
	assert.Empty(t, costing.TimeByCategory(nil, nil))
	assert.Empty(t, costing.StorageByProduct(nil, nil))
	assert.Empty(t, costing.ExpensesByCategory(nil))
}

func TestSalesByEmployee_EmpleadoBorradoComoUnknown(t *testing.T) {
	employees := []entity.Employee{{ID: "e1", Name: "Ana"}}
	sales := []entity.Sale{
		{EmployeeID: "e1", Quantity: 1, Price: dec("5")},
		{EmployeeID: "borrado", Quantity: 2, Price: dec("10")},
		{EmployeeID: "borrado", Quantity: 1, Price: dec("1")},
	}

	rows := costing.SalesByEmployee(sales, employees)

	require.Len(t, rows, 2)
	assert.Equal(t, "borrado", rows[0].EmployeeID)
	assert.Equal(t, costing.UnknownLabel, rows[0].EmployeeName)
	assert.Equal(t, "21", rows[0].TotalRevenue.String())
	assert.Equal(t, 2, rows[0].NumberOfSales)
	assert.Equal(t, "Ana", rows[1].EmployeeName)
	assert.Equal(t, 1, rows[1].NumberOfSales)
}

func TestTimeByCategory_ExcluyeProductosInexistentes(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Category: "bebidas", PreparationTime: 5},
		{ID: "p2", Category: "platos", PreparationTime: 20},
		{ID: "p3", Category: "bebidas", PreparationTime: 10},
	}
	sales := []entity.Sale{
		{ProductID: "p1", Quantity: 4},
		{ProductID: "p2", Quantity: 3},
		{ProductID: "p3", Quantity: 1},
		{ProductID: "borrado", Quantity: 100},
	}

	rows := costing.TimeByCategory(sales, products)

	require.Len(t, rows, 2)
	assert.Equal(t, "platos", rows[0].Category)
	assert.Equal(t, 60, rows[0].TotalTime)
	assert.Equal(t, "1", rows[0].TotalHours.String())
	assert.Equal(t, 3, rows[0].UnitsSold)
	assert.Equal(t, "bebidas", rows[1].Category)
	assert.Equal(t, 30, rows[1].TotalTime)
	assert.Equal(t, "0.5", rows[1].TotalHours.String())
	assert.Equal(t, 5, rows[1].UnitsSold)
}

func TestStorageByProduct_OrdenadoYMaximo15(t *testing.T) {
	var products []entity.Product
	var sales []entity.Sale
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("p%02d", i)
		products = append(products, entity.Product{ID: id, Name: "Producto " + id, StorageRequired: dec("0.5")})
		sales = append(sales, entity.Sale{ProductID: id, Quantity: (i*3)%20 + 1})
	}
	sales = append(sales, entity.Sale{ProductID: "borrado", Quantity: 1})

	rows := costing.StorageByProduct(sales, products)

	require.Len(t, rows, costing.StorageByProductLimit)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].TotalStorage.GreaterThan(rows[i-1].TotalStorage))
	}
	assert.Equal(t, "10", rows[0].TotalStorage.String(), "20 unidades × 0.5")
}

func TestStorageByProduct_ProductoInexistente(t *testing.T) {
	rows := costing.StorageByProduct([]entity.Sale{{ProductID: "borrado", Quantity: 2}}, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, costing.UnknownLabel, rows[0].ProductName)
	assert.True(t, rows[0].TotalStorage.IsZero())
	assert.Equal(t, 2, rows[0].UnitsSold)
}

func TestExpensesByCategory(t *testing.T) {
	expenses := []entity.Expense{
		{Category: "servicios", Amount: dec("120.50")},
		{Category: "arriendo", Amount: dec("800")},
		{Category: "servicios", Amount: dec("79.50")},
	}

	rows := costing.ExpensesByCategory(expenses)

	require.Len(t, rows, 2)
	assert.Equal(t, "arriendo", rows[0].Category)
	assert.Equal(t, 1, rows[0].Count)
	assert.Equal(t, "servicios", rows[1].Category)
	assert.Equal(t, "200", rows[1].TotalAmount.String())
	assert.Equal(t, 2, rows[1].Count)
}
