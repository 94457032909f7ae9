package costing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// StorageByProductLimit máximo de filas de bodegaje por producto.
const StorageByProductLimit = 15

// EmployeeSales ventas agrupadas por empleado.
type EmployeeSales struct {
	EmployeeID    string
	EmployeeName  string
	TotalRevenue  decimal.Decimal
	NumberOfSales int
}

// CategoryTime tiempo de preparación agrupado por categoría de producto.
type CategoryTime struct {
	Category   string
	TotalTime  int // minutos
	TotalHours decimal.Decimal
	UnitsSold  int
}

// ProductStorage bodegaje consumido por producto.
type ProductStorage struct {
	ProductID    string
	ProductName  string
	TotalStorage decimal.Decimal
	UnitsSold    int
}

// ExpenseCategory gastos agrupados por categoría.
type ExpenseCategory struct {
	Category    string
	TotalAmount decimal.Decimal
	Count       int
}

// Los agrupadores mantienen el orden de primera aparición de cada clave antes de ordenar,
// así los empates salen en un orden estable.

// SalesByEmployee agrupa ventas por EmployeeID. Un empleado inexistente aparece como UnknownLabel
// pero sus ventas se siguen sumando bajo su ID. Orden: ingresos descendente.
func SalesByEmployee(sales []entity.Sale, employees []entity.Employee) []EmployeeSales {
	names := employeeNames(employees)
	rows := make([]EmployeeSales, 0)
	pos := make(map[string]int)
	for _, s := range sales {
		i, ok := pos[s.EmployeeID]
		if !ok {
			i = len(rows)
			pos[s.EmployeeID] = i
			rows = append(rows, EmployeeSales{
				EmployeeID:   s.EmployeeID,
				EmployeeName: LookupName(names, s.EmployeeID),
			})
		}
		rows[i].TotalRevenue = rows[i].TotalRevenue.Add(s.Total())
		rows[i].NumberOfSales++
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	return rows
}

// TimeByCategory agrupa el tiempo de preparación vendido por categoría.
// Las ventas de productos inexistentes se excluyen: no hay categoría a la cual atribuirlas.
func TimeByCategory(sales []entity.Sale, products []entity.Product) []CategoryTime {
	idx := productIndex(products)
	rows := make([]CategoryTime, 0)
	pos := make(map[string]int)
	for _, s := range sales {
		p, ok := idx[s.ProductID]
		if !ok {
			continue
		}
		i, ok := pos[p.Category]
		if !ok {
			i = len(rows)
			pos[p.Category] = i
			rows = append(rows, CategoryTime{Category: p.Category})
		}
		rows[i].TotalTime += p.PreparationTime * s.Quantity
		rows[i].UnitsSold += s.Quantity
	}
	for i := range rows {
		rows[i].TotalHours = qty(rows[i].TotalTime).Div(sixty)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalTime > rows[j].TotalTime
	})
	return rows
}

// StorageByProduct agrupa el bodegaje (StorageRequired × cantidad) por producto.
// Devuelve como máximo StorageByProductLimit filas, ordenadas de mayor a menor.
// Un producto inexistente aporta bodegaje cero y aparece como UnknownLabel.
func StorageByProduct(sales []entity.Sale, products []entity.Product) []ProductStorage {
	idx := productIndex(products)
	rows := make([]ProductStorage, 0)
	pos := make(map[string]int)
	for _, s := range sales {
		p, known := idx[s.ProductID]
		i, ok := pos[s.ProductID]
		if !ok {
			i = len(rows)
			pos[s.ProductID] = i
			name := UnknownLabel
			if known {
				name = p.Name
			}
			rows = append(rows, ProductStorage{ProductID: s.ProductID, ProductName: name})
		}
		if known {
			rows[i].TotalStorage = rows[i].TotalStorage.Add(p.StorageRequired.Mul(qty(s.Quantity)))
		}
		rows[i].UnitsSold += s.Quantity
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalStorage.GreaterThan(rows[j].TotalStorage)
	})
	if len(rows) > StorageByProductLimit {
		rows = rows[:StorageByProductLimit]
	}
	return rows
}

// ExpensesByCategory agrupa gastos por categoría, de mayor a menor monto.
func ExpensesByCategory(expenses []entity.Expense) []ExpenseCategory {
	rows := make([]ExpenseCategory, 0)
	pos := make(map[string]int)
	for _, e := range expenses {
		i, ok := pos[e.Category]
		if !ok {
			i = len(rows)
			pos[e.Category] = i
			rows = append(rows, ExpenseCategory{Category: e.Category})
		}
		rows[i].TotalAmount = rows[i].TotalAmount.Add(e.Amount)
		rows[i].Count++
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalAmount.GreaterThan(rows[j].TotalAmount)
	})
	return rows
}
