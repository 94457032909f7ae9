// Package analytics contiene los casos de uso de analítica de costos y márgenes del restaurante.
//
// Fuente de datos: SnapshotReader (lectura completa de productos, empleados, ventas y gastos).
// Los cálculos se delegan en el motor puro internal/domain/costing; aquí solo se carga el
// snapshot y se convierten los resultados en DTOs.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// AnalyticsUseCase expone las consultas del motor de costos sobre el snapshot actual.
// No guarda caché: cada llamada vuelve a leer las cuatro colecciones y recalcula todo.
type AnalyticsUseCase struct {
	snapshots repository.SnapshotReader
	calc      *costing.Calculator
	now       func() time.Time
	loc       *time.Location
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(snapshots repository.SnapshotReader, calc *costing.Calculator) *AnalyticsUseCase {
	return &AnalyticsUseCase{snapshots: snapshots, calc: calc, now: time.Now, loc: time.Local}
}

// WithLocation fija la zona horaria en la que se agrupan las ventas por día.
// Debe ser la misma con la que se interpretan las fechas sin hora al registrar ventas.
func (uc *AnalyticsUseCase) WithLocation(loc *time.Location) *AnalyticsUseCase {
	if loc == nil {
		loc = time.Local
	}
	uc.loc = loc
	return uc
}

// WithClock reemplaza el reloj usado para elegir el mes de SalesByDay (útil en tests).
func (uc *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	uc.now = now
	return uc
}

// LoadSnapshot lee las cuatro colecciones en paralelo.
func (uc *AnalyticsUseCase) LoadSnapshot(ctx context.Context) (costing.Snapshot, error) {
	type productsResult struct {
		rows []entity.Product
		err  error
	}
	type employeesResult struct {
		rows []entity.Employee
		err  error
	}
	type salesResult struct {
		rows []entity.Sale
		err  error
	}
	type expensesResult struct {
		rows []entity.Expense
		err  error
	}

	productsCh := make(chan productsResult, 1)
	employeesCh := make(chan employeesResult, 1)
	salesCh := make(chan salesResult, 1)
	expensesCh := make(chan expensesResult, 1)

	go func() {
		rows, err := uc.snapshots.GetProducts(ctx)
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.snapshots.GetEmployees(ctx)
		employeesCh <- employeesResult{rows, err}
	}()
	go func() {
		rows, err := uc.snapshots.GetSales(ctx)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		rows, err := uc.snapshots.GetExpenses(ctx)
		expensesCh <- expensesResult{rows, err}
	}()

	products := <-productsCh
	employees := <-employeesCh
	sales := <-salesCh
	expenses := <-expensesCh

	if products.err != nil {
		return costing.Snapshot{}, fmt.Errorf("analytics: productos: %w", products.err)
	}
	if employees.err != nil {
		return costing.Snapshot{}, fmt.Errorf("analytics: empleados: %w", employees.err)
	}
	if sales.err != nil {
		return costing.Snapshot{}, fmt.Errorf("analytics: ventas: %w", sales.err)
	}
	if expenses.err != nil {
		return costing.Snapshot{}, fmt.Errorf("analytics: gastos: %w", expenses.err)
	}

	return costing.Snapshot{
		Products:  products.rows,
		Employees: employees.rows,
		Sales:     sales.rows,
		Expenses:  expenses.rows,
	}, nil
}

// GetDashboard calcula las estadísticas globales del dashboard.
func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := uc.calc.Dashboard(snap)
	return toDashboardDTO(stats), nil
}

// GetProductAnalysis devuelve el rendimiento de un producto. domain.ErrNotFound si no existe.
func (uc *AnalyticsUseCase) GetProductAnalysis(ctx context.Context, productID string) (*dto.ProductAnalysisDTO, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	a, ok := uc.calc.Analyze(productID, snap.Products, snap.Sales, snap.Employees)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toProductAnalysisDTO(a)
	return &out, nil
}

// GetProductCost devuelve el costo estimado por unidad de un producto. domain.ErrNotFound si no existe.
func (uc *AnalyticsUseCase) GetProductCost(ctx context.Context, productID string) (*dto.CostBreakdownDTO, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range snap.Products {
		if p.ID != productID {
			continue
		}
		b := uc.calc.UnitCost(p, snap.Employees)
		ingredient, labor, storage := money(b.Ingredient), money(b.Labor), b.Storage.Round(4)
		return &dto.CostBreakdownDTO{
			ProductID:      p.ID,
			ProductName:    p.Name,
			IngredientCost: ingredient,
			LaborCost:      labor,
			StorageCost:    storage,
			CostPerUnit:    ingredient.Add(labor).Add(storage),
		}, nil
	}
	return nil, domain.ErrNotFound
}

// GetSalesByEmployee ventas agrupadas por empleado.
func (uc *AnalyticsUseCase) GetSalesByEmployee(ctx context.Context) ([]dto.EmployeeSalesDTO, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return toEmployeeSalesDTOs(costing.SalesByEmployee(snap.Sales, snap.Employees)), nil
}

// GetTimeByCategory tiempo de preparación vendido por categoría.
func (uc *AnalyticsUseCase) GetTimeByCategory(ctx context.Context) ([]dto.CategoryTimeDTO, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows := costing.TimeByCategory(snap.Sales, snap.Products)
	out := make([]dto.CategoryTimeDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryTimeDTO{
			Category:   r.Category,
			TotalTime:  r.TotalTime,
			TotalHours: r.TotalHours.Round(2),
			UnitsSold:  r.UnitsSold,
		})
	}
	return out, nil
}

// GetStorageByProduct bodegaje por producto (top 15).
func (uc *AnalyticsUseCase) GetStorageByProduct(ctx context.Context) ([]dto.ProductStorageDTO, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows := costing.StorageByProduct(snap.Sales, snap.Products)
	out := make([]dto.ProductStorageDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductStorageDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			TotalStorage: r.TotalStorage.Round(2),
			UnitsSold:    r.UnitsSold,
		})
	}
	return out, nil
}

// GetExpensesByCategory gastos agrupados por categoría.
func (uc *AnalyticsUseCase) GetExpensesByCategory(ctx context.Context) ([]dto.ExpenseCategoryDTO, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return toExpenseCategoryDTOs(costing.ExpensesByCategory(snap.Expenses)), nil
}

// GetSalesByDay ventas por día del mes relevante (o de su última semana).
func (uc *AnalyticsUseCase) GetSalesByDay(ctx context.Context, rng costing.DayRange) ([]dto.DaySalesDTO, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows := costing.SalesByDay(snap.Sales, snap.Employees, rng, uc.now().In(uc.loc))
	out := make([]dto.DaySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DaySalesDTO{
			Day:           r.Day,
			Date:          r.Date.Format("2006-01-02"),
			TotalRevenue:  money(r.TotalRevenue),
			TotalQuantity: r.TotalQuantity,
			Employees:     r.Employees,
		})
	}
	return out, nil
}
