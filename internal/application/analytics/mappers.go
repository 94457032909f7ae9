package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
)

// money redondea a 2 decimales para presentación; los cálculos internos no se redondean.
func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// toProductAnalysisDTO redondea cada componente y deriva de ellos el total y el margen,
// para que en la respuesta ingredient+labor+storage == total_cost y revenue-total_cost == margin.
func toProductAnalysisDTO(a costing.ProductAnalysis) dto.ProductAnalysisDTO {
	revenue := money(a.Revenue)
	ingredient := money(a.IngredientCost)
	labor := money(a.LaborCost)
	storage := money(a.StorageCost)
	total := ingredient.Add(labor).Add(storage)
	return dto.ProductAnalysisDTO{
		ProductID:        a.ProductID,
		ProductName:      a.ProductName,
		Category:         a.Category,
		UnitsSold:        a.UnitsSold,
		Revenue:          revenue,
		CostPerUnit:      a.CostPerUnit.Round(4),
		TotalCost:        total,
		IngredientCost:   ingredient,
		LaborCost:        labor,
		StorageCost:      storage,
		Margin:           revenue.Sub(total),
		MarginPercentage: money(a.MarginPercentage),
	}
}

func toDashboardDTO(s costing.DashboardStats) *dto.DashboardStatsDTO {
	top := make([]dto.ProductAnalysisDTO, 0, len(s.TopProducts))
	for _, a := range s.TopProducts {
		top = append(top, toProductAnalysisDTO(a))
	}
	return &dto.DashboardStatsDTO{
		TotalRevenue:      money(s.TotalRevenue),
		TotalExpenses:     money(s.TotalExpenses),
		LoggedExpenses:    money(s.LoggedExpenses),
		ProductCosts:      money(s.ProductCosts),
		NetProfit:         money(s.NetProfit),
		ProfitMargin:      money(s.ProfitMargin),
		AverageOrderValue: money(s.AverageOrderValue),
		NumberOfSales:     s.NumberOfSales,
		TopProducts:       top,
	}
}

func toEmployeeSalesDTOs(rows []costing.EmployeeSales) []dto.EmployeeSalesDTO {
	out := make([]dto.EmployeeSalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.EmployeeSalesDTO{
			EmployeeID:    r.EmployeeID,
			EmployeeName:  r.EmployeeName,
			TotalRevenue:  money(r.TotalRevenue),
			NumberOfSales: r.NumberOfSales,
		})
	}
	return out
}

func toExpenseCategoryDTOs(rows []costing.ExpenseCategory) []dto.ExpenseCategoryDTO {
	out := make([]dto.ExpenseCategoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ExpenseCategoryDTO{
			Category:    r.Category,
			TotalAmount: money(r.TotalAmount),
			Count:       r.Count,
		})
	}
	return out
}
