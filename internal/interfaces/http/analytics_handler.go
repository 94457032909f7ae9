package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
)

// AnalyticsHandler maneja los endpoints de costos y rentabilidad.
type AnalyticsHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Indicadores globales del restaurante
// @Description  Ingresos, costos estimados, gastos, utilidad neta, margen y los 10 productos con mayor margen.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetProductAnalysis godoc
// @Summary      Rentabilidad de un producto
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductAnalysisDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/analytics/products/{id} [get]
func (h *AnalyticsHandler) GetProductAnalysis(c *fiber.Ctx) error {
	out, err := h.uc.GetProductAnalysis(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetProductCost godoc
// @Summary      Costo unitario estimado de un producto
// @Description  Desglose en ingredientes, mano de obra y almacenamiento.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CostBreakdownDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/analytics/products/{id}/cost [get]
func (h *AnalyticsHandler) GetProductCost(c *fiber.Ctx) error {
	out, err := h.uc.GetProductCost(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetSalesByEmployee godoc
// @Summary      Ventas agrupadas por empleado
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmployeeSalesDTO
// @Router       /api/analytics/sales-by-employee [get]
func (h *AnalyticsHandler) GetSalesByEmployee(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesByEmployee(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetTimeByCategory godoc
// @Summary      Tiempo de preparación por categoría
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryTimeDTO
// @Router       /api/analytics/time-by-category [get]
func (h *AnalyticsHandler) GetTimeByCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetTimeByCategory(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetStorageByProduct godoc
// @Summary      Costo de almacenamiento por producto
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductStorageDTO
// @Router       /api/analytics/storage-by-product [get]
func (h *AnalyticsHandler) GetStorageByProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetStorageByProduct(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetExpensesByCategory godoc
// @Summary      Gastos agrupados por categoría
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ExpenseCategoryDTO
// @Router       /api/analytics/expenses-by-category [get]
func (h *AnalyticsHandler) GetExpensesByCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetExpensesByCategory(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetSalesByDay godoc
// @Summary      Ventas por día
// @Description  range=month (default) cubre el mes en curso; range=week los últimos 7 días.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "week | month"
// @Success      200  {array}   dto.DaySalesDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales-by-day [get]
func (h *AnalyticsHandler) GetSalesByDay(c *fiber.Ctx) error {
	var req dto.SalesByDayRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	rng, ok := costing.ParseDayRange(req.Range)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_RANGE", Message: "range debe ser 'week' o 'month'",
		})
	}
	out, err := h.uc.GetSalesByDay(c.UserContext(), rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
