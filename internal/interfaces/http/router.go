package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	SaleUC      *usecase.SaleUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	AnalyticsUC *analytics.AnalyticsUseCase
	ReportUC    *analytics.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	managers := RequireRole(entity.RoleAdmin, entity.RoleManager)

	meHandler := NewMeHandler(deps.UserUC)
	protected.Get("/auth/me", meHandler.Me)

	// Products: lectura para cualquier rol, escritura admin/manager
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", managers, productHandler.Create)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Delete)

	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", managers, employeeHandler.Create)
	employees.Put("/:id", managers, employeeHandler.Update)
	employees.Delete("/:id", managers, employeeHandler.Delete)

	// Sales: cualquier rol autenticado puede registrar una venta
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/", saleHandler.Create)
	sales.Put("/:id", managers, saleHandler.Update)
	sales.Delete("/:id", managers, saleHandler.Delete)

	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Post("/", managers, expenseHandler.Create)
	expenses.Put("/:id", managers, expenseHandler.Update)
	expenses.Delete("/:id", managers, expenseHandler.Delete)

	// Analytics y reportes (admin/manager)
	an := protected.Group("/analytics", managers)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	an.Get("/dashboard", analyticsHandler.GetDashboard)
	an.Get("/products/:id", analyticsHandler.GetProductAnalysis)
	an.Get("/products/:id/cost", analyticsHandler.GetProductCost)
	an.Get("/sales-by-employee", analyticsHandler.GetSalesByEmployee)
	an.Get("/time-by-category", analyticsHandler.GetTimeByCategory)
	an.Get("/storage-by-product", analyticsHandler.GetStorageByProduct)
	an.Get("/expenses-by-category", analyticsHandler.GetExpensesByCategory)
	an.Get("/sales-by-day", analyticsHandler.GetSalesByDay)

	reports := protected.Group("/reports", managers)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dashboard.pdf", reportHandler.DownloadDashboardPDF)
}

// Health godoc
// @Summary  Estado del servicio
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
