package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
	infrapdf "github.com/jhoicas/Restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/internal/scheduler"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/format"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Location.String()).
		Str("db", postgres.RedactedDSN(cfg.DB)).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	version, err := postgres.Migrate(pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Uint("version", version).Msg("migraciones al día")

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)

	calc := costing.NewCalculator(costing.Rates{
		UnitCostEstimate:        cfg.Costing.UnitCostEstimate,
		FallbackHourlyRate:      cfg.Costing.FallbackHourlyRate,
		StorageCostPerUnitMonth: cfg.Costing.StorageCostPerUnitMonth,
		DaysPerMonth:            cfg.Costing.DaysPerMonth,
	})
	printer := format.New(cfg.App.Locale)

	analyticsUC := analytics.NewAnalyticsUseCase(snapshotRepo, calc).WithLocation(cfg.App.Location)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, printer)
	reportUC := analytics.NewReportUseCase(analyticsUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	sched := scheduler.New(cfg.Scheduler, analyticsUC, printer, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Restaurante API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUseCase(userRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo),
		EmployeeUC:  usecase.NewEmployeeUseCase(employeeRepo),
		SaleUC:      usecase.NewSaleUseCase(saleRepo, productRepo, employeeRepo).WithLocation(cfg.App.Location),
		ExpenseUC:   usecase.NewExpenseUseCase(expenseRepo).WithLocation(cfg.App.Location),
		AnalyticsUC: analyticsUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	sched.Stop()

	log.Info().Msg("aplicación detenida")
}
