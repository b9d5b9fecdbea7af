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

	"github.com/jhoicas/reportes-api/internal/application/auth"
	"github.com/jhoicas/reportes-api/internal/application/reports"
	infrapdf "github.com/jhoicas/reportes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/reportes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/reportes-api/internal/interfaces/http"
	"github.com/jhoicas/reportes-api/pkg/config"
	"github.com/jhoicas/reportes-api/pkg/logger"

	_ "github.com/jhoicas/reportes-api/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	salesRepo := postgres.NewSalesReportRepository(pool)
	masterRepo := postgres.NewMasterDataRepository(pool)
	paymentRepo := postgres.NewPaymentReportRepository(pool)
	stockRepo := postgres.NewStockReportRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	departmentUC := reports.NewDepartmentReportUseCase(salesRepo, masterRepo, log)
	divisionUC := reports.NewDivisionSummaryUseCase(salesRepo, masterRepo, log)
	paymentUC := reports.NewPaymentMethodReportUseCase(paymentRepo, log)
	stockUC := reports.NewStockBalanceReportUseCase(stockRepo, cfg.Report.Warehouses, log)

	pdfRenderer := infrapdf.NewReportPDFRenderer(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reportes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DepartmentUC: departmentUC,
		DivisionUC:   divisionUC,
		PaymentUC:    paymentUC,
		StockUC:      stockUC,
		PDFRenderer:  pdfRenderer,
		MaxRangeDays: cfg.Report.MaxRangeDays,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
