package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reportes-api/internal/application/auth"
	"github.com/jhoicas/reportes-api/internal/application/export"
	"github.com/jhoicas/reportes-api/internal/application/reports"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DepartmentUC *reports.DepartmentReportUseCase
	DivisionUC   *reports.DivisionSummaryUseCase
	PaymentUC    *reports.PaymentMethodReportUseCase
	StockUC      *reports.StockBalanceReportUseCase
	PDFRenderer  export.PDFRenderer
	MaxRangeDays int
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Reportes (protegidos: la empresa sale del token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	reportsGroup := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleAnalista))
	reportHandler := NewReportHandler(
		deps.DepartmentUC,
		deps.DivisionUC,
		deps.PaymentUC,
		deps.StockUC,
		deps.PDFRenderer,
		deps.MaxRangeDays,
		deps.Log,
	)
	reportsGroup.Get("/sales-person-departments", reportHandler.SalesPersonDepartments)
	reportsGroup.Get("/sales-person-summary", reportHandler.SalesPersonSummary)
	reportsGroup.Get("/payment-methods", reportHandler.PaymentMethods)
	reportsGroup.Get("/stock-balance", reportHandler.StockBalance)
}
