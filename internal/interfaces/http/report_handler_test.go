package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/application/reports"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/report"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
	apphttp "github.com/jhoicas/reportes-api/internal/interfaces/http"
	"github.com/jhoicas/reportes-api/pkg/logger"
)

// ── Fakes mínimos para el handler ─────────────────────────────────────────────

type stubSalesRepo struct{}

func (stubSalesRepo) ListSubmittedOrders(context.Context, repository.SalesQuery) ([]repository.SalesTransaction, error) {
	return []repository.SalesTransaction{{ID: "SO-1", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)}}, nil
}

func (stubSalesRepo) ListSubmittedInvoices(context.Context, repository.SalesQuery) ([]repository.SalesTransaction, error) {
	return nil, nil
}

func (stubSalesRepo) ListOrderItems(context.Context, string, repository.CategoryDimension) ([]report.ItemRow, error) {
	return []report.ItemRow{{ItemCode: "TV", CategoryCode: "AV", Amount: decimal.NewFromInt(100)}}, nil
}

func (stubSalesRepo) ListInvoiceItems(context.Context, string, repository.CategoryDimension) ([]report.ItemRow, error) {
	return nil, nil
}

func (stubSalesRepo) ListOrderSalesTeam(context.Context, string) ([]report.Allocation, error) {
	return []report.Allocation{{SalesPersonID: "SP-1", Percentage: decimal.NewFromInt(100)}}, nil
}

func (stubSalesRepo) ListInvoiceSalesTeam(context.Context, string) ([]report.Allocation, error) {
	return nil, nil
}

type stubMasterRepo struct{}

func (stubMasterRepo) ListDepartments(context.Context) ([]entity.Department, error) {
	return []entity.Department{{Code: "AV", Name: "Audio Video"}}, nil
}

func (stubMasterRepo) ListDivisions(context.Context) ([]entity.Division, error) {
	return []entity.Division{{Code: "B", Name: "Mercancía"}}, nil
}

func (stubMasterRepo) ListSalesPersons(context.Context) ([]entity.SalesPerson, error) {
	return []entity.SalesPerson{{ID: "SP-1", Name: "Bob", SalesCode: "B01"}}, nil
}

func (stubMasterRepo) ListEmployeeCodes(context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}

type stubPaymentRepo struct{}

func (stubPaymentRepo) ListMethodTotals(context.Context, repository.PaymentQuery) ([]repository.PaymentMethodTotal, error) {
	return nil, nil
}

type stubStockRepo struct{}

func (stubStockRepo) ListWarehouses(context.Context, string, []string) ([]string, error) {
	return nil, nil
}

func (stubStockRepo) ListItems(context.Context, repository.ItemQuery) ([]entity.Item, error) {
	return nil, nil
}

func (stubStockRepo) ListBalances(context.Context, string, []string, time.Time) ([]repository.StockBalance, error) {
	return nil, nil
}

type stubPDF struct{}

func (stubPDF) Render(*dto.ReportDTO) ([]byte, error) { return []byte("%PDF-1.4 stub"), nil }

func buildReportApp() *fiber.App {
	log := logger.Nop()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DepartmentUC: reports.NewDepartmentReportUseCase(stubSalesRepo{}, stubMasterRepo{}, log),
		DivisionUC:   reports.NewDivisionSummaryUseCase(stubSalesRepo{}, stubMasterRepo{}, log),
		PaymentUC:    reports.NewPaymentMethodReportUseCase(stubPaymentRepo{}, log),
		StockUC:      reports.NewStockBalanceReportUseCase(stubStockRepo{}, nil, log),
		PDFRenderer:  stubPDF{},
		JWTSecret:    testJWTSecret,
		Log:          log,
	})
	return app
}

func reportRequest(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, "analista"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestReportHandler_DepartamentosJSON(t *testing.T) {
	app := buildReportApp()
	resp := reportRequest(t, app, "/api/reports/sales-person-departments?from_date=2026-03-01&to_date=2026-03-31")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ReportDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Sales Person vs Item Department", out.Title)
	require.Len(t, out.Rows, 2, "Bob + Grand Total")
	assert.Equal(t, "Bob", out.Rows[0]["sales_person_name"])
}

func TestReportHandler_FormatoCSV(t *testing.T) {
	app := buildReportApp()
	resp := reportRequest(t, app, "/api/reports/sales-person-summary?from_date=2026-03-01&to_date=2026-03-31&format=csv")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
}

func TestReportHandler_FormatoPDF(t *testing.T) {
	app := buildReportApp()
	resp := reportRequest(t, app, "/api/reports/payment-methods?from_date=2026-03-01&format=pdf")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestReportHandler_FormatoDesconocido(t *testing.T) {
	app := buildReportApp()
	resp := reportRequest(t, app, "/api/reports/payment-methods?from_date=2026-03-01&format=xlsx")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportHandler_FiltrosInvalidos400(t *testing.T) {
	app := buildReportApp()
	resp := reportRequest(t, app, "/api/reports/sales-person-departments")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "sin fechas el reporte se rechaza")
}

func TestReportHandler_SinToken401(t *testing.T) {
	app := buildReportApp()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/sales-person-departments", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
