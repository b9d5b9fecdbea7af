package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/application/export"
	"github.com/jhoicas/reportes-api/internal/application/reports"
	"github.com/jhoicas/reportes-api/internal/domain"
	"github.com/jhoicas/reportes-api/pkg/logger"
)

// ReportHandler expone los cuatro reportes con salida en JSON, CSV, XML o PDF.
type ReportHandler struct {
	departmentUC *reports.DepartmentReportUseCase
	divisionUC   *reports.DivisionSummaryUseCase
	paymentUC    *reports.PaymentMethodReportUseCase
	stockUC      *reports.StockBalanceReportUseCase
	pdf          export.PDFRenderer
	maxRangeDays int
	log          *logger.Logger
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(
	departmentUC *reports.DepartmentReportUseCase,
	divisionUC *reports.DivisionSummaryUseCase,
	paymentUC *reports.PaymentMethodReportUseCase,
	stockUC *reports.StockBalanceReportUseCase,
	pdf export.PDFRenderer,
	maxRangeDays int,
	log *logger.Logger,
) *ReportHandler {
	return &ReportHandler{
		departmentUC: departmentUC,
		divisionUC:   divisionUC,
		paymentUC:    paymentUC,
		stockUC:      stockUC,
		pdf:          pdf,
		maxRangeDays: maxRangeDays,
		log:          log,
	}
}

// SalesPersonDepartments godoc
// @Summary      Ventas por vendedor vs departamento de artículo
// @Description  Distribuye el monto de cada pedido y factura submitted entre su equipo de ventas, con una columna por departamento.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from_date   query  string  false  "YYYY-MM-DD"
// @Param        to_date     query  string  false  "YYYY-MM-DD"
// @Param        branch      query  string  false  "sucursal"
// @Param        item_group  query  string  false  "grupo de artículos"
// @Param        format      query  string  false  "json | csv | xml | pdf"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-person-departments [get]
func (h *ReportHandler) SalesPersonDepartments(c *fiber.Ctx) error {
	return h.runSalesReport(c, h.departmentUC.Execute)
}

// SalesPersonSummary godoc
// @Summary      Resumen de ventas por vendedor
// @Description  Mismo pipeline de distribución, con una columna por división de artículo.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from_date   query  string  false  "YYYY-MM-DD"
// @Param        to_date     query  string  false  "YYYY-MM-DD"
// @Param        branch      query  string  false  "sucursal"
// @Param        item_group  query  string  false  "grupo de artículos"
// @Param        format      query  string  false  "json | csv | xml | pdf"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-person-summary [get]
func (h *ReportHandler) SalesPersonSummary(c *fiber.Ctx) error {
	return h.runSalesReport(c, h.divisionUC.Execute)
}

// PaymentMethods godoc
// @Summary      Cobros por método de pago
// @Description  Totales por fecha y método de pago con subtotal diario y gran total.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Param        branch     query  string  false  "sucursal"
// @Param        format     query  string  false  "json | csv | xml | pdf"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/payment-methods [get]
func (h *ReportHandler) PaymentMethods(c *fiber.Ctx) error {
	return h.runSalesReport(c, h.paymentUC.Execute)
}

// StockBalance godoc
// @Summary      Existencias por bodega al corte
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        date        query  string  false  "corte YYYY-MM-DD; default hoy"
// @Param        item_code   query  string  false  "código de artículo"
// @Param        item_group  query  string  false  "grupo de artículos"
// @Param        format      query  string  false  "json | csv | xml | pdf"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-balance [get]
func (h *ReportHandler) StockBalance(c *fiber.Ctx) error {
	var req dto.StockReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	format, ok := export.ParseFormat(req.Format)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser json, csv, xml o pdf"})
	}

	out, err := h.stockUC.Execute(c.UserContext(), reports.StockFilters{
		CompanyID: GetCompanyID(c),
		Date:      req.Date,
		ItemCode:  req.ItemCode,
		ItemGroup: req.ItemGroup,
	})
	if err != nil {
		return h.reportError(c, err)
	}
	return h.respond(c, out, format)
}

// runSalesReport parsea la query común, arma los filtros con la empresa del
// token y despacha al caso de uso.
func (h *ReportHandler) runSalesReport(
	c *fiber.Ctx,
	run func(ctx context.Context, f reports.Filters) (*dto.ReportDTO, error),
) error {
	var req dto.SalesReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	format, ok := export.ParseFormat(req.Format)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser json, csv, xml o pdf"})
	}

	out, err := run(c.UserContext(), reports.Filters{
		CompanyID:    GetCompanyID(c),
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
		Branch:       req.Branch,
		ItemGroup:    req.ItemGroup,
		MaxRangeDays: h.maxRangeDays,
	})
	if err != nil {
		return h.reportError(c, err)
	}
	return h.respond(c, out, format)
}

// reportError mapea errores de dominio a HTTP.
func (h *ReportHandler) reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidFilters) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTERS", Message: err.Error()})
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg("fallo generando reporte")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error generando el reporte"})
}

// respond serializa el reporte en el formato pedido.
func (h *ReportHandler) respond(c *fiber.Ctx, report *dto.ReportDTO, format export.Format) error {
	switch format {
	case export.FormatCSV:
		out, err := export.CSV(report)
		if err != nil {
			return h.reportError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="report.csv"`)
		return c.Send(out)
	case export.FormatXML:
		out, err := export.XML(report)
		if err != nil {
			return h.reportError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
		return c.Send(out)
	case export.FormatPDF:
		out, err := h.pdf.Render(report)
		if err != nil {
			return h.reportError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="report.pdf"`)
		return c.Send(out)
	default:
		return c.JSON(report)
	}
}
