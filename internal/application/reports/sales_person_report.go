// Package reports contiene los casos de uso de los reportes de negocio:
// ventas por vendedor (departamentos y divisiones), métodos de pago y
// existencias por bodega. Cada caso de uso valida filtros, arma el snapshot
// de maestros, delega la agregación al núcleo puro (internal/domain/report)
// y convierte el resultado en columnas + filas para el visor.
package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/report"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
	"github.com/jhoicas/reportes-api/pkg/logger"
)

// Fieldnames fijos de los reportes por vendedor.
const (
	fieldSalesCode       = "sales_code"
	fieldSalesPersonName = "sales_person_name"
	fieldTotalAmount     = "total_amount"
)

// categoryDef categoría resuelta del maestro: código + etiqueta de columna.
type categoryDef struct {
	Code  string
	Label string
}

// salesPersonReport pipeline compartido por las dos variantes del reporte
// por vendedor; solo cambian la dimensión de categoría, el prefijo de los
// fieldnames y el título.
type salesPersonReport struct {
	sales  repository.SalesReportRepository
	master repository.MasterDataRepository
	log    *logger.Logger

	title       string
	dimension   repository.CategoryDimension
	fieldPrefix string // "dept_" | "div_"
}

// Execute corre el reporte completo para los filtros dados.
func (r *salesPersonReport) Execute(ctx context.Context, f Filters) (*dto.ReportDTO, error) {
	from, to, err := f.Validate()
	if err != nil {
		return nil, err
	}

	categories, err := r.loadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte %s: categorías: %w", r.title, err)
	}
	idx, err := r.loadIdentityIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte %s: identidades: %w", r.title, err)
	}

	codes := make([]string, len(categories))
	for i, c := range categories {
		codes[i] = c.Code
	}

	q := repository.SalesQuery{
		CompanyID: f.CompanyID,
		FromDate:  from,
		ToDate:    to,
		BranchID:  f.Branch,
		ItemGroup: f.ItemGroup,
	}

	// Pedidos y facturas se agregan por separado y se concatenan; la
	// de-duplicación entre fuentes la hace el agrupador con la clave
	// compuesta fuente+ID.
	entries, err := r.collect(ctx, report.SourceOrder, q, codes, idx)
	if err != nil {
		return nil, err
	}
	invoiceEntries, err := r.collect(ctx, report.SourceInvoice, q, codes, idx)
	if err != nil {
		return nil, err
	}
	entries = append(entries, invoiceEntries...)

	rows := report.AppendGrandTotal(report.GroupBySalesPerson(entries), codes)

	r.log.Info().
		Str("report", r.title).
		Str("company", f.CompanyID).
		Int("entries", len(entries)).
		Int("rows", len(rows)).
		Msg("reporte por vendedor generado")

	return &dto.ReportDTO{
		Title:   r.title,
		Columns: r.columns(categories),
		Rows:    r.toRows(rows, codes),
	}, nil
}

// collect recorre las transacciones de una fuente con el patrón de acceso
// por transacción: una consulta de ítems y una de equipo de ventas por cada
// documento. Las transacciones sin ítems no aportan nada.
func (r *salesPersonReport) collect(
	ctx context.Context,
	source report.Source,
	q repository.SalesQuery,
	codes []string,
	idx report.IdentityIndex,
) ([]report.Entry, error) {
	var (
		txns []repository.SalesTransaction
		err  error
	)
	if source == report.SourceOrder {
		txns, err = r.sales.ListSubmittedOrders(ctx, q)
	} else {
		txns, err = r.sales.ListSubmittedInvoices(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("reporte %s: transacciones %s: %w", r.title, source, err)
	}

	var entries []report.Entry
	for _, txn := range txns {
		var items []report.ItemRow
		var allocs []report.Allocation

		if source == report.SourceOrder {
			items, err = r.sales.ListOrderItems(ctx, txn.ID, r.dimension)
		} else {
			items, err = r.sales.ListInvoiceItems(ctx, txn.ID, r.dimension)
		}
		if err != nil {
			return nil, fmt.Errorf("reporte %s: ítems de %s-%s: %w", r.title, source, txn.ID, err)
		}

		if source == report.SourceOrder {
			allocs, err = r.sales.ListOrderSalesTeam(ctx, txn.ID)
		} else {
			allocs, err = r.sales.ListInvoiceSalesTeam(ctx, txn.ID)
		}
		if err != nil {
			return nil, fmt.Errorf("reporte %s: equipo de %s-%s: %w", r.title, source, txn.ID, err)
		}

		txnEntries, unresolved := report.AggregateTransaction(source, txn.ID, items, allocs, codes, idx)
		for _, sp := range unresolved {
			// Referencia rota: se sustituye por "Not Assigned", nunca es fatal.
			r.log.Info().
				Str("report", r.title).
				Str("transaction", string(source)+"-"+txn.ID).
				Str("sales_person", sp).
				Msg("vendedor no resuelto, usando N/A")
		}
		entries = append(entries, txnEntries...)
	}
	return entries, nil
}

// loadCategories trae las categorías del maestro según la dimensión.
func (r *salesPersonReport) loadCategories(ctx context.Context) ([]categoryDef, error) {
	if r.dimension == repository.DimensionDivision {
		divisions, err := r.master.ListDivisions(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]categoryDef, len(divisions))
		for i, d := range divisions {
			out[i] = categoryDef{Code: d.Code, Label: d.Name}
		}
		return out, nil
	}

	departments, err := r.master.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]categoryDef, len(departments))
	for i, d := range departments {
		out[i] = categoryDef{Code: d.Code, Label: d.Name}
	}
	return out, nil
}

// loadIdentityIndex arma el snapshot de identidades de la ejecución.
func (r *salesPersonReport) loadIdentityIndex(ctx context.Context) (report.IdentityIndex, error) {
	persons, err := r.master.ListSalesPersons(ctx)
	if err != nil {
		return report.IdentityIndex{}, err
	}
	employeeCodes, err := r.master.ListEmployeeCodes(ctx)
	if err != nil {
		return report.IdentityIndex{}, err
	}

	records := make([]report.SalesPersonRecord, len(persons))
	for i, p := range persons {
		records[i] = report.SalesPersonRecord{
			ID:         p.ID,
			Name:       p.Name,
			SalesCode:  p.SalesCode,
			EmployeeID: p.EmployeeID,
		}
	}
	return report.NewIdentityIndex(records, employeeCodes), nil
}

// columns arma el set de columnas: fijas + una por categoría + TOTAL.
func (r *salesPersonReport) columns(categories []categoryDef) []dto.ReportColumn {
	cols := []dto.ReportColumn{
		{Label: "Sales Code", Fieldname: fieldSalesCode, Fieldtype: dto.FieldtypeData, Width: 100},
		{Label: "Sales Person Name", Fieldname: fieldSalesPersonName, Fieldtype: dto.FieldtypeData, Width: 180},
	}
	for _, c := range categories {
		cols = append(cols, dto.ReportColumn{
			Label:     c.Label,
			Fieldname: r.fieldPrefix + c.Code,
			Fieldtype: dto.FieldtypeCurrency,
			Width:     120,
		})
	}
	return append(cols, dto.ReportColumn{
		Label: "TOTAL", Fieldname: fieldTotalAmount, Fieldtype: dto.FieldtypeCurrency, Width: 120,
	})
}

// toRows convierte los resúmenes del núcleo en filas del visor.
func (r *salesPersonReport) toRows(summaries []report.Summary, codes []string) []dto.ReportRow {
	rows := make([]dto.ReportRow, 0, len(summaries))
	for _, s := range summaries {
		row := dto.ReportRow{
			fieldSalesCode:       s.Identity.Code,
			fieldSalesPersonName: s.Identity.Name,
			fieldTotalAmount:     s.Total,
		}
		for _, code := range codes {
			row[r.fieldPrefix+code] = s.Totals[code]
		}
		if s.IsTotal {
			row[dto.RowKeyIsTotal] = true
		}
		rows = append(rows, row)
	}
	return rows
}

// ── Variantes públicas ────────────────────────────────────────────────────────

// DepartmentReportUseCase reporte "ventas por vendedor vs departamento de
// artículo": una columna por departamento del maestro Dept.
type DepartmentReportUseCase struct {
	inner salesPersonReport
}

// NewDepartmentReportUseCase construye el caso de uso.
func NewDepartmentReportUseCase(
	sales repository.SalesReportRepository,
	master repository.MasterDataRepository,
	log *logger.Logger,
) *DepartmentReportUseCase {
	return &DepartmentReportUseCase{inner: salesPersonReport{
		sales:       sales,
		master:      master,
		log:         log,
		title:       "Sales Person vs Item Department",
		dimension:   repository.DimensionDepartment,
		fieldPrefix: "dept_",
	}}
}

// Execute corre el reporte de departamentos.
func (uc *DepartmentReportUseCase) Execute(ctx context.Context, f Filters) (*dto.ReportDTO, error) {
	return uc.inner.Execute(ctx, f)
}

// DivisionSummaryUseCase reporte "resumen por vendedor": mismo pipeline con
// las divisiones del maestro como categorías.
type DivisionSummaryUseCase struct {
	inner salesPersonReport
}

// NewDivisionSummaryUseCase construye el caso de uso.
func NewDivisionSummaryUseCase(
	sales repository.SalesReportRepository,
	master repository.MasterDataRepository,
	log *logger.Logger,
) *DivisionSummaryUseCase {
	return &DivisionSummaryUseCase{inner: salesPersonReport{
		sales:       sales,
		master:      master,
		log:         log,
		title:       "Sales Person Summary",
		dimension:   repository.DimensionDivision,
		fieldPrefix: "div_",
	}}
}

// Execute corre el reporte resumen por división.
func (uc *DivisionSummaryUseCase) Execute(ctx context.Context, f Filters) (*dto.ReportDTO, error) {
	return uc.inner.Execute(ctx, f)
}
