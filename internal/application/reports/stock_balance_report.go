package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
	"github.com/jhoicas/reportes-api/pkg/logger"
)

// Fieldnames fijos del reporte de existencias.
const (
	fieldItemCode  = "item_code"
	fieldItemGroup = "item_group"
	fieldItemName  = "item_name"
)

// StockFilters filtros del reporte de existencias. La fecha de corte es
// opcional; vacía significa hoy.
type StockFilters struct {
	CompanyID string `validate:"required"`
	Date      string `validate:"omitempty,datetime=2006-01-02"`
	ItemCode  string
	ItemGroup string
}

// Validate valida los filtros y resuelve la fecha de corte.
func (f StockFilters) Validate(now time.Time) (asOf time.Time, err error) {
	if vErr := validate.Struct(f); vErr != nil {
		return time.Time{}, fmt.Errorf("%w: %s", domain.ErrInvalidFilters, validationMessage(vErr))
	}
	if f.Date == "" {
		// Medianoche en la zona del servidor; Truncate opera en UTC y
		// correría el corte al día anterior en zonas al este.
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	asOf, err = time.Parse(dateLayout, f.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date inválido", domain.ErrInvalidFilters)
	}
	return asOf, nil
}

// StockBalanceReportUseCase reporte de existencias al corte: una fila por
// artículo y una columna por bodega configurada. Las bodegas salen de la
// configuración del servicio, no de un filtro.
type StockBalanceReportUseCase struct {
	stock      repository.StockReportRepository
	warehouses []string
	log        *logger.Logger

	now func() time.Time
}

// NewStockBalanceReportUseCase construye el caso de uso con la lista de
// bodegas de la configuración.
func NewStockBalanceReportUseCase(stock repository.StockReportRepository, warehouses []string, log *logger.Logger) *StockBalanceReportUseCase {
	return &StockBalanceReportUseCase{
		stock:      stock,
		warehouses: warehouses,
		log:        log,
		now:        time.Now,
	}
}

// Execute corre el reporte de existencias para los filtros dados.
func (uc *StockBalanceReportUseCase) Execute(ctx context.Context, f StockFilters) (*dto.ReportDTO, error) {
	asOf, err := f.Validate(uc.now())
	if err != nil {
		return nil, err
	}

	warehouses, err := uc.stock.ListWarehouses(ctx, f.CompanyID, uc.warehouses)
	if err != nil {
		return nil, fmt.Errorf("reporte de existencias: bodegas: %w", err)
	}

	items, err := uc.stock.ListItems(ctx, repository.ItemQuery{
		ItemCode:  f.ItemCode,
		ItemGroup: f.ItemGroup,
	})
	if err != nil {
		return nil, fmt.Errorf("reporte de existencias: artículos: %w", err)
	}

	codes := make([]string, len(items))
	for i, it := range items {
		codes[i] = it.Code
	}

	var balances []repository.StockBalance
	if len(codes) > 0 {
		balances, err = uc.stock.ListBalances(ctx, f.CompanyID, codes, asOf)
		if err != nil {
			return nil, fmt.Errorf("reporte de existencias: saldos: %w", err)
		}
	}

	// Índice artículo→bodega→cantidad; lo que no tiene movimientos queda en cero.
	qty := make(map[string]map[string]decimal.Decimal, len(codes))
	for _, b := range balances {
		byWh := qty[b.ItemCode]
		if byWh == nil {
			byWh = make(map[string]decimal.Decimal, len(warehouses))
			qty[b.ItemCode] = byWh
		}
		byWh[b.Warehouse] = b.Qty
	}

	rows := make([]dto.ReportRow, 0, len(items))
	for _, it := range items {
		row := dto.ReportRow{
			fieldItemCode:  it.Code,
			fieldItemGroup: it.ItemGroup,
			fieldItemName:  it.Name,
		}
		for _, wh := range warehouses {
			q := decimal.Zero
			if byWh, ok := qty[it.Code]; ok {
				if v, ok := byWh[wh]; ok {
					q = v
				}
			}
			row[warehouseFieldname(wh)] = q
		}
		rows = append(rows, row)
	}

	uc.log.Info().
		Str("company", f.CompanyID).
		Str("as_of", asOf.Format(dateLayout)).
		Int("items", len(items)).
		Int("warehouses", len(warehouses)).
		Msg("reporte de existencias generado")

	return &dto.ReportDTO{
		Title:   "Stock Balance",
		Columns: uc.columns(warehouses),
		Rows:    rows,
	}, nil
}

func (uc *StockBalanceReportUseCase) columns(warehouses []string) []dto.ReportColumn {
	cols := []dto.ReportColumn{
		{Label: "Item Code", Fieldname: fieldItemCode, Fieldtype: dto.FieldtypeData, Width: 140},
		{Label: "Item Group", Fieldname: fieldItemGroup, Fieldtype: dto.FieldtypeData, Width: 120},
		{Label: "Item Name", Fieldname: fieldItemName, Fieldtype: dto.FieldtypeData, Width: 220},
	}
	for _, wh := range warehouses {
		cols = append(cols, dto.ReportColumn{
			Label:     wh,
			Fieldname: warehouseFieldname(wh),
			Fieldtype: dto.FieldtypeFloat,
			Width:     120,
		})
	}
	return cols
}

// warehouseFieldname fieldname estable para la columna de una bodega.
func warehouseFieldname(name string) string {
	out := make([]rune, 0, len(name)+3)
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			out = append(out, '_')
		}
	}
	return "wh_" + string(out)
}
