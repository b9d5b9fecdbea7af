// Package pdf genera la versión imprimible de los reportes tabulares con
// Maroto v2: título, fecha de generación, cabecera de columnas y una fila
// por registro, con las filas sintéticas (subtotales y gran total) en negrita.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/application/export"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer formatea montos con separador de miles para el render.
var printer = message.NewPrinter(language.English)

var _ export.PDFRenderer = (*ReportPDFRenderer)(nil)

// ReportPDFRenderer implementa export.PDFRenderer usando Maroto v2.
type ReportPDFRenderer struct {
	appName string
	now     func() time.Time
}

// NewReportPDFRenderer construye el renderizador.
func NewReportPDFRenderer(appName string) *ReportPDFRenderer {
	return &ReportPDFRenderer{appName: appName, now: time.Now}
}

// Render genera el PDF del reporte y devuelve sus bytes. Orientación
// horizontal y grilla de una celda por columna: los reportes por vendedor
// traen una columna por categoría del maestro.
func (g *ReportPDFRenderer) Render(report *dto.ReportDTO) ([]byte, error) {
	n := len(report.Columns)
	if n == 0 {
		return nil, fmt.Errorf("pdf: reporte sin columnas")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(n).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(report.Title, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(report.Title, g.now(), n))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow(report.Columns))
	for _, r := range report.Rows {
		m.AddRows(dataRow(report.Columns, r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow: título del reporte y fecha de generación en una celda a todo
// el ancho de la grilla.
func titleRow(title string, generatedAt time.Time, gridSize int) core.Row {
	return row.New(12).Add(
		col.New(gridSize).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// headerRow: una celda por columna.
func headerRow(columns []dto.ReportColumn) core.Row {
	cells := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cells = append(cells, col.New(1).Add(text.New(c.Label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: columnAlign(c),
			Color: colorPrimary, Top: 1,
		})))
	}
	return row.New(7).Add(cells...)
}

// dataRow: una fila de datos; subtotales y gran total en negrita.
func dataRow(columns []dto.ReportColumn, r dto.ReportRow) core.Row {
	style := fontstyle.Normal
	if flag, ok := r[dto.RowKeyIsTotal].(bool); ok && flag {
		style = fontstyle.Bold
	}
	if flag, ok := r[dto.RowKeyIsSubtotal].(bool); ok && flag {
		style = fontstyle.Bold
	}

	cells := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cells = append(cells, col.New(1).Add(text.New(cellText(c, r[c.Fieldname]), props.Text{
			Size: 7, Align: columnAlign(c), Style: style, Top: 1,
		})))
	}
	return row.New(5).Add(cells...)
}

func columnAlign(c dto.ReportColumn) align.Type {
	switch c.Fieldtype {
	case dto.FieldtypeCurrency, dto.FieldtypeFloat, dto.FieldtypeInt:
		return align.Right
	default:
		return align.Left
	}
}

// cellText formatea una celda para impresión. Los montos llevan separador de
// miles; la exactitud decimal solo importa en la agregación, no en el render.
func cellText(c dto.ReportColumn, v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return printer.Sprintf("%d", t)
	case decimal.Decimal:
		if c.Fieldtype == dto.FieldtypeCurrency {
			return printer.Sprintf("%.2f", t.InexactFloat64())
		}
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
