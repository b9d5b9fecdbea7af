// Package export convierte un ReportDTO ya armado en los formatos de salida
// descargables: CSV, XML y PDF. El render es posterior a la agregación; acá
// no hay lógica de negocio, solo serialización.
package export

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
)

// Format formato de salida solicitado por el cliente.
type Format string

// Formatos soportados por los endpoints de reporte.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXML  Format = "xml"
	FormatPDF  Format = "pdf"
)

// ParseFormat normaliza el query param format; vacío significa JSON.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, true
	case FormatCSV, FormatXML, FormatPDF:
		return Format(s), true
	default:
		return "", false
	}
}

// PDFRenderer puerto del generador PDF; lo implementa la infraestructura.
type PDFRenderer interface {
	Render(report *dto.ReportDTO) ([]byte, error)
}

// cellString serializa un valor de celda para CSV/XML. Los decimales salen
// con dos decimales fijos; los booleanos de marcado no llegan acá.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case decimal.Decimal:
		return t.StringFixed(2)
	case time.Time:
		return t.Format("2006-01-02")
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}
