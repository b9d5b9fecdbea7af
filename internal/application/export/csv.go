package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/reportes-api/internal/application/dto"
)

// CSV serializa el reporte como CSV con encabezado. Una columna por
// ReportColumn, en el mismo orden; las filas sintéticas van incluidas.
func CSV(report *dto.ReportDTO) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(report.Columns))
	for i, c := range report.Columns {
		header[i] = c.Label
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}

	record := make([]string, len(report.Columns))
	for _, row := range report.Rows {
		for i, c := range report.Columns {
			record[i] = cellString(row[c.Fieldname])
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}
