package report

import "github.com/shopspring/decimal"

// AppendGrandTotal agrega al final exactamente una fila sintética "Grand
// Total" con la suma columna a columna de todas las filas anteriores. Con
// entrada vacía retorna la lista sin cambios (un reporte vacío no lleva
// fila de totales).
//
// La fila se marca con IsTotal en lugar del HTML embebido del visor original.
func AppendGrandTotal(rows []Summary, categories []string) []Summary {
	if len(rows) == 0 {
		return rows
	}

	totals := make(map[string]decimal.Decimal, len(categories))
	for _, c := range categories {
		totals[c] = decimal.Zero
	}
	grand := decimal.Zero
	for _, r := range rows {
		for code, amount := range r.Totals {
			totals[code] = totals[code].Add(amount)
		}
		grand = grand.Add(r.Total)
	}

	return append(rows, Summary{
		Identity: Identity{Name: GrandTotalLabel},
		Totals:   totals,
		Total:    grand,
		IsTotal:  true,
	})
}
