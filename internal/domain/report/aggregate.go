package report

import "github.com/shopspring/decimal"

// CategoryTotals suma los montos de los artículos por código de categoría.
// El mapa resultante tiene una clave por cada categoría conocida (inicializada
// en cero) para que cada entrada lleve todas las columnas del reporte; los
// artículos con categoría vacía o desconocida no suman a ningún total.
func CategoryTotals(items []ItemRow, categories []string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(categories))
	for _, c := range categories {
		totals[c] = decimal.Zero
	}
	for _, it := range items {
		if it.CategoryCode == "" {
			continue
		}
		if cur, ok := totals[it.CategoryCode]; ok {
			totals[it.CategoryCode] = cur.Add(it.Amount)
		}
	}
	return totals
}

// AggregateTransaction colapsa una transacción en una entrada por vendedor
// asignado, con la porción de cada categoría según su porcentaje:
//
//	share = total_categoría × porcentaje / 100
//
// Las asignaciones se normalizan primero (ver NormalizeAllocations) y cada
// vendedor se resuelve contra el snapshot de identidades; los no resueltos
// caen al comodín "Not Assigned" y se reportan en unresolved para que el
// caller los registre informativamente.
//
// Una transacción sin artículos no aporta nada, ni siquiera una fila "N/A"
// en cero: retorna nil.
func AggregateTransaction(
	source Source,
	transactionID string,
	items []ItemRow,
	allocs []Allocation,
	categories []string,
	idx IdentityIndex,
) (entries []Entry, unresolved []string) {
	if len(items) == 0 {
		return nil, nil
	}

	totals := CategoryTotals(items, categories)
	normalized := NormalizeAllocations(allocs)

	entries = make([]Entry, 0, len(normalized))
	for _, a := range normalized {
		identity, found := idx.Resolve(a.SalesPersonID)
		if !found {
			unresolved = append(unresolved, a.SalesPersonID)
		}

		factor := a.Percentage.Div(hundred)
		shares := make(map[string]decimal.Decimal, len(totals))
		for code, total := range totals {
			shares[code] = total.Mul(factor)
		}

		entries = append(entries, Entry{
			Source:        source,
			TransactionID: transactionID,
			Identity:      identity,
			Shares:        shares,
		})
	}
	return entries, unresolved
}
