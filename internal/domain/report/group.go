package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// GroupBySalesPerson fusiona las entradas de ambas fuentes (pedidos y
// facturas) en un resumen por vendedor, en dos pasadas:
//
//	Pasada 1: entradas con vendedor real. Cada clave de transacción
//	(fuente+ID) queda "reclamada". Si la misma transacción aparece dos veces
//	para el mismo vendedor se cuenta una sola vez (defensa, no debería
//	producirse aguas arriba).
//
//	Pasada 2: entradas "N/A". Se descartan las de transacciones ya
//	reclamadas: una transacción con al menos una asignación real nunca debe
//	sumar también al comodín. El orden de pasadas garantiza que la
//	asignación real siempre gana.
//
// El resultado se ordena por nombre visible, comparación lexicográfica
// ingenua byte a byte: vacío primero, mayúsculas antes que minúsculas.
func GroupBySalesPerson(entries []Entry) []Summary {
	summaries := make(map[string]*Summary)
	seen := make(map[string]map[string]bool) // vendedor -> claves de transacción ya sumadas
	claimed := make(map[string]bool)         // claves reclamadas por vendedores reales

	fold := func(e Entry) {
		key := e.Identity.ID
		s, ok := summaries[key]
		if !ok {
			s = &Summary{Identity: e.Identity, Totals: make(map[string]decimal.Decimal, len(e.Shares))}
			summaries[key] = s
			seen[key] = make(map[string]bool)
		}
		tk := e.transactionKey()
		if seen[key][tk] {
			return
		}
		seen[key][tk] = true

		for code, amount := range e.Shares {
			s.Totals[code] = s.Totals[code].Add(amount)
			s.Total = s.Total.Add(amount)
		}
	}

	// Pasada 1: vendedores reales.
	for _, e := range entries {
		if e.Identity.IsNotAssigned() {
			continue
		}
		claimed[e.transactionKey()] = true
		fold(e)
	}

	// Pasada 2: comodín "N/A", solo transacciones sin asignación real.
	for _, e := range entries {
		if !e.Identity.IsNotAssigned() {
			continue
		}
		if claimed[e.transactionKey()] {
			continue
		}
		fold(e)
	}

	out := make([]Summary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Identity.Name < out[j].Identity.Name
	})
	return out
}
