package report

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// NormalizeAllocations garantiza que los porcentajes del equipo de ventas de
// una transacción sumen 100:
//
//   - Sin asignaciones: una sola asignación sintética "N/A" al 100%.
//   - Suma distinta de 100 y distinta de cero: reescala cada porcentaje por
//     100/suma, preservando las proporciones.
//   - Suma cero: todos los porcentajes efectivos quedan en cero (protección
//     contra división por cero).
//
// Nunca retorna error: es una normalización de mejor esfuerzo, jamás fatal.
// No muta el slice de entrada.
func NormalizeAllocations(allocs []Allocation) []Allocation {
	if len(allocs) == 0 {
		return []Allocation{{SalesPersonID: NotAssignedID, Percentage: hundred}}
	}

	sum := decimal.Zero
	for _, a := range allocs {
		sum = sum.Add(a.Percentage)
	}

	out := make([]Allocation, len(allocs))
	switch {
	case sum.Equal(hundred):
		copy(out, allocs)
	case sum.IsZero():
		for i, a := range allocs {
			out[i] = Allocation{SalesPersonID: a.SalesPersonID, Percentage: decimal.Zero}
		}
	default:
		// Multiplicar antes de dividir: 100/suma por separado redondea y
		// {60, 90} dejaría de dar exactamente {40, 60}.
		for i, a := range allocs {
			out[i] = Allocation{SalesPersonID: a.SalesPersonID, Percentage: a.Percentage.Mul(hundred).Div(sum)}
		}
	}
	return out
}
