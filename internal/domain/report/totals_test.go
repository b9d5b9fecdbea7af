package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/domain/report"
)

// TestAppendGrandTotal_SumaColumnas la fila final suma cada columna de
// categoría y el total general de todas las filas anteriores.
func TestAppendGrandTotal_SumaColumnas(t *testing.T) {
	rows := report.GroupBySalesPerson([]report.Entry{
		entry(report.SourceInvoice, "SI-1", bob, map[string]int64{"A": 60, "B": 30}),
		entry(report.SourceInvoice, "SI-1", alice, map[string]int64{"A": 40, "B": 20}),
	})
	out := report.AppendGrandTotal(rows, []string{"A", "B"})

	require.Len(t, out, 3)
	total := out[2]
	assert.True(t, total.IsTotal)
	assert.Equal(t, report.GrandTotalLabel, total.Identity.Name)
	assert.True(t, total.Totals["A"].Equal(decimal.NewFromInt(100)))
	assert.True(t, total.Totals["B"].Equal(decimal.NewFromInt(50)))
	assert.True(t, total.Total.Equal(decimal.NewFromInt(150)))
}

// TestAppendGrandTotal_Vacio con entrada vacía no se agrega fila de totales.
func TestAppendGrandTotal_Vacio(t *testing.T) {
	assert.Empty(t, report.AppendGrandTotal(nil, []string{"A"}))
	assert.Empty(t, report.AppendGrandTotal([]report.Summary{}, []string{"A"}))
}

// TestPipelineCompleto escenario de extremo a extremo del núcleo: una factura
// con dos artículos (categoría A: 100, categoría B: 50) y un equipo de dos
// vendedores al 60%/40% produce:
//
//	alice (40%): {A: 40, B: 20, total: 60}
//	Bob   (60%): {A: 60, B: 30, total: 90}
//	Grand Total: {A: 100, B: 50, total: 150}
func TestPipelineCompleto(t *testing.T) {
	categories := []string{"A", "B"}
	idx := testIndex()

	items := []report.ItemRow{
		{ItemCode: "IT-1", CategoryCode: "A", Amount: decimal.NewFromInt(100)},
		{ItemCode: "IT-2", CategoryCode: "B", Amount: decimal.NewFromInt(50)},
	}
	allocs := []report.Allocation{
		{SalesPersonID: "SP-001", Percentage: pct(60)}, // Bob
		{SalesPersonID: "SP-002", Percentage: pct(40)}, // alice
	}

	entries, unresolved := report.AggregateTransaction(
		report.SourceInvoice, "SI-100", items, allocs, categories, idx)
	require.Empty(t, unresolved)

	rows := report.AppendGrandTotal(report.GroupBySalesPerson(entries), categories)
	require.Len(t, rows, 3)

	// Orden ingenuo: "Bob" antes que "alice".
	assert.Equal(t, "Bob", rows[0].Identity.Name)
	assert.True(t, rows[0].Totals["A"].Equal(decimal.NewFromInt(60)))
	assert.True(t, rows[0].Totals["B"].Equal(decimal.NewFromInt(30)))
	assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(90)))

	assert.Equal(t, "alice", rows[1].Identity.Name)
	assert.True(t, rows[1].Totals["A"].Equal(decimal.NewFromInt(40)))
	assert.True(t, rows[1].Totals["B"].Equal(decimal.NewFromInt(20)))
	assert.True(t, rows[1].Total.Equal(decimal.NewFromInt(60)))

	assert.True(t, rows[2].IsTotal)
	assert.True(t, rows[2].Totals["A"].Equal(decimal.NewFromInt(100)))
	assert.True(t, rows[2].Totals["B"].Equal(decimal.NewFromInt(50)))
	assert.True(t, rows[2].Total.Equal(decimal.NewFromInt(150)))
}
