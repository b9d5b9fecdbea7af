package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/application/reports"
	"github.com/jhoicas/reportes-api/internal/domain"
)

func TestFiltersValidos(t *testing.T) {
	from, to, err := reports.Filters{
		CompanyID: "CO-1",
		FromDate:  "2026-03-01",
		ToDate:    "2026-03-31",
	}.Validate()
	require.NoError(t, err)
	assert.Equal(t, day("2026-03-01"), from)
	assert.Equal(t, day("2026-03-31"), to)
}

func TestFiltersUnaSolaFechaSeEspeja(t *testing.T) {
	from, to, err := reports.Filters{CompanyID: "CO-1", FromDate: "2026-03-10"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, from, to, "una sola fecha arma un rango de un día")

	from, to, err = reports.Filters{CompanyID: "CO-1", ToDate: "2026-03-10"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, from, to)
}

func TestFiltersInvalidos(t *testing.T) {
	cases := []struct {
		name string
		f    reports.Filters
	}{
		{"sin company", reports.Filters{FromDate: "2026-03-01"}},
		{"sin fechas", reports.Filters{CompanyID: "CO-1"}},
		{"fecha mal formada", reports.Filters{CompanyID: "CO-1", FromDate: "01-03-2026"}},
		{"rango invertido", reports.Filters{CompanyID: "CO-1", FromDate: "2026-03-31", ToDate: "2026-03-01"}},
		{"rango demasiado largo", reports.Filters{CompanyID: "CO-1", FromDate: "2026-01-01", ToDate: "2026-03-31", MaxRangeDays: 31}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := tc.f.Validate()
			assert.ErrorIs(t, err, domain.ErrInvalidFilters, "el filtro debe rechazarse antes de consultar")
		})
	}
}

func TestStockFiltersFechaPorDefecto(t *testing.T) {
	now := time.Date(2026, 3, 15, 17, 30, 0, 0, time.UTC)
	asOf, err := reports.StockFilters{CompanyID: "CO-1"}.Validate(now)
	require.NoError(t, err)
	assert.Equal(t, day("2026-03-15"), asOf, "sin fecha el corte es el día de hoy")
}

func TestStockFiltersFechaPorDefectoZonaLocal(t *testing.T) {
	// 01:30 del día 15 en UTC+13 aún es día 14 en UTC; el corte por defecto
	// debe ser el día 15 en la zona del servidor, no el 14.
	zona := time.FixedZone("UTC+13", 13*3600)
	now := time.Date(2026, 3, 15, 1, 30, 0, 0, zona)

	asOf, err := reports.StockFilters{CompanyID: "CO-1"}.Validate(now)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", asOf.Format("2006-01-02"))
	assert.Equal(t, zona, asOf.Location())
	assert.Zero(t, asOf.Hour())
}
