package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/application/reports"
	"github.com/jhoicas/reportes-api/internal/domain"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
	"github.com/jhoicas/reportes-api/pkg/logger"
)

func newStockRepo() *fakeStockRepo {
	return &fakeStockRepo{
		warehouses: []string{"Central", "Norte"},
		items: []entity.Item{
			{Code: "CAM-1", Name: "Cámara réflex", ItemGroup: "Foto"},
			{Code: "TV-1", Name: "Televisor 55", ItemGroup: "Video"},
		},
		balances: []repository.StockBalance{
			{ItemCode: "CAM-1", Warehouse: "Central", Qty: amt("12")},
			{ItemCode: "TV-1", Warehouse: "Norte", Qty: amt("3.5")},
		},
	}
}

func TestStockBalancePorBodega(t *testing.T) {
	uc := reports.NewStockBalanceReportUseCase(newStockRepo(), []string{"Central", "Norte"}, logger.Nop())
	out, err := uc.Execute(context.Background(), reports.StockFilters{
		CompanyID: "CO-1",
		Date:      "2026-03-15",
	})
	require.NoError(t, err)

	require.Len(t, out.Columns, 5, "3 fijas + una por bodega")
	assert.Equal(t, "wh_central", out.Columns[3].Fieldname)
	assert.Equal(t, "Norte", out.Columns[4].Label)

	require.Len(t, out.Rows, 2)
	cam := out.Rows[0]
	assert.Equal(t, "CAM-1", cam["item_code"])
	assert.True(t, amt("12").Equal(cam["wh_central"].(decimal.Decimal)))
	assert.True(t, decimal.Zero.Equal(cam["wh_norte"].(decimal.Decimal)), "sin movimientos el saldo es cero, no nulo")
}

func TestStockBalanceFiltroPorGrupo(t *testing.T) {
	uc := reports.NewStockBalanceReportUseCase(newStockRepo(), []string{"Central", "Norte"}, logger.Nop())
	out, err := uc.Execute(context.Background(), reports.StockFilters{
		CompanyID: "CO-1",
		Date:      "2026-03-15",
		ItemGroup: "Foto",
	})
	require.NoError(t, err)

	require.Len(t, out.Rows, 1)
	assert.Equal(t, "CAM-1", out.Rows[0]["item_code"])
}

func TestStockBalanceFechaInvalida(t *testing.T) {
	uc := reports.NewStockBalanceReportUseCase(newStockRepo(), nil, logger.Nop())
	_, err := uc.Execute(context.Background(), reports.StockFilters{
		CompanyID: "CO-1",
		Date:      "15/03/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidFilters)
}

func TestStockBalanceSinFechaUsaHoy(t *testing.T) {
	repo := newStockRepo()
	uc := reports.NewStockBalanceReportUseCase(repo, []string{"Central"}, logger.Nop())
	_, err := uc.Execute(context.Background(), reports.StockFilters{CompanyID: "CO-1"})
	require.NoError(t, err)
	assert.False(t, repo.lastAsOf.IsZero(), "la fecha de corte por defecto es hoy")
}
