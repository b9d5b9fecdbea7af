package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/application/reports"
	"github.com/jhoicas/reportes-api/internal/domain"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/report"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
	"github.com/jhoicas/reportes-api/pkg/logger"
)

func newMaster() *fakeMasterRepo {
	return &fakeMasterRepo{
		departments: []entity.Department{
			{Code: "AV", Name: "Audio Video"},
			{Code: "FO", Name: "Foto"},
		},
		divisions: []entity.Division{
			{Code: "B", Name: "Mercancía"},
			{Code: "F", Name: "Servicios"},
		},
		persons: []entity.SalesPerson{
			{ID: "SP-001", Name: "Bob", SalesCode: "B01"},
			{ID: "SP-002", Name: "alice", EmployeeID: "EMP-9"},
		},
		empCodes: map[string]string{"EMP-9": "E900"},
	}
}

func TestDepartmentReportDistribuyePorcentajes(t *testing.T) {
	sales := &fakeSalesRepo{
		orders: []repository.SalesTransaction{{ID: "SO-1", Date: day("2026-03-02")}},
		orderItems: map[string][]report.ItemRow{
			"SO-1": {
				{ItemCode: "TV", CategoryCode: "AV", Amount: amt("100")},
				{ItemCode: "CAM", CategoryCode: "FO", Amount: amt("50")},
			},
		},
		orderTeam: map[string][]report.Allocation{
			"SO-1": {
				{SalesPersonID: "SP-001", Percentage: amt("60")},
				{SalesPersonID: "SP-002", Percentage: amt("40")},
			},
		},
	}

	uc := reports.NewDepartmentReportUseCase(sales, newMaster(), logger.Nop())
	out, err := uc.Execute(context.Background(), reports.Filters{
		CompanyID: "CO-1",
		FromDate:  "2026-03-01",
		ToDate:    "2026-03-31",
	})
	require.NoError(t, err, "el reporte no debería fallar")

	require.Len(t, out.Columns, 5, "2 fijas + 2 departamentos + TOTAL")
	assert.Equal(t, "dept_AV", out.Columns[2].Fieldname)
	assert.Equal(t, "total_amount", out.Columns[4].Fieldname)
	assert.Equal(t, "Sales Person vs Item Department", out.Title)

	// Bob 60%, alice 40%, más Grand Total.
	require.Len(t, out.Rows, 3, "dos vendedores y la fila de totales")

	bob := out.Rows[0] // orden por bytes: "Bob" antes que "alice"
	assert.Equal(t, "Bob", bob["sales_person_name"])
	assert.True(t, amt("60").Equal(bob["dept_AV"].(decimal.Decimal)), "60%% de 100")
	assert.True(t, amt("30").Equal(bob["dept_FO"].(decimal.Decimal)), "60%% de 50")
	assert.True(t, amt("90").Equal(bob["total_amount"].(decimal.Decimal)))

	total := out.Rows[2]
	assert.Equal(t, true, total[dto.RowKeyIsTotal])
	assert.Equal(t, report.GrandTotalLabel, total["sales_person_name"])
	assert.True(t, amt("150").Equal(total["total_amount"].(decimal.Decimal)), "el gran total conserva la suma")
}

func TestDepartmentReportSinEquipoUsaNoAsignado(t *testing.T) {
	sales := &fakeSalesRepo{
		invoices: []repository.SalesTransaction{{ID: "SI-7", Date: day("2026-03-05")}},
		invoiceItems: map[string][]report.ItemRow{
			"SI-7": {{ItemCode: "TV", CategoryCode: "AV", Amount: amt("200")}},
		},
	}

	uc := reports.NewDepartmentReportUseCase(sales, newMaster(), logger.Nop())
	out, err := uc.Execute(context.Background(), reports.Filters{
		CompanyID: "CO-1",
		FromDate:  "2026-03-01",
		ToDate:    "2026-03-31",
	})
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, report.NotAssignedName, out.Rows[0]["sales_person_name"], "sin equipo el monto completo va a Not Assigned")
	assert.True(t, amt("200").Equal(out.Rows[0]["dept_AV"].(decimal.Decimal)))
}

func TestDepartmentReportFiltrosInvalidos(t *testing.T) {
	uc := reports.NewDepartmentReportUseCase(&fakeSalesRepo{}, newMaster(), logger.Nop())

	_, err := uc.Execute(context.Background(), reports.Filters{CompanyID: "CO-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidFilters, "sin fechas el reporte se rechaza")

	_, err = uc.Execute(context.Background(), reports.Filters{
		CompanyID: "CO-1",
		FromDate:  "2026-03-31",
		ToDate:    "2026-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidFilters, "rango invertido")
}

func TestDepartmentReportSinTransacciones(t *testing.T) {
	uc := reports.NewDepartmentReportUseCase(&fakeSalesRepo{}, newMaster(), logger.Nop())
	out, err := uc.Execute(context.Background(), reports.Filters{
		CompanyID: "CO-1",
		FromDate:  "2026-03-01",
		ToDate:    "2026-03-31",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Rows, "sin datos no hay fila de totales")
	assert.Len(t, out.Columns, 5, "las columnas se arman igual")
}

func TestDivisionSummaryUsaDivisiones(t *testing.T) {
	sales := &fakeSalesRepo{
		orders: []repository.SalesTransaction{{ID: "SO-2", Date: day("2026-03-10")}},
		orderItems: map[string][]report.ItemRow{
			"SO-2": {{ItemCode: "TV", CategoryCode: "B", Amount: amt("80")}},
		},
		orderTeam: map[string][]report.Allocation{
			"SO-2": {{SalesPersonID: "SP-002", Percentage: amt("100")}},
		},
	}

	uc := reports.NewDivisionSummaryUseCase(sales, newMaster(), logger.Nop())
	out, err := uc.Execute(context.Background(), reports.Filters{
		CompanyID: "CO-1",
		FromDate:  "2026-03-01",
		ToDate:    "2026-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sales Person Summary", out.Title)
	assert.Equal(t, "div_B", out.Columns[2].Fieldname)

	require.Len(t, out.Rows, 2)
	alice := out.Rows[0]
	assert.Equal(t, "alice", alice["sales_person_name"])
	assert.Equal(t, "E900", alice["sales_code"], "el código sale del empleado cuando falta sales_code")
	assert.True(t, amt("80").Equal(alice["div_B"].(decimal.Decimal)))
}

func TestDepartmentReportMismaIDDistintaFuente(t *testing.T) {
	// Pedido y factura con el mismo ID "42": fuentes distintas, ambos cuentan.
	sales := &fakeSalesRepo{
		orders:   []repository.SalesTransaction{{ID: "42", Date: day("2026-03-02")}},
		invoices: []repository.SalesTransaction{{ID: "42", Date: day("2026-03-03")}},
		orderItems: map[string][]report.ItemRow{
			"42": {{ItemCode: "TV", CategoryCode: "AV", Amount: amt("10")}},
		},
		invoiceItems: map[string][]report.ItemRow{
			"42": {{ItemCode: "TV", CategoryCode: "AV", Amount: amt("5")}},
		},
		orderTeam: map[string][]report.Allocation{
			"42": {{SalesPersonID: "SP-001", Percentage: amt("100")}},
		},
		invoiceTeam: map[string][]report.Allocation{
			"42": {{SalesPersonID: "SP-001", Percentage: amt("100")}},
		},
	}

	uc := reports.NewDepartmentReportUseCase(sales, newMaster(), logger.Nop())
	out, err := uc.Execute(context.Background(), reports.Filters{
		CompanyID: "CO-1",
		FromDate:  "2026-03-01",
		ToDate:    "2026-03-31",
	})
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	assert.True(t, amt("15").Equal(out.Rows[0]["total_amount"].(decimal.Decimal)), "SO-42 y SI-42 no se confunden")
}
