package reports_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/report"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

// amt atajo decimal para los tests.
func amt(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func day(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return t
}

// fakeSalesRepo repositorio de ventas en memoria con el mismo patrón de
// acceso por transacción que la implementación real.
type fakeSalesRepo struct {
	orders   []repository.SalesTransaction
	invoices []repository.SalesTransaction

	orderItems   map[string][]report.ItemRow
	invoiceItems map[string][]report.ItemRow
	orderTeam    map[string][]report.Allocation
	invoiceTeam  map[string][]report.Allocation

	lastQuery repository.SalesQuery
}

func (f *fakeSalesRepo) ListSubmittedOrders(_ context.Context, q repository.SalesQuery) ([]repository.SalesTransaction, error) {
	f.lastQuery = q
	return f.orders, nil
}

func (f *fakeSalesRepo) ListSubmittedInvoices(_ context.Context, q repository.SalesQuery) ([]repository.SalesTransaction, error) {
	return f.invoices, nil
}

func (f *fakeSalesRepo) ListOrderItems(_ context.Context, id string, _ repository.CategoryDimension) ([]report.ItemRow, error) {
	return f.orderItems[id], nil
}

func (f *fakeSalesRepo) ListInvoiceItems(_ context.Context, id string, _ repository.CategoryDimension) ([]report.ItemRow, error) {
	return f.invoiceItems[id], nil
}

func (f *fakeSalesRepo) ListOrderSalesTeam(_ context.Context, id string) ([]report.Allocation, error) {
	return f.orderTeam[id], nil
}

func (f *fakeSalesRepo) ListInvoiceSalesTeam(_ context.Context, id string) ([]report.Allocation, error) {
	return f.invoiceTeam[id], nil
}

// fakeMasterRepo maestros en memoria.
type fakeMasterRepo struct {
	departments []entity.Department
	divisions   []entity.Division
	persons     []entity.SalesPerson
	empCodes    map[string]string
}

func (f *fakeMasterRepo) ListDepartments(context.Context) ([]entity.Department, error) {
	return f.departments, nil
}

func (f *fakeMasterRepo) ListDivisions(context.Context) ([]entity.Division, error) {
	return f.divisions, nil
}

func (f *fakeMasterRepo) ListSalesPersons(context.Context) ([]entity.SalesPerson, error) {
	return f.persons, nil
}

func (f *fakeMasterRepo) ListEmployeeCodes(context.Context) (map[string]string, error) {
	return f.empCodes, nil
}

// fakePaymentRepo devuelve las filas ya ordenadas, como la DB real.
type fakePaymentRepo struct {
	totals []repository.PaymentMethodTotal
}

func (f *fakePaymentRepo) ListMethodTotals(context.Context, repository.PaymentQuery) ([]repository.PaymentMethodTotal, error) {
	return f.totals, nil
}

// fakeStockRepo inventario en memoria.
type fakeStockRepo struct {
	warehouses []string
	items      []entity.Item
	balances   []repository.StockBalance

	lastAsOf time.Time
}

func (f *fakeStockRepo) ListWarehouses(_ context.Context, _ string, _ []string) ([]string, error) {
	return f.warehouses, nil
}

func (f *fakeStockRepo) ListItems(_ context.Context, q repository.ItemQuery) ([]entity.Item, error) {
	out := make([]entity.Item, 0, len(f.items))
	for _, it := range f.items {
		if q.ItemCode != "" && it.Code != q.ItemCode {
			continue
		}
		if q.ItemGroup != "" && it.ItemGroup != q.ItemGroup {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeStockRepo) ListBalances(_ context.Context, _ string, _ []string, asOf time.Time) ([]repository.StockBalance, error) {
	f.lastAsOf = asOf
	return f.balances, nil
}
