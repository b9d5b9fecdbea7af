package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/report"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

var _ repository.SalesReportRepository = (*SalesReportRepo)(nil)

// SalesReportRepo proveedor de filas crudas de los reportes por vendedor
// sobre PostgreSQL. Solo lecturas.
type SalesReportRepo struct {
	pool *pgxpool.Pool
}

// NewSalesReportRepository construye el adaptador.
func NewSalesReportRepository(pool *pgxpool.Pool) *SalesReportRepo {
	return &SalesReportRepo{pool: pool}
}

// categoryColumn columna del maestro de artículos que resuelve la categoría.
// Switch cerrado: dim jamás se interpola directo en el SQL.
func categoryColumn(dim repository.CategoryDimension) (string, error) {
	switch dim {
	case repository.DimensionDepartment:
		return "dept_code", nil
	case repository.DimensionDivision:
		return "division_code", nil
	default:
		return "", fmt.Errorf("dimensión de categoría desconocida: %q", dim)
	}
}

// ListSubmittedOrders pedidos submitted del período, en orden de fecha.
func (r *SalesReportRepo) ListSubmittedOrders(ctx context.Context, q repository.SalesQuery) ([]repository.SalesTransaction, error) {
	query := `
		SELECT so.id, so.transaction_date
		FROM sales_orders so
		WHERE so.company_id = $1
		  AND so.docstatus = $2
		  AND so.transaction_date BETWEEN $3 AND $4`
	args := []any{q.CompanyID, entity.DocStatusSubmitted, q.FromDate, q.ToDate}

	if q.BranchID != "" {
		args = append(args, q.BranchID)
		query += fmt.Sprintf(" AND so.branch_id = $%d", len(args))
	}
	if q.ItemGroup != "" {
		args = append(args, q.ItemGroup)
		query += fmt.Sprintf(`
		  AND EXISTS (
			SELECT 1 FROM sales_order_items soi
			JOIN items i ON i.code = soi.item_code
			WHERE soi.order_id = so.id AND i.item_group = $%d
		  )`, len(args))
	}
	query += " ORDER BY so.transaction_date, so.id"

	return r.listTransactions(ctx, query, args)
}

// ListSubmittedInvoices facturas submitted del período, en orden de fecha.
func (r *SalesReportRepo) ListSubmittedInvoices(ctx context.Context, q repository.SalesQuery) ([]repository.SalesTransaction, error) {
	query := `
		SELECT si.id, si.posting_date
		FROM sales_invoices si
		WHERE si.company_id = $1
		  AND si.docstatus = $2
		  AND si.posting_date BETWEEN $3 AND $4`
	args := []any{q.CompanyID, entity.DocStatusSubmitted, q.FromDate, q.ToDate}

	if q.BranchID != "" {
		args = append(args, q.BranchID)
		query += fmt.Sprintf(" AND si.branch_id = $%d", len(args))
	}
	if q.ItemGroup != "" {
		args = append(args, q.ItemGroup)
		query += fmt.Sprintf(`
		  AND EXISTS (
			SELECT 1 FROM sales_invoice_items sii
			JOIN items i ON i.code = sii.item_code
			WHERE sii.invoice_id = si.id AND i.item_group = $%d
		  )`, len(args))
	}
	query += " ORDER BY si.posting_date, si.id"

	return r.listTransactions(ctx, query, args)
}

func (r *SalesReportRepo) listTransactions(ctx context.Context, query string, args []any) ([]repository.SalesTransaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []repository.SalesTransaction
	for rows.Next() {
		var t repository.SalesTransaction
		if err := rows.Scan(&t.ID, &t.Date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListOrderItems líneas de un pedido con su categoría resuelta desde el
// maestro. El LEFT JOIN deja la categoría vacía para artículos borrados o
// sin clasificar; el núcleo los descarta.
func (r *SalesReportRepo) ListOrderItems(ctx context.Context, orderID string, dim repository.CategoryDimension) ([]report.ItemRow, error) {
	col, err := categoryColumn(dim)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT soi.item_code, COALESCE(i.%s, ''), soi.amount
		FROM sales_order_items soi
		LEFT JOIN items i ON i.code = soi.item_code
		WHERE soi.order_id = $1
		ORDER BY soi.idx`, col)
	return r.listItemRows(ctx, query, orderID)
}

// ListInvoiceItems ídem para facturas.
func (r *SalesReportRepo) ListInvoiceItems(ctx context.Context, invoiceID string, dim repository.CategoryDimension) ([]report.ItemRow, error) {
	col, err := categoryColumn(dim)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT sii.item_code, COALESCE(i.%s, ''), sii.amount
		FROM sales_invoice_items sii
		LEFT JOIN items i ON i.code = sii.item_code
		WHERE sii.invoice_id = $1
		ORDER BY sii.idx`, col)
	return r.listItemRows(ctx, query, invoiceID)
}

func (r *SalesReportRepo) listItemRows(ctx context.Context, query, parentID string) ([]report.ItemRow, error) {
	rows, err := r.pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []report.ItemRow
	for rows.Next() {
		var it report.ItemRow
		if err := rows.Scan(&it.ItemCode, &it.CategoryCode, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// ListOrderSalesTeam asignaciones del equipo de ventas de un pedido, tal
// cual están en la tabla (sin normalizar).
func (r *SalesReportRepo) ListOrderSalesTeam(ctx context.Context, orderID string) ([]report.Allocation, error) {
	return r.listSalesTeam(ctx, "Sales Order", orderID)
}

// ListInvoiceSalesTeam ídem para facturas.
func (r *SalesReportRepo) ListInvoiceSalesTeam(ctx context.Context, invoiceID string) ([]report.Allocation, error) {
	return r.listSalesTeam(ctx, "Sales Invoice", invoiceID)
}

func (r *SalesReportRepo) listSalesTeam(ctx context.Context, parentType, parentID string) ([]report.Allocation, error) {
	query := `
		SELECT ste.sales_person_id, ste.allocated_percentage
		FROM sales_team_entries ste
		WHERE ste.parent_type = $1 AND ste.parent_id = $2
		ORDER BY ste.idx`
	rows, err := r.pool.Query(ctx, query, parentType, parentID)
	if err != nil {
		return nil, fmt.Errorf("list sales team: %w", err)
	}
	defer rows.Close()

	var out []report.Allocation
	for rows.Next() {
		var a report.Allocation
		if err := rows.Scan(&a.SalesPersonID, &a.Percentage); err != nil {
			return nil, fmt.Errorf("scan sales team entry: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
