package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

var _ repository.StockReportRepository = (*StockReportRepo)(nil)

// StockReportRepo saldos de inventario al corte sobre PostgreSQL.
type StockReportRepo struct {
	pool *pgxpool.Pool
}

// NewStockReportRepository construye el adaptador.
func NewStockReportRepository(pool *pgxpool.Pool) *StockReportRepo {
	return &StockReportRepo{pool: pool}
}

// ListWarehouses de la lista pedida, las bodegas que existen para la
// empresa, respetando el orden de names.
func (r *StockReportRepo) ListWarehouses(ctx context.Context, companyID string, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	query := `SELECT name FROM warehouses WHERE company_id = $1 AND name = ANY($2)`
	rows, err := r.pool.Query(ctx, query, companyID, names)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool, len(names))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		if existing[n] {
			out = append(out, n)
		}
	}
	return out, nil
}

// ListItems artículos del maestro que pasan el filtro, ordenados por código.
func (r *StockReportRepo) ListItems(ctx context.Context, q repository.ItemQuery) ([]entity.Item, error) {
	query := `
		SELECT code, name, COALESCE(item_group, ''), COALESCE(dept_code, ''), COALESCE(division_code, '')
		FROM items
		WHERE 1=1`
	var args []any

	if q.ItemCode != "" {
		args = append(args, q.ItemCode)
		query += fmt.Sprintf(" AND code = $%d", len(args))
	}
	if q.ItemGroup != "" {
		args = append(args, q.ItemGroup)
		query += fmt.Sprintf(" AND item_group = $%d", len(args))
	}
	query += " ORDER BY code"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.Code, &it.Name, &it.ItemGroup, &it.DeptCode, &it.DivisionCode); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// ListBalances saldos por artículo y bodega sumando el libro mayor de
// inventario hasta la fecha de corte inclusive.
func (r *StockReportRepo) ListBalances(ctx context.Context, companyID string, itemCodes []string, asOf time.Time) ([]repository.StockBalance, error) {
	if len(itemCodes) == 0 {
		return nil, nil
	}
	query := `
		SELECT sle.item_code, sle.warehouse, SUM(sle.actual_qty)
		FROM stock_ledger_entries sle
		WHERE sle.company_id = $1
		  AND sle.item_code = ANY($2)
		  AND sle.posting_date <= $3
		GROUP BY sle.item_code, sle.warehouse
		HAVING SUM(sle.actual_qty) <> 0`
	rows, err := r.pool.Query(ctx, query, companyID, itemCodes, asOf)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()

	var out []repository.StockBalance
	for rows.Next() {
		var b repository.StockBalance
		if err := rows.Scan(&b.ItemCode, &b.Warehouse, &b.Qty); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
