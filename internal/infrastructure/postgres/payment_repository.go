package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

var _ repository.PaymentReportRepository = (*PaymentReportRepo)(nil)

// PaymentReportRepo agregación de pagos por fecha y método sobre PostgreSQL.
type PaymentReportRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentReportRepository construye el adaptador.
func NewPaymentReportRepository(pool *pgxpool.Pool) *PaymentReportRepo {
	return &PaymentReportRepo{pool: pool}
}

// ListMethodTotals totales por fecha y método de pago. El orden (fecha
// ascendente, monto descendente) es parte del contrato: el caso de uso
// intercala subtotales confiando en él.
func (r *PaymentReportRepo) ListMethodTotals(ctx context.Context, q repository.PaymentQuery) ([]repository.PaymentMethodTotal, error) {
	query := `
		SELECT pe.posting_date,
		       COALESCE(NULLIF(pe.payment_method, ''), 'Not Specified'),
		       SUM(pe.paid_amount),
		       COUNT(*)
		FROM payment_entries pe
		WHERE pe.company_id = $1
		  AND pe.docstatus = $2
		  AND pe.posting_date BETWEEN $3 AND $4`
	args := []any{q.CompanyID, entity.DocStatusSubmitted, q.FromDate, q.ToDate}

	if q.BranchID != "" {
		args = append(args, q.BranchID)
		query += fmt.Sprintf(" AND pe.branch_id = $%d", len(args))
	}
	query += `
		GROUP BY pe.posting_date, COALESCE(NULLIF(pe.payment_method, ''), 'Not Specified')
		ORDER BY pe.posting_date ASC, SUM(pe.paid_amount) DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list method totals: %w", err)
	}
	defer rows.Close()

	var out []repository.PaymentMethodTotal
	for rows.Next() {
		var t repository.PaymentMethodTotal
		if err := rows.Scan(&t.PostingDate, &t.PaymentMethod, &t.TotalAmount, &t.TransactionCount); err != nil {
			return nil, fmt.Errorf("scan method total: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
