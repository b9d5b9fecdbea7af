package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/report"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
	"github.com/jhoicas/reportes-api/pkg/logger"
)

// Fieldnames del reporte de métodos de pago.
const (
	fieldPostingDate      = "posting_date"
	fieldPaymentMethod    = "payment_method"
	fieldTransactionCount = "transaction_count"
)

// PaymentMethodReportUseCase reporte de cobros agrupados por fecha y método
// de pago, con subtotal por día y gran total al final.
type PaymentMethodReportUseCase struct {
	payments repository.PaymentReportRepository
	log      *logger.Logger
}

// NewPaymentMethodReportUseCase construye el caso de uso.
func NewPaymentMethodReportUseCase(payments repository.PaymentReportRepository, log *logger.Logger) *PaymentMethodReportUseCase {
	return &PaymentMethodReportUseCase{payments: payments, log: log}
}

// Execute corre el reporte para los filtros dados. Las filas llegan del
// repositorio ordenadas por fecha ascendente y monto descendente; acá solo
// se intercalan las filas sintéticas.
func (uc *PaymentMethodReportUseCase) Execute(ctx context.Context, f Filters) (*dto.ReportDTO, error) {
	from, to, err := f.Validate()
	if err != nil {
		return nil, err
	}

	totals, err := uc.payments.ListMethodTotals(ctx, repository.PaymentQuery{
		CompanyID: f.CompanyID,
		FromDate:  from,
		ToDate:    to,
		BranchID:  f.Branch,
	})
	if err != nil {
		return nil, fmt.Errorf("reporte de métodos de pago: %w", err)
	}

	rows := uc.buildRows(totals)

	uc.log.Info().
		Str("company", f.CompanyID).
		Int("methods", len(totals)).
		Int("rows", len(rows)).
		Msg("reporte de métodos de pago generado")

	return &dto.ReportDTO{
		Title:   "Payment Method",
		Columns: uc.columns(),
		Rows:    rows,
	}, nil
}

// buildRows intercala un subtotal al cierre de cada fecha y un gran total al
// final. Sin datos no hay filas sintéticas.
func (uc *PaymentMethodReportUseCase) buildRows(totals []repository.PaymentMethodTotal) []dto.ReportRow {
	if len(totals) == 0 {
		return []dto.ReportRow{}
	}

	rows := make([]dto.ReportRow, 0, len(totals)+4)

	var (
		currentDate = totals[0].PostingDate
		dayAmount   = decimal.Zero
		dayCount    = 0
		grandAmount = decimal.Zero
		grandCount  = 0
	)

	flushDay := func() {
		rows = append(rows, dto.ReportRow{
			fieldPostingDate:      currentDate.Format(dateLayout),
			fieldPaymentMethod:    "Subtotal",
			fieldTotalAmount:      dayAmount,
			fieldTransactionCount: dayCount,
			dto.RowKeyIsSubtotal:  true,
		})
	}

	for _, t := range totals {
		if !t.PostingDate.Equal(currentDate) {
			flushDay()
			currentDate = t.PostingDate
			dayAmount = decimal.Zero
			dayCount = 0
		}
		rows = append(rows, dto.ReportRow{
			fieldPostingDate:      t.PostingDate.Format(dateLayout),
			fieldPaymentMethod:    t.PaymentMethod,
			fieldTotalAmount:      t.TotalAmount,
			fieldTransactionCount: t.TransactionCount,
		})
		dayAmount = dayAmount.Add(t.TotalAmount)
		dayCount += t.TransactionCount
		grandAmount = grandAmount.Add(t.TotalAmount)
		grandCount += t.TransactionCount
	}
	flushDay()

	rows = append(rows, dto.ReportRow{
		fieldPostingDate:      "",
		fieldPaymentMethod:    report.GrandTotalLabel,
		fieldTotalAmount:      grandAmount,
		fieldTransactionCount: grandCount,
		dto.RowKeyIsTotal:     true,
	})
	return rows
}

func (uc *PaymentMethodReportUseCase) columns() []dto.ReportColumn {
	return []dto.ReportColumn{
		{Label: "Posting Date", Fieldname: fieldPostingDate, Fieldtype: dto.FieldtypeDate, Width: 100},
		{Label: "Payment Method", Fieldname: fieldPaymentMethod, Fieldtype: dto.FieldtypeData, Width: 200},
		{Label: "Total Amount", Fieldname: fieldTotalAmount, Fieldtype: dto.FieldtypeCurrency, Width: 180},
		{Label: "Transactions", Fieldname: fieldTransactionCount, Fieldtype: dto.FieldtypeInt, Width: 140},
	}
}
