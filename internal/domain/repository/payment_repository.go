package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentQuery filtros validados para el reporte de métodos de pago.
type PaymentQuery struct {
	CompanyID string
	FromDate  time.Time
	ToDate    time.Time
	BranchID  string // opcional
}

// PaymentMethodTotal resultado crudo agrupado por fecha y método de pago.
// Lo produce la DB ordenado por fecha ascendente y monto descendente; el
// caso de uso intercala subtotales por fecha.
type PaymentMethodTotal struct {
	PostingDate      time.Time
	PaymentMethod    string // "Not Specified" cuando el pago no tiene método
	TotalAmount      decimal.Decimal
	TransactionCount int
}

// PaymentReportRepository consultas read-only sobre pagos registrados.
type PaymentReportRepository interface {
	ListMethodTotals(ctx context.Context, q PaymentQuery) ([]PaymentMethodTotal, error)
}
