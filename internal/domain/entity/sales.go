package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de documento de venta. Solo los submitted entran a reportes.
const (
	DocStatusDraft     = "draft"
	DocStatusSubmitted = "submitted"
	DocStatusCancelled = "cancelled"
)

// SalesOrder cabecera de un pedido de venta.
type SalesOrder struct {
	ID              string
	CompanyID       string
	BranchID        string
	TransactionDate time.Time
	DocStatus       string
	GrandTotal      decimal.Decimal
}

// SalesInvoice cabecera de una factura de venta.
type SalesInvoice struct {
	ID          string
	CompanyID   string
	BranchID    string
	PostingDate time.Time
	DocStatus   string
	GrandTotal  decimal.Decimal
}

// SalesTeamEntry asignación de un vendedor a un documento de venta
// (pedido o factura) con su porcentaje de participación.
type SalesTeamEntry struct {
	ParentID      string // ID del pedido o factura
	ParentType    string // "Sales Order" | "Sales Invoice"
	SalesPersonID string
	Percentage    decimal.Decimal // 0–100; se normaliza antes de agregar
}

// PaymentEntry pago registrado contra la empresa.
type PaymentEntry struct {
	ID            string
	CompanyID     string
	BranchID      string
	PostingDate   time.Time
	PaymentMethod string
	PaidAmount    decimal.Decimal
	DocStatus     string
}
