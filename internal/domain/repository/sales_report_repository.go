package repository

import (
	"context"
	"time"

	"github.com/jhoicas/reportes-api/internal/domain/report"
)

// SalesQuery filtros ya validados para la consulta de transacciones.
type SalesQuery struct {
	CompanyID string
	FromDate  time.Time
	ToDate    time.Time
	BranchID  string // opcional; vacío = todas las sucursales
	ItemGroup string // opcional; limita a transacciones con ítems de ese grupo
}

// SalesTransaction cabecera mínima de un pedido o factura submitted.
type SalesTransaction struct {
	ID   string
	Date time.Time
}

// CategoryDimension dimensión de clasificación de los artículos.
type CategoryDimension string

// Dimensiones soportadas; deciden qué columna del maestro de artículos
// resuelve la categoría de cada línea.
const (
	DimensionDepartment CategoryDimension = "department"
	DimensionDivision   CategoryDimension = "division"
)

// SalesReportRepository es el proveedor de filas crudas ("row fetcher") de los
// reportes por vendedor. Las implementaciones son read-only.
//
// El patrón de acceso es por transacción: una consulta de ítems y una de
// equipo de ventas por cada pedido/factura, igual que el reporte original.
type SalesReportRepository interface {
	// ListSubmittedOrders devuelve los pedidos submitted del período.
	ListSubmittedOrders(ctx context.Context, q SalesQuery) ([]SalesTransaction, error)

	// ListSubmittedInvoices devuelve las facturas submitted del período.
	ListSubmittedInvoices(ctx context.Context, q SalesQuery) ([]SalesTransaction, error)

	// ListOrderItems devuelve las líneas de un pedido con la categoría ya
	// resuelta desde el maestro de artículos según la dimensión pedida.
	ListOrderItems(ctx context.Context, orderID string, dim CategoryDimension) ([]report.ItemRow, error)

	// ListInvoiceItems ídem para facturas.
	ListInvoiceItems(ctx context.Context, invoiceID string, dim CategoryDimension) ([]report.ItemRow, error)

	// ListOrderSalesTeam devuelve las asignaciones del equipo de ventas del
	// pedido, sin normalizar (puede venir vacío o no sumar 100).
	ListOrderSalesTeam(ctx context.Context, orderID string) ([]report.Allocation, error)

	// ListInvoiceSalesTeam ídem para facturas.
	ListInvoiceSalesTeam(ctx context.Context, invoiceID string) ([]report.Allocation, error)
}
