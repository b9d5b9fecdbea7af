package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/domain/entity"
)

// ItemQuery filtros del maestro de artículos para el reporte de existencias.
type ItemQuery struct {
	ItemCode  string // opcional, match exacto
	ItemGroup string // opcional
}

// StockBalance saldo de un artículo en una bodega al corte.
type StockBalance struct {
	ItemCode  string
	Warehouse string
	Qty       decimal.Decimal
}

// StockReportRepository consultas read-only del libro mayor de inventario.
type StockReportRepository interface {
	// ListWarehouses devuelve, de la lista pedida, las bodegas que existen
	// para la empresa, respetando el orden de names.
	ListWarehouses(ctx context.Context, companyID string, names []string) ([]string, error)

	// ListItems artículos del maestro que pasan el filtro, ordenados por código.
	ListItems(ctx context.Context, q ItemQuery) ([]entity.Item, error)

	// ListBalances saldos por artículo y bodega sumando movimientos con
	// fecha de contabilización <= asOf.
	ListBalances(ctx context.Context, companyID string, itemCodes []string, asOf time.Time) ([]StockBalance, error)
}
