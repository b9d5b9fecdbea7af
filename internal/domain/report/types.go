// Package report implementa el núcleo de agregación de los reportes de ventas
// por vendedor: normalización de porcentajes del equipo de ventas, subtotales
// por categoría (departamento o división) por transacción, distribución por
// porcentaje asignado, agrupación entre fuentes (pedidos y facturas) con
// de-duplicación del comodín "N/A", y fila de gran total.
//
// El paquete es puro: no consulta la base de datos ni conoce HTTP. Los datos
// llegan ya resueltos (filas de artículos con su categoría, asignaciones del
// equipo de ventas y un snapshot de identidades) y el resultado es una lista
// de resúmenes listos para convertir en filas de reporte.
package report

import "github.com/shopspring/decimal"

// Source identifica la fuente de una transacción.
type Source string

// Fuentes soportadas. El prefijo forma parte de la clave compuesta usada
// para de-duplicar transacciones entre pasadas.
const (
	SourceOrder   Source = "SO"
	SourceInvoice Source = "SI"
)

// Identidad comodín para transacciones sin equipo de ventas o con un vendedor
// que ya no existe.
const (
	NotAssignedID   = "N/A"
	NotAssignedName = "Not Assigned"
	NotAssignedCode = "N/A"
)

// GrandTotalLabel etiqueta de la fila sintética de totales.
const GrandTotalLabel = "Grand Total"

// ItemRow una línea de artículo de una transacción, con la categoría ya
// resuelta desde el maestro de artículos. CategoryCode vacío significa que
// el artículo no suma a ninguna columna (política deliberada).
type ItemRow struct {
	ItemCode     string
	CategoryCode string
	Amount       decimal.Decimal
}

// Allocation asignación de un vendedor dentro del equipo de ventas de una
// transacción. Percentage está en escala 0–100.
type Allocation struct {
	SalesPersonID string
	Percentage    decimal.Decimal
}

// Identity identidad visible de un vendedor en el reporte.
type Identity struct {
	ID   string
	Name string
	Code string
}

// NotAssigned devuelve la identidad comodín.
func NotAssigned() Identity {
	return Identity{ID: NotAssignedID, Name: NotAssignedName, Code: NotAssignedCode}
}

// IsNotAssigned indica si la identidad es el comodín.
func (id Identity) IsNotAssigned() bool {
	return id.ID == NotAssignedID
}

// Entry resultado de agregar una transacción para un vendedor: la porción de
// cada categoría que le corresponde según su porcentaje asignado.
type Entry struct {
	Source        Source
	TransactionID string
	Identity      Identity
	Shares        map[string]decimal.Decimal // categoría -> monto asignado
}

// transactionKey clave compuesta fuente+ID, única entre pedidos y facturas.
func (e Entry) transactionKey() string {
	return string(e.Source) + "-" + e.TransactionID
}

// Summary acumulador por vendedor tras la agrupación. Totals tiene una clave
// por categoría conocida; Total es la suma de todas las categorías.
type Summary struct {
	Identity Identity
	Totals   map[string]decimal.Decimal
	Total    decimal.Decimal
	IsTotal  bool // true solo en la fila sintética "Grand Total"
}
