package dto

// Tipos de columna del visor tabular. Compatibles con los fieldtypes del
// visor de reportes del ERP de origen.
const (
	FieldtypeData     = "Data"
	FieldtypeCurrency = "Currency"
	FieldtypeDate     = "Date"
	FieldtypeFloat    = "Float"
	FieldtypeInt      = "Int"
)

// Claves de marcado de filas sintéticas dentro de un ReportRow.
const (
	RowKeyIsTotal    = "is_total"
	RowKeyIsSubtotal = "is_subtotal"
)

// ReportColumn definición de una columna del reporte. El conjunto es
// estático salvo las columnas por categoría/bodega, que se derivan del
// maestro en cada ejecución.
type ReportColumn struct {
	Label     string `json:"label"`
	Fieldname string `json:"fieldname"`
	Fieldtype string `json:"fieldtype"`
	Width     int    `json:"width"`
}

// ReportRow fila del reporte: mapa de fieldname a escalar (decimal, texto o
// fecha). Las filas sintéticas llevan is_total / is_subtotal en true.
type ReportRow map[string]any

// ReportDTO respuesta de cualquier endpoint de reporte: columnas ordenadas
// más filas listas para render tabular.
type ReportDTO struct {
	Title   string         `json:"title"`
	Columns []ReportColumn `json:"columns"`
	Rows    []ReportRow    `json:"rows"`
}

// SalesReportRequest query params de los reportes por vendedor.
type SalesReportRequest struct {
	FromDate  string `query:"from_date"`  // YYYY-MM-DD
	ToDate    string `query:"to_date"`    // YYYY-MM-DD
	Branch    string `query:"branch"`     // opcional
	ItemGroup string `query:"item_group"` // opcional
	Format    string `query:"format"`     // json (default) | csv | xml | pdf
}

// PaymentReportRequest query params del reporte de métodos de pago.
type PaymentReportRequest struct {
	FromDate string `query:"from_date"`
	ToDate   string `query:"to_date"`
	Branch   string `query:"branch"`
	Format   string `query:"format"`
}

// StockReportRequest query params del reporte de existencias por bodega.
type StockReportRequest struct {
	Date      string `query:"date"` // corte YYYY-MM-DD; default hoy
	ItemCode  string `query:"item_code"`
	ItemGroup string `query:"item_group"`
	Format    string `query:"format"`
}
