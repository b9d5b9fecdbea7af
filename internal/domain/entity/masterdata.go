package entity

// Department departamento de artículo (maestro "Dept" del ERP).
// El reporte de vendedores genera una columna por departamento, en orden de código.
type Department struct {
	Code string
	Name string
}

// Division división de artículo (maestro de divisiones: mercancía, servicios, etc.).
// Cumple el mismo papel que Department en el reporte resumen.
type Division struct {
	Code string
	Name string
}

// Item artículo del maestro. DeptCode y DivisionCode clasifican sus ventas
// en los reportes por vendedor; pueden estar vacíos (el artículo no suma
// a ninguna categoría, a propósito).
type Item struct {
	Code         string
	Name         string
	ItemGroup    string
	DeptCode     string
	DivisionCode string
}

// Warehouse bodega de inventario.
type Warehouse struct {
	ID        string
	Name      string
	CompanyID string
}
