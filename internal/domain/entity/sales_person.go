package entity

// SalesPerson vendedor registrado en el maestro de ventas.
// SalesCode es el código comercial visible en reportes; puede estar vacío,
// en cuyo caso se resuelve desde el empleado vinculado o desde el ID.
type SalesPerson struct {
	ID         string
	Name       string
	SalesCode  string
	EmployeeID string // vínculo opcional al maestro de empleados
	Enabled    bool
}

// Employee empleado del maestro de RRHH. Solo interesa su código para
// la resolución de identidad de vendedores.
type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
}
