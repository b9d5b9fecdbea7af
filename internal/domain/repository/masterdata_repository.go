package repository

import (
	"context"

	"github.com/jhoicas/reportes-api/internal/domain/entity"
)

// MasterDataRepository lecturas de los maestros que alimentan el snapshot de
// cada ejecución de reporte: categorías (columnas dinámicas) e identidades.
// Se consultan una sola vez por ejecución; el núcleo trabaja sobre el snapshot.
type MasterDataRepository interface {
	// ListDepartments departamentos ordenados por código.
	ListDepartments(ctx context.Context) ([]entity.Department, error)

	// ListDivisions divisiones ordenadas por código.
	ListDivisions(ctx context.Context) ([]entity.Division, error)

	// ListSalesPersons todos los vendedores del maestro.
	ListSalesPersons(ctx context.Context) ([]entity.SalesPerson, error)

	// ListEmployeeCodes mapa employee ID -> código de empleado.
	ListEmployeeCodes(ctx context.Context) (map[string]string, error)
}
