package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

var _ repository.MasterDataRepository = (*MasterDataRepo)(nil)

// MasterDataRepo lecturas de los maestros (departamentos, divisiones,
// vendedores, empleados) sobre PostgreSQL.
type MasterDataRepo struct {
	pool *pgxpool.Pool
}

// NewMasterDataRepository construye el adaptador.
func NewMasterDataRepository(pool *pgxpool.Pool) *MasterDataRepo {
	return &MasterDataRepo{pool: pool}
}

// ListDepartments departamentos ordenados por código.
func (r *MasterDataRepo) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM departments ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var out []entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.Code, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListDivisions divisiones ordenadas por código.
func (r *MasterDataRepo) ListDivisions(ctx context.Context) ([]entity.Division, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM divisions ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	defer rows.Close()

	var out []entity.Division
	for rows.Next() {
		var d entity.Division
		if err := rows.Scan(&d.Code, &d.Name); err != nil {
			return nil, fmt.Errorf("scan division: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListSalesPersons todos los vendedores del maestro, habilitados o no; el
// reporte muestra ventas históricas de vendedores ya deshabilitados.
func (r *MasterDataRepo) ListSalesPersons(ctx context.Context) ([]entity.SalesPerson, error) {
	query := `
		SELECT id, name, COALESCE(sales_code, ''), COALESCE(employee_id, ''), enabled
		FROM sales_persons`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales persons: %w", err)
	}
	defer rows.Close()

	var out []entity.SalesPerson
	for rows.Next() {
		var p entity.SalesPerson
		if err := rows.Scan(&p.ID, &p.Name, &p.SalesCode, &p.EmployeeID, &p.Enabled); err != nil {
			return nil, fmt.Errorf("scan sales person: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListEmployeeCodes mapa employee ID -> código de empleado.
func (r *MasterDataRepo) ListEmployeeCodes(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, COALESCE(code, '') FROM employees`)
	if err != nil {
		return nil, fmt.Errorf("list employee codes: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, code string
		if err := rows.Scan(&id, &code); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out[id] = code
	}
	return out, rows.Err()
}
