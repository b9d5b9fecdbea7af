package report

// SalesPersonRecord registro plano del maestro de vendedores para el snapshot.
type SalesPersonRecord struct {
	ID         string
	Name       string
	SalesCode  string
	EmployeeID string
}

// IdentityIndex snapshot de solo lectura del maestro de vendedores y de los
// códigos de empleado. Se construye una vez por ejecución del reporte; el
// núcleo no vuelve a consultar la base de datos por identidades.
type IdentityIndex struct {
	persons       map[string]SalesPersonRecord
	employeeCodes map[string]string // employee ID -> código de empleado
}

// NewIdentityIndex construye el snapshot.
func NewIdentityIndex(persons []SalesPersonRecord, employeeCodes map[string]string) IdentityIndex {
	idx := IdentityIndex{
		persons:       make(map[string]SalesPersonRecord, len(persons)),
		employeeCodes: employeeCodes,
	}
	for _, p := range persons {
		idx.persons[p.ID] = p
	}
	return idx
}

// Resolve devuelve la identidad visible de un vendedor. found es false cuando
// el vendedor no existe en el snapshot (borrado o referencia rota); en ese
// caso la identidad retornada es el comodín "Not Assigned" y el caller decide
// si lo registra en el log — nunca es un error.
//
// Precedencia del código: sales_code explícito → código del empleado
// vinculado → primeros 5 caracteres del ID. Gana el primero no vacío.
func (ix IdentityIndex) Resolve(salesPersonID string) (identity Identity, found bool) {
	if salesPersonID == "" || salesPersonID == NotAssignedID {
		return NotAssigned(), true
	}
	rec, ok := ix.persons[salesPersonID]
	if !ok {
		return NotAssigned(), false
	}

	code := rec.SalesCode
	if code == "" && rec.EmployeeID != "" {
		code = ix.employeeCodes[rec.EmployeeID]
	}
	if code == "" {
		code = truncate(rec.ID, 5)
	}
	return Identity{ID: rec.ID, Name: rec.Name, Code: code}, true
}

// truncate corta s a n runas como máximo.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
