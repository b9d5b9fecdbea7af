package reports

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/reportes-api/internal/domain"
)

// dateLayout formato de fecha de los filtros (y del ERP de origen).
const dateLayout = "2006-01-02"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Filters filtros de entrada de los reportes de ventas y pagos. CompanyID
// viene del token, el resto de la query string.
type Filters struct {
	CompanyID string `validate:"required"`
	FromDate  string `validate:"omitempty,datetime=2006-01-02"`
	ToDate    string `validate:"omitempty,datetime=2006-01-02"`
	Branch    string
	ItemGroup string

	// MaxRangeDays límite del rango aceptado; 0 desactiva el control. Lo
	// fija el handler desde la configuración, no el cliente.
	MaxRangeDays int `validate:"-"`
}

// Validate aplica la validación fail-fast del contrato de borde: empresa
// obligatoria, al menos una fecha, rango no invertido. Se ejecuta antes de
// cualquier consulta; un filtro inválido jamás llega a la agregación.
//
// Si solo llega una de las dos fechas, la otra toma el mismo valor (rango de
// un día).
func (f Filters) Validate() (from, to time.Time, err error) {
	if vErr := validate.Struct(f); vErr != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", domain.ErrInvalidFilters, validationMessage(vErr))
	}

	if f.FromDate == "" && f.ToDate == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from_date y to_date son obligatorios", domain.ErrInvalidFilters)
	}

	fromStr, toStr := f.FromDate, f.ToDate
	if fromStr == "" {
		fromStr = toStr
	}
	if toStr == "" {
		toStr = fromStr
	}

	from, err = time.Parse(dateLayout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from_date inválido", domain.ErrInvalidFilters)
	}
	to, err = time.Parse(dateLayout, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to_date inválido", domain.ErrInvalidFilters)
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from_date debe ser anterior o igual a to_date", domain.ErrInvalidFilters)
	}
	if f.MaxRangeDays > 0 {
		if days := int(to.Sub(from).Hours()/24) + 1; days > f.MaxRangeDays {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: el rango supera el máximo de %d días", domain.ErrInvalidFilters, f.MaxRangeDays)
		}
	}
	return from, to, nil
}

// validationMessage resume el primer error del validador en algo legible.
func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &vErrs); ok && len(vErrs) > 0 {
		fe := vErrs[0]
		switch fe.Field() {
		case "CompanyID":
			return "company es obligatorio"
		default:
			return fmt.Sprintf("%s inválido", fe.Field())
		}
	}
	return err.Error()
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	v, ok := err.(validator.ValidationErrors)
	if ok {
		*target = v
	}
	return ok
}
