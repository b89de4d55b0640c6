package medications

import "time"

type TreatmentKind string

const (
	TreatmentTemporary TreatmentKind = "temporal"
	TreatmentPermanent TreatmentKind = "permanente"
)

func (k TreatmentKind) Valid() bool {
	return k == TreatmentTemporary || k == TreatmentPermanent
}

type Form string

const (
	FormTablet    Form = "tableta"
	FormCapsule   Form = "capsula"
	FormLiquid    Form = "liquido"
	FormInjection Form = "inyeccion"
	FormCream     Form = "crema"
	FormOther     Form = "otro"
)

func (f Form) Valid() bool {
	switch f {
	case FormTablet, FormCapsule, FormLiquid, FormInjection, FormCream, FormOther:
		return true
	}
	return false
}

// Medication es un tratamiento de un usuario. DurationDays solo aplica a
// tratamientos temporales; en permanentes siempre es 0.
type Medication struct {
	ID     string
	UserID string

	Name         string
	Dose         string
	Form         Form
	Route        string
	Instructions string

	StockCurrent int
	StockTotal   int

	Kind         TreatmentKind
	DurationDays int

	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Medication) IsPermanent() bool {
	return m.Kind == TreatmentPermanent
}

// LowStock: stock actual por debajo del 25% del total.
func (m Medication) LowStock() bool {
	if m.StockTotal <= 0 {
		return false
	}
	return m.StockCurrent*4 < m.StockTotal
}
