package adherence

import (
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
)

// Progress es el avance de un tratamiento. En permanentes IsPermanent=true y
// TotalExpected/Percentage no tienen significado (quedan en 0).
type Progress struct {
	MedicationID string
	Kind         medications.TreatmentKind
	Active       bool

	TakenCount    int
	TotalExpected int
	Percentage    float64
	IsPermanent   bool
}

func (p Progress) Complete() bool {
	return !p.IsPermanent && p.Percentage >= 100
}

type RecordDoseInput struct {
	State doses.State // default tomado
	Notes string
}

// DoseOutcome es el resultado de registrar una toma: la toma creada, el
// progreso posterior y si el tratamiento quedó dado de baja.
type DoseOutcome struct {
	Dose           doses.Event
	MedicationName string
	Progress       Progress
	Deactivated    bool
}

// Percentage = min(100, taken*100/total); 0 si total es 0.
func Percentage(taken, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(taken) * 100 / float64(total)
	if p > 100 {
		return 100
	}
	return p
}
