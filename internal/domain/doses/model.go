package doses

import "time"

type State string

const (
	StatePending State = "pendiente"
	StateTaken   State = "tomado"
	StateSkipped State = "omitido"
	StateLate    State = "retrasado"
)

func (s State) Valid() bool {
	switch s {
	case StatePending, StateTaken, StateSkipped, StateLate:
		return true
	}
	return false
}

// Event es una toma registrada. Append-only: no se edita después de crearse.
type Event struct {
	ID           string
	UserID       string
	MedicationID string
	ReminderID   string

	State State

	ScheduledAt time.Time  // hora configurada del recordatorio
	TakenAt     *time.Time // hora real; nil si se omitió

	Notes string

	CreatedAt time.Time
}

// MedicationStats es el cumplimiento histórico por medicamento.
type MedicationStats struct {
	MedicationID   string
	MedicationName string
	Total          int
	Taken          int
	Percentage     float64
}
