package adherence

import (
	"context"
	"time"

	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/reminders"
)

// Repository es la vista del store que usa el tracker. Dentro de Atomic
// todas las llamadas van sobre la misma transacción.
type Repository interface {
	GetMedication(ctx context.Context, id string) (medications.Medication, error)
	GetReminder(ctx context.Context, id string) (reminders.Reminder, error)

	CountActiveReminders(ctx context.Context, medicationID string) (int, error)
	CountDoses(ctx context.Context, medicationID string, state doses.State) (int, error)

	AppendDose(ctx context.Context, e doses.Event) error

	// DeactivateMedication da de baja el medicamento y todos sus recordatorios.
	DeactivateMedication(ctx context.Context, medicationID string, at time.Time) error
}

type Store interface {
	Repository

	// Atomic ejecuta fn en una única transacción: si fn devuelve error no
	// queda nada escrito.
	Atomic(ctx context.Context, fn func(tx Repository) error) error
}
