package appointments

import (
	"context"
	"time"
)

type ListFilter struct {
	From *time.Time // nil = todas
}

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByUser(ctx context.Context, userID string, f ListFilter) ([]Appointment, error)

	// ListReminderDue: citas en [from, to) que aún no tienen aviso enviado.
	ListReminderDue(ctx context.Context, from, to time.Time) ([]Appointment, error)

	// DeleteClosedBefore borra citas anteriores a before con asistencia ya registrada.
	DeleteClosedBefore(ctx context.Context, before time.Time) (int, error)
}
