package doses

import (
	"context"
	"time"
)

type ListFilter struct {
	MedicationID string
	Limit        int
}

// Repository es solo lectura; las tomas se escriben desde adherence.
type Repository interface {
	ListByUser(ctx context.Context, userID string, f ListFilter) ([]Event, error)

	// StatsByUser devuelve Total y Taken por medicamento (Percentage lo calcula el service).
	StatsByUser(ctx context.Context, userID string) ([]MedicationStats, error)

	// DeleteBefore borra tomas registradas antes de before, salvo las de
	// tratamientos temporales activos (su progreso depende de ellas).
	DeleteBefore(ctx context.Context, before time.Time) (int, error)
}
