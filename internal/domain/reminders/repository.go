package reminders

import "context"

type Repository interface {
	Create(ctx context.Context, r Reminder) error
	GetByID(ctx context.Context, id string) (Reminder, error)
	ListByMedication(ctx context.Context, medicationID string) ([]Reminder, error)
	ListActiveByUser(ctx context.Context, userID string) ([]Reminder, error)

	// ListActive recorre todos los usuarios; lo usa el scheduler.
	ListActive(ctx context.Context) ([]Reminder, error)
}
