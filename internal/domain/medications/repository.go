package medications

import "context"

type ListFilter struct {
	ActiveOnly bool
}

type Repository interface {
	Create(ctx context.Context, m Medication) error
	GetByID(ctx context.Context, id string) (Medication, error)
	ListByUser(ctx context.Context, userID string, f ListFilter) ([]Medication, error)
}
