package notifications

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, n Notification) error
	GetByID(ctx context.Context, id string) (Notification, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error

	// DeleteReadBefore borra notificaciones leídas enviadas antes de before.
	DeleteReadBefore(ctx context.Context, before time.Time) (int, error)
}
