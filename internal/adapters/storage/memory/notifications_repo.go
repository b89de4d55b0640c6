package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"medirecord/internal/domain/notifications"
	"medirecord/internal/platform/apperr"
)

type notificationRepo struct {
	s *Store
}

func (r *notificationRepo) Create(ctx context.Context, n notifications.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(n.ID) == "" {
		return errors.New("notification id required")
	}
	r.s.notifs[n.ID] = n
	return nil
}

func (r *notificationRepo) GetByID(ctx context.Context, id string) (notifications.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n, ok := r.s.notifs[id]
	if !ok {
		return notifications.Notification{}, apperr.NotFound("notification")
	}
	return n, nil
}

// ListByUser: más reciente primero.
func (r *notificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]notifications.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]notifications.Notification, 0)
	for _, n := range r.s.notifs {
		if n.UserID != userID || (unreadOnly && n.Read) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SentAt.After(out[j].SentAt)
	})
	return out, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.notifs[id]
	if !ok {
		return apperr.NotFound("notification")
	}
	n.Read = true
	r.s.notifs[id] = n
	return nil
}

func (r *notificationRepo) DeleteReadBefore(ctx context.Context, before time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := 0
	for id, x := range r.s.notifs {
		if x.Read && x.SentAt.Before(before) {
			delete(r.s.notifs, id)
			n++
		}
	}
	return n, nil
}
