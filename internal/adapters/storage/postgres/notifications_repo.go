package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"medirecord/internal/domain/notifications"
	"medirecord/internal/platform/apperr"
	"medirecord/internal/ports/notify"
)

type NotificationsRepo struct {
	db *sql.DB
}

func NewNotificationsRepo(db *sql.DB) *NotificationsRepo {
	return &NotificationsRepo{db: db}
}

func (r *NotificationsRepo) Create(ctx context.Context, n notifications.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, kind, title, message, read, sent_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, n.ID, n.UserID, string(n.Kind), n.Title, n.Message, n.Read, n.SentAt)
	return err
}

func (r *NotificationsRepo) GetByID(ctx context.Context, id string) (notifications.Notification, error) {
	n, err := scanNotification(r.db.QueryRowContext(ctx, `
		SELECT id, user_id, kind, title, message, read, sent_at
		FROM notifications
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notifications.Notification{}, apperr.NotFound("notification")
		}
		return notifications.Notification{}, err
	}
	return n, nil
}

func (r *NotificationsRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]notifications.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, kind, title, message, read, sent_at
		FROM notifications
		WHERE user_id = $1 AND ($2 = FALSE OR NOT read)
		ORDER BY sent_at DESC
	`, userID, unreadOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationsRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.NotFound("notification")
	}
	return nil
}

func scanNotification(s scanner) (notifications.Notification, error) {
	var (
		n    notifications.Notification
		kind string
	)
	err := s.Scan(&n.ID, &n.UserID, &kind, &n.Title, &n.Message, &n.Read, &n.SentAt)
	n.Kind = notify.Kind(kind)
	return n, err
}

func (r *NotificationsRepo) DeleteReadBefore(ctx context.Context, before time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM notifications
		WHERE read AND sent_at < $1
	`, before)
	if err != nil {
		return 0, err
	}
	return affected(res)
}
