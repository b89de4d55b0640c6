package notifications

import (
	"context"
	"strings"
	"time"

	"medirecord/internal/platform/apperr"
	"medirecord/internal/platform/logger"
	"medirecord/internal/ports/notify"

	"github.com/google/uuid"
)

var ErrNotFound = apperr.ErrNotFound

type Metrics interface {
	NotificationSent(kind string)
}

type Service struct {
	repo    Repository
	log     logger.Logger
	metrics Metrics
	now     func() time.Time
}

func NewService(repo Repository, log logger.Logger, metrics Metrics) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:    repo,
		log:     log.With(map[string]any{"component": "notifications"}),
		metrics: metrics,
		now:     time.Now,
	}
}

func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

var _ notify.Notifier = (*Service)(nil)

// Notify guarda la notificación en la bandeja del usuario. Nunca devuelve
// error: los fallos quedan en el log.
func (s *Service) Notify(ctx context.Context, msg notify.Message) {
	if strings.TrimSpace(msg.UserID) == "" {
		s.log.Warn("notification without user dropped", map[string]any{"title": msg.Title})
		return
	}
	kind := msg.Kind
	if kind == "" {
		kind = notify.KindInfo
	}

	n := Notification{
		ID:      uuid.NewString(),
		UserID:  msg.UserID,
		Kind:    kind,
		Title:   strings.TrimSpace(msg.Title),
		Message: strings.TrimSpace(msg.Body),
		SentAt:  s.now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error("store notification failed", map[string]any{
			"user_id": msg.UserID,
			"kind":    string(kind),
			"err":     err,
		})
		return
	}

	if s.metrics != nil {
		s.metrics.NotificationSent(string(kind))
	}
	s.log.Info("notification sent", map[string]any{
		"user_id": n.UserID,
		"kind":    string(n.Kind),
		"title":   n.Title,
	})
}

func (s *Service) List(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

// MarkRead es idempotente.
func (s *Service) MarkRead(ctx context.Context, userID, id string) (Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Notification{}, err
	}
	if n.UserID != userID {
		return Notification{}, apperr.NotFound("notification")
	}
	if n.Read {
		return n, nil
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return Notification{}, err
	}
	n.Read = true
	return n, nil
}
