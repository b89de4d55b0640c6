package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"medirecord/internal/domain/reminders"
	"medirecord/internal/platform/apperr"
)

type reminderRepo struct {
	s *Store
}

func (r *reminderRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(rem.ID) == "" {
		return errors.New("reminder id required")
	}
	if _, exists := r.s.rems[rem.ID]; exists {
		return errors.New("reminder already exists")
	}
	r.s.rems[rem.ID] = copyReminder(rem)
	return nil
}

func (r *reminderRepo) GetByID(ctx context.Context, id string) (reminders.Reminder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rem, ok := r.s.rems[id]
	if !ok {
		return reminders.Reminder{}, apperr.NotFound("reminder")
	}
	return copyReminder(rem), nil
}

func (r *reminderRepo) ListByMedication(ctx context.Context, medicationID string) ([]reminders.Reminder, error) {
	return r.list(func(rem reminders.Reminder) bool { return rem.MedicationID == medicationID }), nil
}

func (r *reminderRepo) ListActiveByUser(ctx context.Context, userID string) ([]reminders.Reminder, error) {
	return r.list(func(rem reminders.Reminder) bool { return rem.Active && rem.UserID == userID }), nil
}

func (r *reminderRepo) ListActive(ctx context.Context) ([]reminders.Reminder, error) {
	return r.list(func(rem reminders.Reminder) bool { return rem.Active }), nil
}

// list ordena por hora del día y luego por creación.
func (r *reminderRepo) list(keep func(reminders.Reminder) bool) []reminders.Reminder {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]reminders.Reminder, 0)
	for _, rem := range r.s.rems {
		if keep(rem) {
			out = append(out, copyReminder(rem))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TimeOfDay != out[j].TimeOfDay {
			return out[i].TimeOfDay < out[j].TimeOfDay
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
