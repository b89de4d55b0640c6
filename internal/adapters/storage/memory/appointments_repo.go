package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"medirecord/internal/domain/appointments"
	"medirecord/internal/platform/apperr"
)

type appointmentRepo struct {
	s *Store
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.s.appts[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	r.s.appts[a.ID] = a
	return nil
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.appts[a.ID]; !exists {
		return apperr.NotFound("appointment")
	}
	r.s.appts[a.ID] = a
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appts[id]
	if !ok {
		return appointments.Appointment{}, apperr.NotFound("appointment")
	}
	return a, nil
}

func (r *appointmentRepo) ListByUser(ctx context.Context, userID string, f appointments.ListFilter) ([]appointments.Appointment, error) {
	return r.list(func(a appointments.Appointment) bool {
		if a.UserID != userID {
			return false
		}
		return f.From == nil || !a.ScheduledAt.Before(*f.From)
	}), nil
}

func (r *appointmentRepo) ListReminderDue(ctx context.Context, from, to time.Time) ([]appointments.Appointment, error) {
	return r.list(func(a appointments.Appointment) bool {
		return !a.ReminderSent && !a.ScheduledAt.Before(from) && a.ScheduledAt.Before(to)
	}), nil
}

func (r *appointmentRepo) list(keep func(appointments.Appointment) bool) []appointments.Appointment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.s.appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out
}

func (r *appointmentRepo) DeleteClosedBefore(ctx context.Context, before time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := 0
	for id, a := range r.s.appts {
		if a.ScheduledAt.Before(before) && a.Attendance != appointments.AttendancePending {
			delete(r.s.appts, id)
			n++
		}
	}
	return n, nil
}
