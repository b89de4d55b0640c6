package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const DefaultCleanupSpec = "@daily"

// Retention es la antigüedad máxima que se conserva de cada dato.
type Retention struct {
	Doses         time.Duration
	Appointments  time.Duration
	Notifications time.Duration
}

func DefaultRetention() Retention {
	return Retention{
		Doses:         90 * 24 * time.Hour,
		Appointments:  180 * 24 * time.Hour,
		Notifications: 30 * 24 * time.Hour,
	}
}

func (r Retention) withDefaults() Retention {
	d := DefaultRetention()
	if r.Doses <= 0 {
		r.Doses = d.Doses
	}
	if r.Appointments <= 0 {
		r.Appointments = d.Appointments
	}
	if r.Notifications <= 0 {
		r.Notifications = d.Notifications
	}
	return r
}

type DosePurger interface {
	DeleteBefore(ctx context.Context, before time.Time) (int, error)
}

type AppointmentPurger interface {
	DeleteClosedBefore(ctx context.Context, before time.Time) (int, error)
}

type NotificationPurger interface {
	DeleteReadBefore(ctx context.Context, before time.Time) (int, error)
}

// Purgers son los repos que limpia el job de retención; los nil se saltean.
type Purgers struct {
	Doses         DosePurger
	Appointments  AppointmentPurger
	Notifications NotificationPurger
}

// CleanupResult cuenta lo borrado en una pasada.
type CleanupResult struct {
	Doses         int
	Appointments  int
	Notifications int
}

// EnableCleanup registra el job de retención; Start lo agenda con
// Config.CleanupSpec.
func (s *Scheduler) EnableCleanup(p Purgers) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgers = &p
}

// Cleanup borra historial de tomas, citas cerradas y notificaciones leídas
// más viejas que la retención configurada, contadas desde now.
func (s *Scheduler) Cleanup(ctx context.Context, now time.Time) (CleanupResult, error) {
	s.mu.Lock()
	p := s.purgers
	s.mu.Unlock()

	var res CleanupResult
	if p == nil {
		return res, nil
	}
	ret := s.cfg.Retention
	var errs []error

	if p.Doses != nil {
		n, err := p.Doses.DeleteBefore(ctx, now.Add(-ret.Doses))
		if err != nil {
			errs = append(errs, fmt.Errorf("purge doses: %w", err))
		}
		res.Doses = n
	}
	if p.Appointments != nil {
		n, err := p.Appointments.DeleteClosedBefore(ctx, now.Add(-ret.Appointments))
		if err != nil {
			errs = append(errs, fmt.Errorf("purge appointments: %w", err))
		}
		res.Appointments = n
	}
	if p.Notifications != nil {
		n, err := p.Notifications.DeleteReadBefore(ctx, now.Add(-ret.Notifications))
		if err != nil {
			errs = append(errs, fmt.Errorf("purge notifications: %w", err))
		}
		res.Notifications = n
	}
	return res, errors.Join(errs...)
}

func (s *Scheduler) cleanupTick() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := s.Cleanup(ctx, s.now())
	if err != nil {
		s.log.Error("cleanup failed", map[string]any{"err": err})
	}
	s.log.Info("cleanup done", map[string]any{
		"doses":         res.Doses,
		"appointments":  res.Appointments,
		"notifications": res.Notifications,
	})
}
