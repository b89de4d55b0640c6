// Package scheduler emite los recordatorios de toma y de citas en su hora.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/platform/logger"
	"medirecord/internal/ports/notify"

	"github.com/robfig/cron/v3"
)

const (
	DefaultSpec       = "@every 1m"
	AppointmentWindow = 24 * time.Hour
)

type ReminderSource interface {
	ListActive(ctx context.Context) ([]reminders.Reminder, error)
}

type MedicationSource interface {
	GetByID(ctx context.Context, id string) (medications.Medication, error)
}

type AppointmentSource interface {
	DueForReminder(ctx context.Context, now time.Time, window time.Duration) ([]appointments.Appointment, error)
	MarkReminderSent(ctx context.Context, a appointments.Appointment) error
}

type Metrics interface {
	RemindersDispatched(n int)
}

type Config struct {
	Spec     string
	Location *time.Location

	// CleanupSpec agenda el job de retención (solo si se llamó EnableCleanup).
	CleanupSpec string
	Retention   Retention
}

// Result cuenta lo emitido en una pasada.
type Result struct {
	Reminders    int
	Appointments int
}

type Scheduler struct {
	cfg      Config
	rems     ReminderSource
	meds     MedicationSource
	appts    AppointmentSource
	notifier notify.Notifier
	metrics  Metrics
	log      logger.Logger
	now      func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	purgers *Purgers
}

func New(
	cfg Config,
	rems ReminderSource,
	meds MedicationSource,
	appts AppointmentSource,
	notifier notify.Notifier,
	metrics Metrics,
	log logger.Logger,
) *Scheduler {
	if cfg.Spec == "" {
		cfg.Spec = DefaultSpec
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.CleanupSpec == "" {
		cfg.CleanupSpec = DefaultCleanupSpec
	}
	cfg.Retention = cfg.Retention.withDefaults()
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Scheduler{
		cfg:      cfg,
		rems:     rems,
		meds:     meds,
		appts:    appts,
		notifier: notifier,
		metrics:  metrics,
		log:      log.With(map[string]any{"component": "scheduler"}),
		now:      time.Now,
	}
}

func (s *Scheduler) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Start registra los jobs en cron y arranca el loop. Llamar Start dos veces
// devuelve error.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return errors.New("scheduler already running")
	}

	c := cron.New(cron.WithLocation(s.cfg.Location))
	if _, err := c.AddFunc(s.cfg.Spec, s.tick); err != nil {
		return fmt.Errorf("invalid scheduler spec %q: %w", s.cfg.Spec, err)
	}
	if s.purgers != nil {
		if _, err := c.AddFunc(s.cfg.CleanupSpec, s.cleanupTick); err != nil {
			return fmt.Errorf("invalid cleanup spec %q: %w", s.cfg.CleanupSpec, err)
		}
	}
	c.Start()
	s.cron = c

	s.log.Info("scheduler started", map[string]any{
		"spec":    s.cfg.Spec,
		"tz":      s.cfg.Location.String(),
		"cleanup": s.purgers != nil,
	})
	return nil
}

// Stop espera a que termine la pasada en curso o a que venza ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return nil
	}

	select {
	case <-c.Stop().Done():
		s.log.Info("scheduler stopped", nil)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
	defer cancel()

	res, err := s.DispatchDue(ctx, s.now())
	if err != nil {
		s.log.Error("dispatch failed", map[string]any{"err": err})
	}
	if res.Reminders > 0 || res.Appointments > 0 {
		s.log.Info("dispatch done", map[string]any{
			"reminders":    res.Reminders,
			"appointments": res.Appointments,
		})
	}
}

// DispatchDue emite los recordatorios cuya hora coincide con now (al minuto)
// y los avisos de citas de las próximas 24h. Un fallo en un ítem se loguea
// y se sigue con el resto.
func (s *Scheduler) DispatchDue(ctx context.Context, now time.Time) (Result, error) {
	now = now.In(s.cfg.Location)
	var res Result

	remErr := s.dispatchReminders(ctx, now, &res)
	apptErr := s.dispatchAppointments(ctx, now, &res)

	if s.metrics != nil {
		s.metrics.RemindersDispatched(res.Reminders)
	}
	return res, errors.Join(remErr, apptErr)
}

func (s *Scheduler) dispatchReminders(ctx context.Context, now time.Time, res *Result) error {
	if s.rems == nil || s.meds == nil {
		return nil
	}

	items, err := s.rems.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list reminders: %w", err)
	}

	hhmm := now.Format("15:04")
	for _, r := range items {
		if r.TimeOfDay != hhmm || !r.DueOn(now) {
			continue
		}

		m, err := s.meds.GetByID(ctx, r.MedicationID)
		if err != nil {
			s.log.Warn("reminder medication lookup failed", map[string]any{
				"reminder_id": r.ID,
				"err":         err,
			})
			continue
		}
		if !m.Active {
			continue
		}

		s.notifier.Notify(ctx, notify.Message{
			UserID: m.UserID,
			Kind:   notify.KindReminder,
			Title:  "Recordatorio",
			Body:   fmt.Sprintf("Hora de tomar %s (%s)", m.Name, m.Dose),
		})
		res.Reminders++
	}
	return nil
}

func (s *Scheduler) dispatchAppointments(ctx context.Context, now time.Time, res *Result) error {
	if s.appts == nil {
		return nil
	}

	items, err := s.appts.DueForReminder(ctx, now, AppointmentWindow)
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}

	for _, a := range items {
		if err := s.appts.MarkReminderSent(ctx, a); err != nil {
			s.log.Warn("mark appointment reminder failed", map[string]any{
				"appointment_id": a.ID,
				"err":            err,
			})
			continue
		}
		s.notifier.Notify(ctx, notify.Message{
			UserID: a.UserID,
			Kind:   notify.KindReminder,
			Title:  "Cita médica",
			Body:   appointmentMessage(a, s.cfg.Location),
		})
		res.Appointments++
	}
	return nil
}

func appointmentMessage(a appointments.Appointment, loc *time.Location) string {
	msg := fmt.Sprintf("Cita con %s el %s", a.DoctorName, a.ScheduledAt.In(loc).Format("02/01/2006 15:04"))
	if a.Specialty != "" {
		msg += " (" + a.Specialty + ")"
	}
	if a.Location != "" {
		msg += " en " + a.Location
	}
	return msg
}
