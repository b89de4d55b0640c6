package memory

import (
	"sync"
	"time"

	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/notifications"
	"medirecord/internal/domain/reminders"
)

// Store guarda todo en memoria detrás de un único mutex, así Atomic puede
// cubrir medicamentos, recordatorios y tomas a la vez. Solo para dev/tests.
type Store struct {
	mu sync.RWMutex

	meds   map[string]medications.Medication
	rems   map[string]reminders.Reminder
	doses  []doses.Event // orden de inserción
	appts  map[string]appointments.Appointment
	notifs map[string]notifications.Notification
}

func NewStore() *Store {
	return &Store{
		meds:   make(map[string]medications.Medication),
		rems:   make(map[string]reminders.Reminder),
		appts:  make(map[string]appointments.Appointment),
		notifs: make(map[string]notifications.Notification),
	}
}

func (s *Store) Medications() medications.Repository     { return &medicationRepo{s: s} }
func (s *Store) Reminders() reminders.Repository         { return &reminderRepo{s: s} }
func (s *Store) Doses() doses.Repository                 { return &doseRepo{s: s} }
func (s *Store) Appointments() appointments.Repository   { return &appointmentRepo{s: s} }
func (s *Store) Notifications() notifications.Repository { return &notificationRepo{s: s} }

func copyDays(in []time.Weekday) []time.Weekday {
	if in == nil {
		return nil
	}
	out := make([]time.Weekday, len(in))
	copy(out, in)
	return out
}

func copyReminder(r reminders.Reminder) reminders.Reminder {
	r.Days = copyDays(r.Days)
	if r.EndDate != nil {
		end := *r.EndDate
		r.EndDate = &end
	}
	return r
}
