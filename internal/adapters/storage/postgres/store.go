package postgres

import (
	"database/sql"

	"medirecord/internal/domain/adherence"
	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/notifications"
	"medirecord/internal/domain/reminders"
)

// Store agrupa los repos sobre un mismo pool.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Medications() medications.Repository     { return NewMedicationsRepo(s.db) }
func (s *Store) Reminders() reminders.Repository         { return NewRemindersRepo(s.db) }
func (s *Store) Doses() doses.Repository                 { return NewDosesRepo(s.db) }
func (s *Store) Appointments() appointments.Repository   { return NewAppointmentsRepo(s.db) }
func (s *Store) Notifications() notifications.Repository { return NewNotificationsRepo(s.db) }
func (s *Store) Adherence() adherence.Store              { return NewAdherenceStore(s.db) }
