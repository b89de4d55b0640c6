package appointments

import (
	"context"
	"strings"
	"time"

	"medirecord/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrNotFound     = apperr.ErrNotFound
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

type CreateInput struct {
	DoctorName  string
	Specialty   string
	ScheduledAt time.Time
	Location    string
	Notes       string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Appointment, error) {
	if strings.TrimSpace(userID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.DoctorName) == "" {
		return Appointment{}, apperr.InvalidInput("doctor_name is required")
	}
	if in.ScheduledAt.IsZero() {
		return Appointment{}, apperr.InvalidInput("scheduled_at is required")
	}

	now := s.now()
	a := Appointment{
		ID:          uuid.NewString(),
		UserID:      userID,
		DoctorName:  strings.TrimSpace(in.DoctorName),
		Specialty:   strings.TrimSpace(in.Specialty),
		ScheduledAt: in.ScheduledAt,
		Location:    strings.TrimSpace(in.Location),
		Notes:       strings.TrimSpace(in.Notes),
		Attendance:  AttendancePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, userID string, upcomingOnly bool) ([]Appointment, error) {
	f := ListFilter{}
	if upcomingOnly {
		now := s.now()
		f.From = &now
	}
	return s.repo.ListByUser(ctx, userID, f)
}

func (s *Service) get(ctx context.Context, userID, id string) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if a.UserID != userID {
		return Appointment{}, apperr.NotFound("appointment")
	}
	return a, nil
}

func (s *Service) SetAttendance(ctx context.Context, userID, id string, att Attendance) (Appointment, error) {
	if !att.Valid() {
		return Appointment{}, apperr.InvalidInput("invalid attendance")
	}
	a, err := s.get(ctx, userID, id)
	if err != nil {
		return Appointment{}, err
	}
	if a.Attendance == att {
		return a, nil
	}
	a.Attendance = att
	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// DueForReminder: citas dentro de la ventana [now, now+window) sin aviso.
func (s *Service) DueForReminder(ctx context.Context, now time.Time, window time.Duration) ([]Appointment, error) {
	return s.repo.ListReminderDue(ctx, now, now.Add(window))
}

func (s *Service) MarkReminderSent(ctx context.Context, a Appointment) error {
	if a.ReminderSent {
		return nil
	}
	a.ReminderSent = true
	a.UpdatedAt = s.now()
	return s.repo.Update(ctx, a)
}
