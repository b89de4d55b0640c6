package reminders

import (
	"context"
	"sort"
	"strings"
	"time"

	"medirecord/internal/domain/medications"
	"medirecord/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrNotFound     = apperr.ErrNotFound
	ErrInvalidState = apperr.ErrInvalidState
)

// MedicationLookup evita que reminders dependa del service concreto.
type MedicationLookup interface {
	GetByID(ctx context.Context, userID, id string) (medications.Medication, error)
}

type Service struct {
	repo Repository
	meds MedicationLookup
	now  func() time.Time
}

func NewService(repo Repository, meds MedicationLookup) *Service {
	return &Service{
		repo: repo,
		meds: meds,
		now:  time.Now,
	}
}

func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

type CreateInput struct {
	TimeOfDay  string
	Days       []int
	StartDate  *time.Time
	EndDate    *time.Time
	AlarmSound bool
}

func (s *Service) Create(ctx context.Context, userID, medicationID string, in CreateInput) (Reminder, error) {
	if strings.TrimSpace(userID) == "" {
		return Reminder{}, ErrInvalidInput
	}

	m, err := s.meds.GetByID(ctx, userID, medicationID)
	if err != nil {
		return Reminder{}, err
	}
	if !m.Active {
		return Reminder{}, apperr.InvalidState("medication is inactive")
	}

	tod, err := ParseTimeOfDay(in.TimeOfDay)
	if err != nil {
		return Reminder{}, apperr.InvalidInput(err.Error())
	}
	days, err := NormalizeDays(in.Days)
	if err != nil {
		return Reminder{}, apperr.InvalidInput(err.Error())
	}

	now := s.now()
	start := DateOnly(now)
	if in.StartDate != nil {
		start = DateOnly(*in.StartDate)
	}
	var end *time.Time
	if in.EndDate != nil {
		e := DateOnly(*in.EndDate)
		if e.Before(start) {
			return Reminder{}, apperr.InvalidInput("end_date must not be before start_date")
		}
		end = &e
	}

	r := Reminder{
		ID:           uuid.NewString(),
		MedicationID: m.ID,
		UserID:       userID,
		TimeOfDay:    tod,
		Days:         days,
		StartDate:    start,
		EndDate:      end,
		Active:       true,
		AlarmSound:   in.AlarmSound,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

func (s *Service) ListByMedication(ctx context.Context, userID, medicationID string) ([]Reminder, error) {
	if _, err := s.meds.GetByID(ctx, userID, medicationID); err != nil {
		return nil, err
	}
	return s.repo.ListByMedication(ctx, medicationID)
}

// ListToday: activos que aplican hoy, ordenados por hora.
func (s *Service) ListToday(ctx context.Context, userID string) ([]Reminder, error) {
	items, err := s.repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	out := make([]Reminder, 0, len(items))
	for _, r := range items {
		if r.DueOn(today) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TimeOfDay < out[j].TimeOfDay })
	return out, nil
}
