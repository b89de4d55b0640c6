package medications

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
	Name         string
	Dose         string
	Form         Form
	Route        string
	Instructions string
	StockCurrent int
	StockTotal   int
	Kind         TreatmentKind
	DurationDays int
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Medication, error) {
	if strings.TrimSpace(userID) == "" {
		return Medication{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Medication{}, apperr.InvalidInput("name is required")
	}
	if strings.TrimSpace(in.Dose) == "" {
		return Medication{}, apperr.InvalidInput("dose is required")
	}

	form := Form(strings.ToLower(strings.TrimSpace(string(in.Form))))
	if form == "" {
		form = FormOther
	}
	if !form.Valid() {
		return Medication{}, apperr.InvalidInput("invalid form")
	}

	kind := TreatmentKind(strings.ToLower(strings.TrimSpace(string(in.Kind))))
	if kind == "" {
		kind = TreatmentPermanent
	}
	if !kind.Valid() {
		return Medication{}, apperr.InvalidInput("invalid treatment kind")
	}

	duration := in.DurationDays
	switch kind {
	case TreatmentTemporary:
		if duration <= 0 {
			return Medication{}, apperr.InvalidInput("duration_days must be > 0 for temporary treatments")
		}
	case TreatmentPermanent:
		duration = 0
	}

	if in.StockCurrent < 0 || in.StockTotal < 0 {
		return Medication{}, apperr.InvalidInput("stock cannot be negative")
	}
	if in.StockTotal > 0 && in.StockCurrent > in.StockTotal {
		return Medication{}, apperr.InvalidInput("stock_current cannot exceed stock_total")
	}

	now := s.now()
	m := Medication{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Dose:         strings.TrimSpace(in.Dose),
		Form:         form,
		Route:        strings.TrimSpace(in.Route),
		Instructions: strings.TrimSpace(in.Instructions),
		StockCurrent: in.StockCurrent,
		StockTotal:   in.StockTotal,
		Kind:         kind,
		DurationDays: duration,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

// GetByID solo devuelve medicamentos del usuario; uno ajeno es NotFound.
func (s *Service) GetByID(ctx context.Context, userID, id string) (Medication, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}
	if m.UserID != userID {
		return Medication{}, apperr.NotFound("medication")
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, userID string, f ListFilter) ([]Medication, error) {
	return s.repo.ListByUser(ctx, userID, f)
}

func (s *Service) LowStock(ctx context.Context, userID string) ([]Medication, error) {
	items, err := s.repo.ListByUser(ctx, userID, ListFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	out := make([]Medication, 0)
	for _, m := range items {
		if m.LowStock() {
			out = append(out, m)
		}
	}
	return out, nil
}
