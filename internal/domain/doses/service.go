package doses

import (
	"context"
	"math"
	"strings"

	"medirecord/internal/platform/apperr"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List devuelve el historial más reciente primero.
func (s *Service) List(ctx context.Context, userID string, f ListFilter) ([]Event, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.ErrInvalidInput
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultLimit
	case f.Limit > MaxLimit:
		f.Limit = MaxLimit
	}
	f.MedicationID = strings.TrimSpace(f.MedicationID)
	return s.repo.ListByUser(ctx, userID, f)
}

func (s *Service) Stats(ctx context.Context, userID string) ([]MedicationStats, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.ErrInvalidInput
	}
	items, err := s.repo.StatsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Percentage = CompliancePercent(items[i].Taken, items[i].Total)
	}
	return items, nil
}

// CompliancePercent = taken*100/total redondeado a 2 decimales; 0 si total es 0.
func CompliancePercent(taken, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(taken) * 100 / float64(total)
	return math.Round(p*100) / 100
}
