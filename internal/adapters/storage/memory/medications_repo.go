package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"medirecord/internal/domain/medications"
	"medirecord/internal/platform/apperr"
)

type medicationRepo struct {
	s *Store
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medication id required")
	}
	if _, exists := r.s.meds[m.ID]; exists {
		return errors.New("medication already exists")
	}
	r.s.meds[m.ID] = m
	return nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.meds[id]
	if !ok {
		return medications.Medication{}, apperr.NotFound("medication")
	}
	return m, nil
}

func (r *medicationRepo) ListByUser(ctx context.Context, userID string, f medications.ListFilter) ([]medications.Medication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]medications.Medication, 0)
	for _, m := range r.s.meds {
		if m.UserID != userID {
			continue
		}
		if f.ActiveOnly && !m.Active {
			continue
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
