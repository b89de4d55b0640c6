package memory

import (
	"context"
	"sort"
	"time"

	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
)

type doseRepo struct {
	s *Store
}

// ListByUser: más reciente primero.
func (r *doseRepo) ListByUser(ctx context.Context, userID string, f doses.ListFilter) ([]doses.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]doses.Event, 0)
	for i := len(r.s.doses) - 1; i >= 0; i-- {
		e := r.s.doses[i]
		if e.UserID != userID {
			continue
		}
		if f.MedicationID != "" && e.MedicationID != f.MedicationID {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (r *doseRepo) StatsByUser(ctx context.Context, userID string) ([]doses.MedicationStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byMed := map[string]*doses.MedicationStats{}
	for _, e := range r.s.doses {
		if e.UserID != userID {
			continue
		}
		st, ok := byMed[e.MedicationID]
		if !ok {
			st = &doses.MedicationStats{
				MedicationID:   e.MedicationID,
				MedicationName: r.s.meds[e.MedicationID].Name,
			}
			byMed[e.MedicationID] = st
		}
		st.Total++
		if e.State == doses.StateTaken {
			st.Taken++
		}
	}

	out := make([]doses.MedicationStats, 0, len(byMed))
	for _, st := range byMed {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MedicationName != out[j].MedicationName {
			return out[i].MedicationName < out[j].MedicationName
		}
		return out[i].MedicationID < out[j].MedicationID
	})
	return out, nil
}

func (r *doseRepo) DeleteBefore(ctx context.Context, before time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := make([]doses.Event, 0, len(r.s.doses))
	for _, e := range r.s.doses {
		m, ok := r.s.meds[e.MedicationID]
		inProgress := ok && m.Active && m.Kind == medications.TreatmentTemporary
		if e.CreatedAt.Before(before) && !inProgress {
			continue
		}
		kept = append(kept, e)
	}
	n := len(r.s.doses) - len(kept)
	r.s.doses = kept
	return n, nil
}
