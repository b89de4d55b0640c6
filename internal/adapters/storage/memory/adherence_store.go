package memory

import (
	"context"
	"errors"
	"maps"
	"strings"
	"time"

	"medirecord/internal/domain/adherence"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/platform/apperr"
)

// Adherence devuelve la vista transaccional que usa el tracker.
func (s *Store) Adherence() adherence.Store { return &adherenceStore{s: s} }

type adherenceStore struct {
	s *Store
}

var _ adherence.Store = (*adherenceStore)(nil)

// Atomic toma el lock de escritura durante todo fn y, si fn falla,
// restaura medicamentos, recordatorios y tomas al estado previo.
func (a *adherenceStore) Atomic(ctx context.Context, fn func(tx adherence.Repository) error) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	meds := maps.Clone(a.s.meds)
	rems := maps.Clone(a.s.rems)
	n := len(a.s.doses)

	if err := fn(adherenceTx{s: a.s}); err != nil {
		a.s.meds = meds
		a.s.rems = rems
		a.s.doses = a.s.doses[:n]
		return err
	}
	return nil
}

func (a *adherenceStore) GetMedication(ctx context.Context, id string) (medications.Medication, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	return adherenceTx{s: a.s}.GetMedication(ctx, id)
}

func (a *adherenceStore) GetReminder(ctx context.Context, id string) (reminders.Reminder, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	return adherenceTx{s: a.s}.GetReminder(ctx, id)
}

func (a *adherenceStore) CountActiveReminders(ctx context.Context, medicationID string) (int, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	return adherenceTx{s: a.s}.CountActiveReminders(ctx, medicationID)
}

func (a *adherenceStore) CountDoses(ctx context.Context, medicationID string, state doses.State) (int, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	return adherenceTx{s: a.s}.CountDoses(ctx, medicationID, state)
}

func (a *adherenceStore) AppendDose(ctx context.Context, e doses.Event) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return adherenceTx{s: a.s}.AppendDose(ctx, e)
}

func (a *adherenceStore) DeactivateMedication(ctx context.Context, medicationID string, at time.Time) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return adherenceTx{s: a.s}.DeactivateMedication(ctx, medicationID, at)
}

// adherenceTx opera sin lock: quien lo usa ya lo tiene tomado.
type adherenceTx struct {
	s *Store
}

func (t adherenceTx) GetMedication(_ context.Context, id string) (medications.Medication, error) {
	m, ok := t.s.meds[id]
	if !ok {
		return medications.Medication{}, apperr.NotFound("medication")
	}
	return m, nil
}

func (t adherenceTx) GetReminder(_ context.Context, id string) (reminders.Reminder, error) {
	r, ok := t.s.rems[id]
	if !ok {
		return reminders.Reminder{}, apperr.NotFound("reminder")
	}
	return copyReminder(r), nil
}

func (t adherenceTx) CountActiveReminders(_ context.Context, medicationID string) (int, error) {
	n := 0
	for _, r := range t.s.rems {
		if r.MedicationID == medicationID && r.Active {
			n++
		}
	}
	return n, nil
}

func (t adherenceTx) CountDoses(_ context.Context, medicationID string, state doses.State) (int, error) {
	n := 0
	for _, e := range t.s.doses {
		if e.MedicationID == medicationID && e.State == state {
			n++
		}
	}
	return n, nil
}

func (t adherenceTx) AppendDose(_ context.Context, e doses.Event) error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("dose id required")
	}
	if _, ok := t.s.meds[e.MedicationID]; !ok {
		return apperr.NotFound("medication")
	}
	t.s.doses = append(t.s.doses, e)
	return nil
}

func (t adherenceTx) DeactivateMedication(_ context.Context, medicationID string, at time.Time) error {
	m, ok := t.s.meds[medicationID]
	if !ok {
		return apperr.NotFound("medication")
	}
	m.Active = false
	m.UpdatedAt = at
	t.s.meds[medicationID] = m

	for id, r := range t.s.rems {
		if r.MedicationID == medicationID && r.Active {
			r.Active = false
			t.s.rems[id] = r
		}
	}
	return nil
}
