package adherence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/platform/apperr"
	"medirecord/internal/platform/logger"
	"medirecord/internal/ports/notify"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrNotFound     = apperr.ErrNotFound
	ErrInvalidState = apperr.ErrInvalidState
)

type Metrics interface {
	DoseRecorded(state string)
	TreatmentCompleted()
}

// Tracker calcula el progreso de los tratamientos y aplica la baja
// automática de los temporales que llegan al 100%.
type Tracker struct {
	store    Store
	notifier notify.Notifier
	metrics  Metrics
	log      logger.Logger
	now      func() time.Time
}

func NewTracker(store Store, notifier notify.Notifier, metrics Metrics, log logger.Logger) *Tracker {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Tracker{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		log:      log.With(map[string]any{"component": "adherence"}),
		now:      time.Now,
	}
}

func (t *Tracker) SetClock(now func() time.Time) {
	if now != nil {
		t.now = now
	}
}

func (t *Tracker) ComputeProgress(ctx context.Context, userID, medicationID string) (Progress, error) {
	m, err := loadMedication(ctx, t.store, userID, medicationID)
	if err != nil {
		return Progress{}, err
	}
	return computeProgress(ctx, t.store, m)
}

func (t *Tracker) RecordDoseTaken(ctx context.Context, userID, reminderID string) (DoseOutcome, error) {
	return t.RecordDose(ctx, userID, reminderID, RecordDoseInput{State: doses.StateTaken})
}

// RecordDose agrega la toma y aplica la política de finalización en la
// misma transacción.
func (t *Tracker) RecordDose(ctx context.Context, userID, reminderID string, in RecordDoseInput) (DoseOutcome, error) {
	if strings.TrimSpace(userID) == "" {
		return DoseOutcome{}, ErrInvalidInput
	}
	state := in.State
	if state == "" {
		state = doses.StateTaken
	}
	switch state {
	case doses.StateTaken, doses.StateLate, doses.StateSkipped:
	default:
		return DoseOutcome{}, apperr.InvalidInput(fmt.Sprintf("state %q cannot be recorded", state))
	}

	now := t.now()
	var out DoseOutcome

	err := t.store.Atomic(ctx, func(tx Repository) error {
		rem, err := tx.GetReminder(ctx, reminderID)
		if err != nil {
			return err
		}
		if rem.UserID != userID {
			return apperr.NotFound("reminder")
		}
		m, err := loadMedication(ctx, tx, userID, rem.MedicationID)
		if err != nil {
			return err
		}
		if !m.Active {
			return apperr.InvalidState("medication is inactive")
		}
		if !rem.Active {
			return apperr.InvalidState("reminder is inactive")
		}

		e := doses.Event{
			ID:           uuid.NewString(),
			UserID:       userID,
			MedicationID: m.ID,
			ReminderID:   rem.ID,
			State:        state,
			ScheduledAt:  rem.ScheduledOn(now),
			Notes:        strings.TrimSpace(in.Notes),
			CreatedAt:    now,
		}
		if state != doses.StateSkipped {
			takenAt := now
			e.TakenAt = &takenAt
		}
		if err := tx.AppendDose(ctx, e); err != nil {
			return err
		}

		deactivated, p, err := enforce(ctx, tx, m, now)
		if err != nil {
			return err
		}

		out = DoseOutcome{
			Dose:           e,
			MedicationName: m.Name,
			Progress:       p,
			Deactivated:    deactivated,
		}
		return nil
	})
	if err != nil {
		return DoseOutcome{}, err
	}

	t.log.Info("dose recorded", map[string]any{
		"user_id":       userID,
		"medication_id": out.Dose.MedicationID,
		"reminder_id":   out.Dose.ReminderID,
		"state":         string(out.Dose.State),
		"deactivated":   out.Deactivated,
	})
	if t.metrics != nil {
		t.metrics.DoseRecorded(string(out.Dose.State))
	}
	t.notifier.Notify(ctx, notify.Message{
		UserID: userID,
		Kind:   notify.KindInfo,
		Title:  out.MedicationName,
		Body:   doseMessage(out.MedicationName, out.Dose.State),
	})
	if out.Deactivated {
		t.completed(ctx, userID, out.Dose.MedicationID, out.MedicationName)
	}

	return out, nil
}

// EnforceCompletionPolicy da de baja un tratamiento temporal completo.
// Sobre un medicamento ya inactivo no hace nada y devuelve false.
func (t *Tracker) EnforceCompletionPolicy(ctx context.Context, userID, medicationID string) (bool, error) {
	now := t.now()
	var (
		deactivated bool
		name        string
	)

	err := t.store.Atomic(ctx, func(tx Repository) error {
		m, err := loadMedication(ctx, tx, userID, medicationID)
		if err != nil {
			return err
		}
		name = m.Name
		deactivated, _, err = enforce(ctx, tx, m, now)
		return err
	})
	if err != nil {
		return false, err
	}

	if deactivated {
		t.completed(ctx, userID, medicationID, name)
	}
	return deactivated, nil
}

func (t *Tracker) completed(ctx context.Context, userID, medicationID, name string) {
	t.log.Info("treatment completed", map[string]any{
		"user_id":       userID,
		"medication_id": medicationID,
	})
	if t.metrics != nil {
		t.metrics.TreatmentCompleted()
	}
	t.notifier.Notify(ctx, notify.Message{
		UserID: userID,
		Kind:   notify.KindAlert,
		Title:  name,
		Body:   "Tratamiento completado al 100% - Medicamento dado de baja",
	})
}

func enforce(ctx context.Context, repo Repository, m medications.Medication, now time.Time) (bool, Progress, error) {
	if !m.Active {
		return false, Progress{MedicationID: m.ID, Kind: m.Kind, IsPermanent: m.IsPermanent()}, nil
	}

	p, err := computeProgress(ctx, repo, m)
	if err != nil {
		return false, Progress{}, err
	}
	if !p.Complete() {
		return false, p, nil
	}

	if err := repo.DeactivateMedication(ctx, m.ID, now); err != nil {
		return false, Progress{}, err
	}
	p.Active = false
	return true, p, nil
}

func computeProgress(ctx context.Context, repo Repository, m medications.Medication) (Progress, error) {
	p := Progress{
		MedicationID: m.ID,
		Kind:         m.Kind,
		Active:       m.Active,
	}

	taken, err := repo.CountDoses(ctx, m.ID, doses.StateTaken)
	if err != nil {
		return Progress{}, err
	}
	p.TakenCount = taken

	if m.IsPermanent() {
		p.IsPermanent = true
		return p, nil
	}

	active, err := repo.CountActiveReminders(ctx, m.ID)
	if err != nil {
		return Progress{}, err
	}
	if m.DurationDays > 0 {
		p.TotalExpected = active * m.DurationDays
	}
	p.Percentage = Percentage(taken, p.TotalExpected)
	return p, nil
}

// loadMedication resuelve el medicamento del usuario; uno ajeno es NotFound.
func loadMedication(ctx context.Context, repo Repository, userID, medicationID string) (medications.Medication, error) {
	m, err := repo.GetMedication(ctx, medicationID)
	if err != nil {
		return medications.Medication{}, err
	}
	if m.UserID != userID {
		return medications.Medication{}, apperr.NotFound("medication")
	}
	return m, nil
}

func doseMessage(name string, s doses.State) string {
	switch s {
	case doses.StateLate:
		return name + " marcado como tomado con retraso"
	case doses.StateSkipped:
		return name + " marcado como omitido"
	default:
		return name + " marcado como tomado"
	}
}
