package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"medirecord/internal/domain/adherence"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/platform/apperr"
)

// AdherenceStore implementa adherence.Store. Fuera de Atomic cada llamada
// va directo al pool; dentro, todas comparten el *sql.Tx.
type AdherenceStore struct {
	db *sql.DB
	adherenceRepo
}

var _ adherence.Store = (*AdherenceStore)(nil)

func NewAdherenceStore(db *sql.DB) *AdherenceStore {
	return &AdherenceStore{db: db, adherenceRepo: adherenceRepo{q: db}}
}

func (s *AdherenceStore) Atomic(ctx context.Context, fn func(tx adherence.Repository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(adherenceRepo{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type adherenceRepo struct {
	q queryer
}

func (r adherenceRepo) GetMedication(ctx context.Context, id string) (medications.Medication, error) {
	return getMedication(ctx, r.q, id)
}

func (r adherenceRepo) GetReminder(ctx context.Context, id string) (reminders.Reminder, error) {
	return getReminder(ctx, r.q, id)
}

func (r adherenceRepo) CountActiveReminders(ctx context.Context, medicationID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reminders WHERE medication_id = $1 AND active
	`, medicationID).Scan(&n)
	return n, err
}

func (r adherenceRepo) CountDoses(ctx context.Context, medicationID string, state doses.State) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM dose_events WHERE medication_id = $1 AND state = $2
	`, medicationID, string(state)).Scan(&n)
	return n, err
}

func (r adherenceRepo) AppendDose(ctx context.Context, e doses.Event) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO dose_events (`+doseColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		e.ID,
		e.UserID,
		e.MedicationID,
		e.ReminderID,
		string(e.State),
		e.ScheduledAt,
		nullTime(e.TakenAt),
		e.Notes,
		e.CreatedAt,
	)
	return err
}

func (r adherenceRepo) DeactivateMedication(ctx context.Context, medicationID string, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE medications SET active = FALSE, updated_at = $2 WHERE id = $1
	`, medicationID, at)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("medication")
	}

	_, err = r.q.ExecContext(ctx, `
		UPDATE reminders SET active = FALSE WHERE medication_id = $1 AND active
	`, medicationID)
	return err
}
