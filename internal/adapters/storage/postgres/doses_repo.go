package postgres

import (
	"context"
	"database/sql"
	"time"

	"medirecord/internal/domain/doses"
)

const doseColumns = `
	id, user_id, medication_id, reminder_id,
	state, scheduled_at, taken_at, notes, created_at`

type DosesRepo struct {
	db *sql.DB
}

func NewDosesRepo(db *sql.DB) *DosesRepo {
	return &DosesRepo{db: db}
}

func (r *DosesRepo) ListByUser(ctx context.Context, userID string, f doses.ListFilter) ([]doses.Event, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = doses.MaxLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+doseColumns+`
		FROM dose_events
		WHERE user_id = $1 AND ($2 = '' OR medication_id = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`, userID, f.MedicationID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doses.Event, 0)
	for rows.Next() {
		var (
			e       doses.Event
			state   string
			takenAt sql.NullTime
		)
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.MedicationID,
			&e.ReminderID,
			&state,
			&e.ScheduledAt,
			&takenAt,
			&e.Notes,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.State = doses.State(state)
		e.TakenAt = timePtr(takenAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *DosesRepo) StatsByUser(ctx context.Context, userID string) ([]doses.MedicationStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			d.medication_id,
			m.name,
			COUNT(*),
			COUNT(*) FILTER (WHERE d.state = 'tomado')
		FROM dose_events d
		JOIN medications m ON m.id = d.medication_id
		WHERE d.user_id = $1
		GROUP BY d.medication_id, m.name
		ORDER BY m.name ASC, d.medication_id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doses.MedicationStats, 0)
	for rows.Next() {
		var st doses.MedicationStats
		if err := rows.Scan(&st.MedicationID, &st.MedicationName, &st.Total, &st.Taken); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *DosesRepo) DeleteBefore(ctx context.Context, before time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM dose_events d
		WHERE d.created_at < $1
		  AND NOT EXISTS (
			SELECT 1 FROM medications m
			WHERE m.id = d.medication_id AND m.active AND m.treatment_kind = 'temporal'
		  )
	`, before)
	if err != nil {
		return 0, err
	}
	return affected(res)
}
