package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medirecord/internal/domain/reminders"
	"medirecord/internal/platform/apperr"
)

const reminderColumns = `
	id, medication_id, user_id,
	time_of_day, days_of_week,
	start_date, end_date,
	active, alarm_sound, created_at`

type RemindersRepo struct {
	db *sql.DB
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

func (r *RemindersRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (`+reminderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		rem.ID,
		rem.MedicationID,
		rem.UserID,
		rem.TimeOfDay,
		reminders.DaysCSV(rem.Days),
		reminders.DateOnly(rem.StartDate),
		nullTime(rem.EndDate),
		rem.Active,
		rem.AlarmSound,
		rem.CreatedAt,
	)
	return err
}

func (r *RemindersRepo) GetByID(ctx context.Context, id string) (reminders.Reminder, error) {
	return getReminder(ctx, r.db, id)
}

func (r *RemindersRepo) ListByMedication(ctx context.Context, medicationID string) ([]reminders.Reminder, error) {
	return r.list(ctx, `WHERE medication_id = $1`, medicationID)
}

func (r *RemindersRepo) ListActiveByUser(ctx context.Context, userID string) ([]reminders.Reminder, error) {
	return r.list(ctx, `WHERE active AND user_id = $1`, userID)
}

func (r *RemindersRepo) ListActive(ctx context.Context) ([]reminders.Reminder, error) {
	return r.list(ctx, `WHERE active`)
}

func (r *RemindersRepo) list(ctx context.Context, where string, args ...any) ([]reminders.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reminderColumns+`
		FROM reminders
		`+where+`
		ORDER BY time_of_day ASC, created_at ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reminders.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

func getReminder(ctx context.Context, q queryer, id string) (reminders.Reminder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reminders.Reminder{}, apperr.NotFound("reminder")
	}

	rem, err := scanReminder(q.QueryRowContext(ctx, `
		SELECT `+reminderColumns+`
		FROM reminders
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reminders.Reminder{}, apperr.NotFound("reminder")
		}
		return reminders.Reminder{}, err
	}
	return rem, nil
}

func scanReminder(s scanner) (reminders.Reminder, error) {
	var (
		rem  reminders.Reminder
		days string
		end  sql.NullTime
	)
	if err := s.Scan(
		&rem.ID,
		&rem.MedicationID,
		&rem.UserID,
		&rem.TimeOfDay,
		&days,
		&rem.StartDate,
		&end,
		&rem.Active,
		&rem.AlarmSound,
		&rem.CreatedAt,
	); err != nil {
		return reminders.Reminder{}, err
	}

	rem.Days = reminders.ParseDaysCSV(days)
	// ojo: DATE llega como medianoche UTC
	rem.StartDate = reminders.DateOnly(rem.StartDate)
	if end.Valid {
		d := reminders.DateOnly(end.Time)
		rem.EndDate = &d
	}
	return rem, nil
}
