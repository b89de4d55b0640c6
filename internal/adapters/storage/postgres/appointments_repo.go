package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"medirecord/internal/domain/appointments"
	"medirecord/internal/platform/apperr"
)

const appointmentColumns = `
	id, user_id,
	doctor_name, specialty, scheduled_at, location, notes,
	reminder_sent, attendance,
	created_at, updated_at`

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.UserID,
		a.DoctorName,
		a.Specialty,
		a.ScheduledAt,
		a.Location,
		a.Notes,
		a.ReminderSent,
		string(a.Attendance),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			doctor_name = $2,
			specialty = $3,
			scheduled_at = $4,
			location = $5,
			notes = $6,
			reminder_sent = $7,
			attendance = $8,
			updated_at = $9
		WHERE id = $1
	`,
		a.ID,
		a.DoctorName,
		a.Specialty,
		a.ScheduledAt,
		a.Location,
		a.Notes,
		a.ReminderSent,
		string(a.Attendance),
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.NotFound("appointment")
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, apperr.NotFound("appointment")
	}

	a, err := scanAppointment(r.db.QueryRowContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, apperr.NotFound("appointment")
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) ListByUser(ctx context.Context, userID string, f appointments.ListFilter) ([]appointments.Appointment, error) {
	if f.From == nil {
		return r.list(ctx, `WHERE user_id = $1`, userID)
	}
	return r.list(ctx, `WHERE user_id = $1 AND scheduled_at >= $2`, userID, *f.From)
}

func (r *AppointmentsRepo) ListReminderDue(ctx context.Context, from, to time.Time) ([]appointments.Appointment, error) {
	return r.list(ctx, `WHERE NOT reminder_sent AND scheduled_at >= $1 AND scheduled_at < $2`, from, to)
}

func (r *AppointmentsRepo) list(ctx context.Context, where string, args ...any) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		`+where+`
		ORDER BY scheduled_at ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(s scanner) (appointments.Appointment, error) {
	var (
		a   appointments.Appointment
		att string
	)
	err := s.Scan(
		&a.ID,
		&a.UserID,
		&a.DoctorName,
		&a.Specialty,
		&a.ScheduledAt,
		&a.Location,
		&a.Notes,
		&a.ReminderSent,
		&att,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	a.Attendance = appointments.Attendance(att)
	return a, err
}

func (r *AppointmentsRepo) DeleteClosedBefore(ctx context.Context, before time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM appointments
		WHERE scheduled_at < $1 AND attendance <> 'pendiente'
	`, before)
	if err != nil {
		return 0, err
	}
	return affected(res)
}
