package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medirecord/internal/domain/medications"
	"medirecord/internal/platform/apperr"
)

const medicationColumns = `
	id, user_id,
	name, dose, form, route, instructions,
	stock_current, stock_total,
	treatment_kind, duration_days, active,
	created_at, updated_at`

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (`+medicationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		m.ID,
		m.UserID,
		m.Name,
		m.Dose,
		string(m.Form),
		m.Route,
		m.Instructions,
		m.StockCurrent,
		m.StockTotal,
		string(m.Kind),
		m.DurationDays,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	return getMedication(ctx, r.db, id)
}

func (r *MedicationsRepo) ListByUser(ctx context.Context, userID string, f medications.ListFilter) ([]medications.Medication, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return []medications.Medication{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE user_id = $1 AND ($2 = FALSE OR active)
		ORDER BY created_at ASC
	`, userID, f.ActiveOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func getMedication(ctx context.Context, q queryer, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, apperr.NotFound("medication")
	}

	row := q.QueryRowContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE id = $1
	`, id)

	m, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medications.Medication{}, apperr.NotFound("medication")
		}
		return medications.Medication{}, err
	}
	return m, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMedication(s scanner) (medications.Medication, error) {
	var (
		m          medications.Medication
		form, kind string
	)
	err := s.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.Dose,
		&form,
		&m.Route,
		&m.Instructions,
		&m.StockCurrent,
		&m.StockTotal,
		&kind,
		&m.DurationDays,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	m.Form = medications.Form(form)
	m.Kind = medications.TreatmentKind(kind)
	return m, err
}
