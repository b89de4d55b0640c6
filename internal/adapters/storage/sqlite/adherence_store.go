package sqlite

import (
	"context"
	"time"

	"medirecord/internal/domain/adherence"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/platform/apperr"

	"gorm.io/gorm"
)

// Adherence devuelve la vista transaccional que usa el tracker.
func (s *Store) Adherence() adherence.Store { return &adherenceStore{adherenceRepo{db: s.db}} }

type adherenceStore struct {
	adherenceRepo
}

var _ adherence.Store = (*adherenceStore)(nil)

func (s *adherenceStore) Atomic(ctx context.Context, fn func(tx adherence.Repository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(adherenceRepo{db: tx})
	})
}

type adherenceRepo struct {
	db *gorm.DB
}

func (r adherenceRepo) GetMedication(ctx context.Context, id string) (medications.Medication, error) {
	return getMedication(r.db.WithContext(ctx), id)
}

func (r adherenceRepo) GetReminder(ctx context.Context, id string) (reminders.Reminder, error) {
	return getReminder(r.db.WithContext(ctx), id)
}

func (r adherenceRepo) CountActiveReminders(ctx context.Context, medicationID string) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&reminderRow{}).
		Where("medication_id = ? AND active = ?", medicationID, true).
		Count(&n).Error
	return int(n), err
}

func (r adherenceRepo) CountDoses(ctx context.Context, medicationID string, state doses.State) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&doseRow{}).
		Where("medication_id = ? AND state = ?", medicationID, string(state)).
		Count(&n).Error
	return int(n), err
}

func (r adherenceRepo) AppendDose(ctx context.Context, e doses.Event) error {
	row := toDoseRow(e)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r adherenceRepo) DeactivateMedication(ctx context.Context, medicationID string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&medicationRow{}).
		Where("id = ?", medicationID).
		UpdateColumns(map[string]any{"active": false, "updated_at": at.UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("medication")
	}

	return r.db.WithContext(ctx).
		Model(&reminderRow{}).
		Where("medication_id = ? AND active = ?", medicationID, true).
		UpdateColumn("active", false).Error
}
