package sqlite

import (
	"context"
	"time"

	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/notifications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/platform/apperr"

	"gorm.io/gorm"
)

type medicationRepo struct {
	db *gorm.DB
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) error {
	row := toMedicationRow(m)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	return getMedication(r.db.WithContext(ctx), id)
}

func (r *medicationRepo) ListByUser(ctx context.Context, userID string, f medications.ListFilter) ([]medications.Medication, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if f.ActiveOnly {
		q = q.Where("active = ?", true)
	}

	var rows []medicationRow
	if err := q.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]medications.Medication, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func getMedication(db *gorm.DB, id string) (medications.Medication, error) {
	var row medicationRow
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		return medications.Medication{}, notFound(err, "medication")
	}
	return row.toDomain(), nil
}

type reminderRepo struct {
	db *gorm.DB
}

func (r *reminderRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	row := toReminderRow(rem)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *reminderRepo) GetByID(ctx context.Context, id string) (reminders.Reminder, error) {
	return getReminder(r.db.WithContext(ctx), id)
}

func (r *reminderRepo) ListByMedication(ctx context.Context, medicationID string) ([]reminders.Reminder, error) {
	return r.list(r.db.WithContext(ctx).Where("medication_id = ?", medicationID))
}

func (r *reminderRepo) ListActiveByUser(ctx context.Context, userID string) ([]reminders.Reminder, error) {
	return r.list(r.db.WithContext(ctx).Where("active = ? AND user_id = ?", true, userID))
}

func (r *reminderRepo) ListActive(ctx context.Context) ([]reminders.Reminder, error) {
	return r.list(r.db.WithContext(ctx).Where("active = ?", true))
}

func (r *reminderRepo) list(q *gorm.DB) ([]reminders.Reminder, error) {
	var rows []reminderRow
	if err := q.Order("time_of_day ASC, created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]reminders.Reminder, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func getReminder(db *gorm.DB, id string) (reminders.Reminder, error) {
	var row reminderRow
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		return reminders.Reminder{}, notFound(err, "reminder")
	}
	return row.toDomain(), nil
}

type doseRepo struct {
	db *gorm.DB
}

func (r *doseRepo) ListByUser(ctx context.Context, userID string, f doses.ListFilter) ([]doses.Event, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if f.MedicationID != "" {
		q = q.Where("medication_id = ?", f.MedicationID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var rows []doseRow
	if err := q.Order("created_at DESC, rowid DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]doses.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type statsRow struct {
	MedicationID   string
	MedicationName string
	Total          int
	Taken          int
}

func (r *doseRepo) StatsByUser(ctx context.Context, userID string) ([]doses.MedicationStats, error) {
	var rows []statsRow
	err := r.db.WithContext(ctx).
		Table("dose_events AS d").
		Select(`d.medication_id AS medication_id,
			m.name AS medication_name,
			COUNT(*) AS total,
			SUM(CASE WHEN d.state = ? THEN 1 ELSE 0 END) AS taken`, string(doses.StateTaken)).
		Joins("JOIN medications AS m ON m.id = d.medication_id").
		Where("d.user_id = ?", userID).
		Group("d.medication_id, m.name").
		Order("m.name ASC, d.medication_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]doses.MedicationStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, doses.MedicationStats{
			MedicationID:   row.MedicationID,
			MedicationName: row.MedicationName,
			Total:          row.Total,
			Taken:          row.Taken,
		})
	}
	return out, nil
}

func (r *doseRepo) DeleteBefore(ctx context.Context, before time.Time) (int, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", before.UTC()).
		Where(`NOT EXISTS (
			SELECT 1 FROM medications AS m
			WHERE m.id = dose_events.medication_id AND m.active = ? AND m.treatment_kind = ?)`,
			true, string(medications.TreatmentTemporary)).
		Delete(&doseRow{})
	return int(res.RowsAffected), res.Error
}

type appointmentRepo struct {
	db *gorm.DB
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	row := toAppointmentRow(a)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	row := toAppointmentRow(a)
	res := r.db.WithContext(ctx).
		Model(&appointmentRow{}).
		Where("id = ?", a.ID).
		UpdateColumns(map[string]any{
			"doctor_name":   row.DoctorName,
			"specialty":     row.Specialty,
			"scheduled_at":  row.ScheduledAt,
			"location":      row.Location,
			"notes":         row.Notes,
			"reminder_sent": row.ReminderSent,
			"attendance":    row.Attendance,
			"updated_at":    row.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("appointment")
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	var row appointmentRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return appointments.Appointment{}, notFound(err, "appointment")
	}
	return row.toDomain(), nil
}

func (r *appointmentRepo) ListByUser(ctx context.Context, userID string, f appointments.ListFilter) ([]appointments.Appointment, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if f.From != nil {
		q = q.Where("scheduled_at >= ?", f.From.UTC())
	}
	return r.list(q)
}

func (r *appointmentRepo) ListReminderDue(ctx context.Context, from, to time.Time) ([]appointments.Appointment, error) {
	return r.list(r.db.WithContext(ctx).
		Where("reminder_sent = ? AND scheduled_at >= ? AND scheduled_at < ?", false, from.UTC(), to.UTC()))
}

func (r *appointmentRepo) list(q *gorm.DB) ([]appointments.Appointment, error) {
	var rows []appointmentRow
	if err := q.Order("scheduled_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]appointments.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *appointmentRepo) DeleteClosedBefore(ctx context.Context, before time.Time) (int, error) {
	res := r.db.WithContext(ctx).
		Where("scheduled_at < ? AND attendance <> ?", before.UTC(), string(appointments.AttendancePending)).
		Delete(&appointmentRow{})
	return int(res.RowsAffected), res.Error
}

type notificationRepo struct {
	db *gorm.DB
}

func (r *notificationRepo) Create(ctx context.Context, n notifications.Notification) error {
	row := toNotificationRow(n)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *notificationRepo) GetByID(ctx context.Context, id string) (notifications.Notification, error) {
	var row notificationRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return notifications.Notification{}, notFound(err, "notification")
	}
	return row.toDomain(), nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]notifications.Notification, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	var rows []notificationRow
	if err := q.Order("sent_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]notifications.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&notificationRow{}).
		Where("id = ?", id).
		UpdateColumn("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("notification")
	}
	return nil
}

func (r *notificationRepo) DeleteReadBefore(ctx context.Context, before time.Time) (int, error) {
	res := r.db.WithContext(ctx).
		Where("read = ? AND sent_at < ?", true, before.UTC()).
		Delete(&notificationRow{})
	return int(res.RowsAffected), res.Error
}
