package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"medirecord/internal/domain/adherence"
	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/notifications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/platform/apperr"
	"medirecord/internal/ports/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seed(t *testing.T, s *Store) (medications.Medication, reminders.Reminder) {
	t.Helper()
	ctx := context.Background()

	m := medications.Medication{
		ID: "med-1", UserID: "u1", Name: "Amoxicilina", Dose: "500mg",
		Form: medications.FormCapsule, Kind: medications.TreatmentTemporary, DurationDays: 7,
		Active: true, CreatedAt: t0, UpdatedAt: t0,
	}
	require.NoError(t, s.Medications().Create(ctx, m))

	end := t0.AddDate(0, 0, 6)
	r := reminders.Reminder{
		ID: "rem-1", MedicationID: m.ID, UserID: "u1", TimeOfDay: "08:00",
		Days:      []time.Weekday{time.Monday, time.Wednesday},
		StartDate: reminders.DateOnly(t0), EndDate: &end,
		Active: true, AlarmSound: true, CreatedAt: t0,
	}
	require.NoError(t, s.Reminders().Create(ctx, r))
	return m, r
}

func TestMedicationsAndReminders_RoundTrip(t *testing.T) {
	s := openTest(t)
	m, r := seed(t, s)
	ctx := context.Background()

	got, err := s.Medications().GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Name, got.Name)
	assert.Equal(t, medications.TreatmentTemporary, got.Kind)
	assert.Equal(t, medications.FormCapsule, got.Form)
	assert.True(t, got.CreatedAt.Equal(t0))

	rem, err := s.Reminders().GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, rem.Days)
	require.NotNil(t, rem.EndDate)
	assert.Equal(t, "2026-03-08", rem.EndDate.Format("2006-01-02"))
	assert.True(t, rem.AlarmSound)

	_, err = s.Medications().GetByID(ctx, "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := s.Medications().ListByUser(ctx, "u1", medications.ListFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAtomic_RollbackOnError(t *testing.T) {
	s := openTest(t)
	m, r := seed(t, s)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Adherence().Atomic(ctx, func(tx adherence.Repository) error {
		require.NoError(t, tx.AppendDose(ctx, doses.Event{
			ID: "d1", UserID: "u1", MedicationID: m.ID, ReminderID: r.ID,
			State: doses.StateTaken, ScheduledAt: t0, CreatedAt: t0,
		}))
		require.NoError(t, tx.DeactivateMedication(ctx, m.ID, t0))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Medications().GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	n, err := s.Adherence().CountDoses(ctx, m.ID, doses.StateTaken)
	require.NoError(t, err)
	assert.Zero(t, n)

	active, err := s.Adherence().CountActiveReminders(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestTracker_CompletesOnSQLite(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	m := medications.Medication{
		ID: "med-2", UserID: "u1", Name: "Ibuprofeno", Dose: "400mg",
		Kind: medications.TreatmentTemporary, DurationDays: 2, Active: true,
		CreatedAt: t0, UpdatedAt: t0,
	}
	require.NoError(t, s.Medications().Create(ctx, m))
	r := reminders.Reminder{ID: "rem-2", MedicationID: m.ID, UserID: "u1", TimeOfDay: "09:00", Active: true, CreatedAt: t0}
	require.NoError(t, s.Reminders().Create(ctx, r))

	tr := adherence.NewTracker(s.Adherence(), nil, nil, nil)
	tr.SetClock(func() time.Time { return t0 })

	out, err := tr.RecordDoseTaken(ctx, "u1", r.ID)
	require.NoError(t, err)
	assert.False(t, out.Deactivated)
	assert.Equal(t, float64(50), out.Progress.Percentage)

	out, err = tr.RecordDoseTaken(ctx, "u1", r.ID)
	require.NoError(t, err)
	assert.True(t, out.Deactivated)

	rem, err := s.Reminders().GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, rem.Active)

	_, err = tr.RecordDoseTaken(ctx, "u1", r.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)

	stats, err := s.Doses().StatsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Ibuprofeno", stats[0].MedicationName)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 2, stats[0].Taken)

	hist, err := s.Doses().ListByUser(ctx, "u1", doses.ListFilter{MedicationID: m.ID, Limit: 1})
	require.NoError(t, err)
	require.Len(t, hist, 1)
	require.NotNil(t, hist[0].TakenAt)
	assert.Equal(t, "09:00", hist[0].ScheduledAt.Format("15:04"))
}

func TestAppointments_WindowAndUpdate(t *testing.T) {
	s := openTest(t)
	repo := s.Appointments()
	ctx := context.Background()

	mk := func(id string, at time.Time) {
		require.NoError(t, repo.Create(ctx, appointments.Appointment{
			ID: id, UserID: "u1", DoctorName: "Dr. Ruiz", ScheduledAt: at,
			Attendance: appointments.AttendancePending, CreatedAt: t0, UpdatedAt: t0,
		}))
	}
	mk("soon", t0.Add(3*time.Hour))
	mk("far", t0.Add(72*time.Hour))

	due, err := repo.ListReminderDue(ctx, t0, t0.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, due, 1)

	a := due[0]
	a.ReminderSent = true
	a.Attendance = appointments.AttendanceAttended
	require.NoError(t, repo.Update(ctx, a))

	due, err = repo.ListReminderDue(ctx, t0, t0.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, due)

	got, err := repo.GetByID(ctx, "soon")
	require.NoError(t, err)
	assert.Equal(t, appointments.AttendanceAttended, got.Attendance)

	assert.ErrorIs(t, repo.Update(ctx, appointments.Appointment{ID: "ghost"}), apperr.ErrNotFound)
}

func TestNotifications(t *testing.T) {
	s := openTest(t)
	repo := s.Notifications()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, notifications.Notification{ID: "n1", UserID: "u1", Kind: notify.KindAlert, SentAt: t0}))
	require.NoError(t, repo.Create(ctx, notifications.Notification{ID: "n2", UserID: "u1", Kind: notify.KindInfo, SentAt: t0.Add(time.Minute)}))
	require.NoError(t, repo.MarkRead(ctx, "n2"))

	unread, err := repo.ListByUser(ctx, "u1", true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, notify.KindAlert, unread[0].Kind)

	all, err := repo.ListByUser(ctx, "u1", false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "n2", all[0].ID)

	assert.ErrorIs(t, repo.MarkRead(ctx, "nope"), apperr.ErrNotFound)
}

func TestPurge_RespectsRetentionRules(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	m, r := seed(t, s)
	old := t0.AddDate(0, 0, -100)

	done := medications.Medication{
		ID: "med-done", UserID: "u1", Name: "Omeprazol", Dose: "20mg",
		Kind: medications.TreatmentPermanent, Active: true, CreatedAt: old, UpdatedAt: old,
	}
	require.NoError(t, s.Medications().Create(ctx, done))

	for _, e := range []doses.Event{
		{ID: "d-running", UserID: "u1", MedicationID: m.ID, ReminderID: r.ID, State: doses.StateTaken, ScheduledAt: old, CreatedAt: old},
		{ID: "d-chronic", UserID: "u1", MedicationID: done.ID, State: doses.StateTaken, ScheduledAt: old, CreatedAt: old},
		{ID: "d-new", UserID: "u1", MedicationID: done.ID, State: doses.StateTaken, ScheduledAt: t0, CreatedAt: t0},
	} {
		require.NoError(t, s.Adherence().AppendDose(ctx, e))
	}

	n, err := s.Doses().DeleteBefore(ctx, t0.AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	left, err := s.Doses().ListByUser(ctx, "u1", doses.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, left, 2)

	for _, a := range []appointments.Appointment{
		{ID: "a-closed", UserID: "u1", DoctorName: "Dr. Ruiz", ScheduledAt: old, Attendance: appointments.AttendanceMissed, CreatedAt: old, UpdatedAt: old},
		{ID: "a-open", UserID: "u1", DoctorName: "Dr. Ruiz", ScheduledAt: old, Attendance: appointments.AttendancePending, CreatedAt: old, UpdatedAt: old},
	} {
		require.NoError(t, s.Appointments().Create(ctx, a))
	}
	n, err = s.Appointments().DeleteClosedBefore(ctx, t0.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = s.Appointments().GetByID(ctx, "a-open")
	assert.NoError(t, err)

	require.NoError(t, s.Notifications().Create(ctx, notifications.Notification{ID: "n-read", UserID: "u1", Kind: notify.KindInfo, Read: true, SentAt: old}))
	require.NoError(t, s.Notifications().Create(ctx, notifications.Notification{ID: "n-unread", UserID: "u1", Kind: notify.KindInfo, SentAt: old}))
	n, err = s.Notifications().DeleteReadBefore(ctx, t0.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = s.Notifications().GetByID(ctx, "n-unread")
	assert.NoError(t, err)
}
