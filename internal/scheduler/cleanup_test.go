package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"medirecord/internal/adapters/storage/memory"
	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/notifications"
	"medirecord/internal/ports/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

func seedOldData(t *testing.T, st *memory.Store, now time.Time) {
	t.Helper()
	ctx := context.Background()

	meds := []medications.Medication{
		{ID: "m-done", UserID: "u1", Name: "Amoxicilina", Kind: medications.TreatmentTemporary, DurationDays: 7, Active: false},
		{ID: "m-running", UserID: "u1", Name: "Prednisona", Kind: medications.TreatmentTemporary, DurationDays: 200, Active: true},
		{ID: "m-chronic", UserID: "u1", Name: "Metformina", Kind: medications.TreatmentPermanent, Active: true},
	}
	for _, m := range meds {
		require.NoError(t, st.Medications().Create(ctx, m))
	}

	evs := []doses.Event{
		{ID: "d-old-done", MedicationID: "m-done", CreatedAt: now.Add(-day(120))},
		{ID: "d-old-running", MedicationID: "m-running", CreatedAt: now.Add(-day(120))},
		{ID: "d-old-chronic", MedicationID: "m-chronic", CreatedAt: now.Add(-day(91))},
		{ID: "d-recent", MedicationID: "m-chronic", CreatedAt: now.Add(-day(10))},
	}
	for _, e := range evs {
		e.UserID = "u1"
		e.State = doses.StateTaken
		require.NoError(t, st.Adherence().AppendDose(ctx, e))
	}

	appts := []appointments.Appointment{
		{ID: "a-old-attended", Attendance: appointments.AttendanceAttended, ScheduledAt: now.Add(-day(200))},
		{ID: "a-old-pending", Attendance: appointments.AttendancePending, ScheduledAt: now.Add(-day(200))},
		{ID: "a-recent-missed", Attendance: appointments.AttendanceMissed, ScheduledAt: now.Add(-day(30))},
	}
	for _, a := range appts {
		a.UserID = "u1"
		a.DoctorName = "Dr. Ruiz"
		require.NoError(t, st.Appointments().Create(ctx, a))
	}

	notifs := []notifications.Notification{
		{ID: "n-old-read", Read: true, SentAt: now.Add(-day(40))},
		{ID: "n-old-unread", Read: false, SentAt: now.Add(-day(40))},
		{ID: "n-recent-read", Read: true, SentAt: now.Add(-day(5))},
	}
	for _, n := range notifs {
		n.UserID = "u1"
		n.Kind = notify.KindInfo
		require.NoError(t, st.Notifications().Create(ctx, n))
	}
}

func TestCleanup_PrunesByRetention(t *testing.T) {
	st := memory.NewStore()
	now := time.Date(2026, 5, 4, 3, 0, 0, 0, time.UTC)
	seedOldData(t, st, now)
	ctx := context.Background()

	s := New(Config{Location: time.UTC}, nil, nil, nil, nil, nil, nil)
	s.EnableCleanup(Purgers{
		Doses:         st.Doses(),
		Appointments:  st.Appointments(),
		Notifications: st.Notifications(),
	})

	res, err := s.Cleanup(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, CleanupResult{Doses: 2, Appointments: 1, Notifications: 1}, res)

	left, err := st.Doses().ListByUser(ctx, "u1", doses.ListFilter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(left))
	for _, e := range left {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{"d-old-running", "d-recent"}, ids)

	_, err = st.Appointments().GetByID(ctx, "a-old-pending")
	assert.NoError(t, err)
	_, err = st.Appointments().GetByID(ctx, "a-old-attended")
	assert.Error(t, err)

	inbox, err := st.Notifications().ListByUser(ctx, "u1", false)
	require.NoError(t, err)
	assert.Len(t, inbox, 2)

	// segunda pasada: nada más para borrar
	res, err = s.Cleanup(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, CleanupResult{}, res)
}

func TestCleanup_CustomRetention(t *testing.T) {
	st := memory.NewStore()
	now := time.Date(2026, 5, 4, 3, 0, 0, 0, time.UTC)
	seedOldData(t, st, now)

	s := New(Config{Retention: Retention{Notifications: day(1)}}, nil, nil, nil, nil, nil, nil)
	s.EnableCleanup(Purgers{Notifications: st.Notifications()})

	res, err := s.Cleanup(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, CleanupResult{Notifications: 2}, res)
}

type failingPurger struct{}

func (failingPurger) DeleteReadBefore(context.Context, time.Time) (int, error) {
	return 0, errors.New("disk full")
}

func TestCleanup_ErrorDoesNotStopOthers(t *testing.T) {
	st := memory.NewStore()
	now := time.Date(2026, 5, 4, 3, 0, 0, 0, time.UTC)
	seedOldData(t, st, now)

	s := New(Config{}, nil, nil, nil, nil, nil, nil)
	s.EnableCleanup(Purgers{Doses: st.Doses(), Notifications: failingPurger{}})

	res, err := s.Cleanup(context.Background(), now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 2, res.Doses)
}

func TestCleanup_DisabledIsNoop(t *testing.T) {
	s := New(Config{}, nil, nil, nil, nil, nil, nil)
	res, err := s.Cleanup(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, CleanupResult{}, res)
}

func TestStart_InvalidCleanupSpec(t *testing.T) {
	s := New(Config{Spec: "@every 1h", CleanupSpec: "nope"}, nil, nil, nil, nil, nil, nil)
	s.EnableCleanup(Purgers{})
	assert.Error(t, s.Start())
}
