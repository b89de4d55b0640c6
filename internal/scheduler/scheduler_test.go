package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"medirecord/internal/adapters/storage/memory"
	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/ports/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	msgs []notify.Message
}

func (s *sink) Notify(_ context.Context, msg notify.Message) { s.msgs = append(s.msgs, msg) }

type dispatched struct{ n int }

func (d *dispatched) RemindersDispatched(n int) { d.n += n }

type failingReminders struct{}

func (failingReminders) ListActive(context.Context) ([]reminders.Reminder, error) {
	return nil, errors.New("db down")
}

// lunes 4 de mayo de 2026, 08:00 UTC
var monday8 = time.Date(2026, 5, 4, 8, 0, 30, 0, time.UTC)

func setup(t *testing.T) (*memory.Store, *appointments.Service) {
	t.Helper()
	st := memory.NewStore()
	ctx := context.Background()

	meds := []medications.Medication{
		{ID: "m-active", UserID: "u1", Name: "Ibuprofeno", Dose: "400mg", Active: true},
		{ID: "m-off", UserID: "u1", Name: "Omeprazol", Dose: "20mg", Active: false},
	}
	for _, m := range meds {
		require.NoError(t, st.Medications().Create(ctx, m))
	}

	rems := []reminders.Reminder{
		{ID: "r-now", MedicationID: "m-active", UserID: "u1", TimeOfDay: "08:00", Active: true},
		{ID: "r-later", MedicationID: "m-active", UserID: "u1", TimeOfDay: "20:00", Active: true},
		{ID: "r-tuesday", MedicationID: "m-active", UserID: "u1", TimeOfDay: "08:00", Days: []time.Weekday{time.Tuesday}, Active: true},
		{ID: "r-med-off", MedicationID: "m-off", UserID: "u1", TimeOfDay: "08:00", Active: true},
		{ID: "r-orphan", MedicationID: "missing", UserID: "u1", TimeOfDay: "08:00", Active: true},
	}
	for _, r := range rems {
		require.NoError(t, st.Reminders().Create(ctx, r))
	}

	svc := appointments.NewService(st.Appointments())
	_, err := svc.Create(ctx, "u2", appointments.CreateInput{
		DoctorName:  "Dra. Gómez",
		Specialty:   "Cardiología",
		ScheduledAt: monday8.Add(5 * time.Hour),
		Location:    "Hospital Central",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", appointments.CreateInput{
		DoctorName:  "Dr. Ruiz",
		ScheduledAt: monday8.Add(72 * time.Hour),
	})
	require.NoError(t, err)
	return st, svc
}

func TestDispatchDue(t *testing.T) {
	st, appts := setup(t)
	out := &sink{}
	m := &dispatched{}
	s := New(Config{Location: time.UTC}, st.Reminders(), st.Medications(), appts, out, m, nil)

	res, err := s.DispatchDue(context.Background(), monday8)
	require.NoError(t, err)
	assert.Equal(t, Result{Reminders: 1, Appointments: 1}, res)
	assert.Equal(t, 1, m.n)

	require.Len(t, out.msgs, 2)
	assert.Equal(t, "u1", out.msgs[0].UserID)
	assert.Equal(t, notify.KindReminder, out.msgs[0].Kind)
	assert.Equal(t, "Hora de tomar Ibuprofeno (400mg)", out.msgs[0].Body)

	assert.Equal(t, "u2", out.msgs[1].UserID)
	assert.Equal(t, "Cita con Dra. Gómez el 04/05/2026 13:00 (Cardiología) en Hospital Central", out.msgs[1].Body)

	// la cita ya quedó marcada: una segunda pasada solo repite el recordatorio
	res, err = s.DispatchDue(context.Background(), monday8)
	require.NoError(t, err)
	assert.Equal(t, Result{Reminders: 1}, res)
}

func TestDispatchDue_ListErrorStillRunsAppointments(t *testing.T) {
	st, appts := setup(t)
	out := &sink{}
	s := New(Config{Location: time.UTC}, failingReminders{}, st.Medications(), appts, out, nil, nil)

	res, err := s.DispatchDue(context.Background(), monday8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Equal(t, 1, res.Appointments)
}

func TestStartStop(t *testing.T) {
	s := New(Config{Spec: "@every 1h"}, nil, nil, nil, nil, nil, nil)
	require.NoError(t, s.Start())
	assert.Error(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
}

func TestStart_InvalidSpec(t *testing.T) {
	s := New(Config{Spec: "not a spec"}, nil, nil, nil, nil, nil, nil)
	assert.Error(t, s.Start())
}
