package reminders

import (
	"context"
	"testing"
	"time"

	"medirecord/internal/domain/medications"
	"medirecord/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMeds map[string]medications.Medication

func (s stubMeds) GetByID(ctx context.Context, userID, id string) (medications.Medication, error) {
	m, ok := s[id]
	if !ok || m.UserID != userID {
		return medications.Medication{}, apperr.NotFound("medication")
	}
	return m, nil
}

type testRepo struct {
	items []Reminder
}

func (r *testRepo) Create(ctx context.Context, rem Reminder) error {
	r.items = append(r.items, rem)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Reminder, error) {
	for _, rem := range r.items {
		if rem.ID == id {
			return rem, nil
		}
	}
	return Reminder{}, apperr.NotFound("reminder")
}

func (r *testRepo) ListByMedication(ctx context.Context, medicationID string) ([]Reminder, error) {
	out := make([]Reminder, 0)
	for _, rem := range r.items {
		if rem.MedicationID == medicationID {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *testRepo) ListActiveByUser(ctx context.Context, userID string) ([]Reminder, error) {
	out := make([]Reminder, 0)
	for _, rem := range r.items {
		if rem.UserID == userID && rem.Active {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *testRepo) ListActive(ctx context.Context) ([]Reminder, error) {
	out := make([]Reminder, 0)
	for _, rem := range r.items {
		if rem.Active {
			out = append(out, rem)
		}
	}
	return out, nil
}

var fixedNow = time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC) // miércoles

func newTestService(meds stubMeds) (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo, meds)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestCreate_Defaults(t *testing.T) {
	svc, _ := newTestService(stubMeds{"m-1": {ID: "m-1", UserID: "u-1", Active: true}})

	rem, err := svc.Create(context.Background(), "u-1", "m-1", CreateInput{TimeOfDay: "08:00:00"})
	require.NoError(t, err)

	assert.Equal(t, "08:00", rem.TimeOfDay)
	assert.Equal(t, "u-1", rem.UserID)
	assert.Equal(t, "2025-03-05", rem.StartDate.Format(dateLayout))
	assert.Nil(t, rem.EndDate)
	assert.True(t, rem.Active)
	assert.Empty(t, rem.Days)
}

func TestCreate_Rejections(t *testing.T) {
	meds := stubMeds{
		"m-1":   {ID: "m-1", UserID: "u-1", Active: true},
		"m-off": {ID: "m-off", UserID: "u-1", Active: false},
	}
	svc, _ := newTestService(meds)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-1", "missing", CreateInput{TimeOfDay: "08:00"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, "u-2", "m-1", CreateInput{TimeOfDay: "08:00"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, "u-1", "m-off", CreateInput{TimeOfDay: "08:00"})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.Create(ctx, "u-1", "m-1", CreateInput{TimeOfDay: "8 de la mañana"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	_, err = svc.Create(ctx, "u-1", "m-1", CreateInput{TimeOfDay: "08:00", StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListToday_FiltersAndSorts(t *testing.T) {
	svc, _ := newTestService(stubMeds{"m-1": {ID: "m-1", UserID: "u-1", Active: true}})
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-1", "m-1", CreateInput{TimeOfDay: "20:00"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u-1", "m-1", CreateInput{TimeOfDay: "08:00", Days: []int{3}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u-1", "m-1", CreateInput{TimeOfDay: "12:00", Days: []int{1}})
	require.NoError(t, err)

	items, err := svc.ListToday(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "08:00", items[0].TimeOfDay)
	assert.Equal(t, "20:00", items[1].TimeOfDay)
}
