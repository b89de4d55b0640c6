package medications

import (
	"context"
	"sort"
	"testing"
	"time"

	"medirecord/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Medication
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Medication{}}
}

func (r *testRepo) Create(ctx context.Context, m Medication) error {
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Medication, error) {
	m, ok := r.byID[id]
	if !ok {
		return Medication{}, apperr.NotFound("medication")
	}
	return m, nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID string, f ListFilter) ([]Medication, error) {
	out := make([]Medication, 0)
	for _, m := range r.byID {
		if m.UserID != userID || (f.ActiveOnly && !m.Active) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestCreate_TemporaryRequiresDuration(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-1", CreateInput{Name: "Amoxicilina", Dose: "500mg", Kind: TreatmentTemporary})
	assert.ErrorIs(t, err, ErrInvalidInput)

	m, err := svc.Create(ctx, "u-1", CreateInput{
		Name: " Amoxicilina ", Dose: "500mg", Kind: TreatmentTemporary, DurationDays: 7, Form: "CAPSULA",
	})
	require.NoError(t, err)
	assert.Equal(t, "Amoxicilina", m.Name)
	assert.Equal(t, FormCapsule, m.Form)
	assert.Equal(t, 7, m.DurationDays)
	assert.True(t, m.Active)
	assert.NotEmpty(t, m.ID)
}

func TestCreate_PermanentDropsDuration(t *testing.T) {
	svc, _ := newTestService()

	m, err := svc.Create(context.Background(), "u-1", CreateInput{
		Name: "Metformina", Dose: "850mg", Kind: TreatmentPermanent, DurationDays: 30,
	})
	require.NoError(t, err)
	assert.True(t, m.IsPermanent())
	assert.Equal(t, 0, m.DurationDays)
	assert.Equal(t, FormOther, m.Form)
}

func TestCreate_EmptyKindDefaultsToPermanent(t *testing.T) {
	svc, _ := newTestService()

	m, err := svc.Create(context.Background(), "u-1", CreateInput{Name: "Losartán", Dose: "50mg"})
	require.NoError(t, err)
	assert.Equal(t, TreatmentPermanent, m.Kind)
	assert.Equal(t, 0, m.DurationDays)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name   string
		userID string
		in     CreateInput
	}{
		{"missing user", "", CreateInput{Name: "x", Dose: "1"}},
		{"missing name", "u-1", CreateInput{Dose: "1"}},
		{"missing dose", "u-1", CreateInput{Name: "x"}},
		{"bad form", "u-1", CreateInput{Name: "x", Dose: "1", Form: "polvo"}},
		{"bad kind", "u-1", CreateInput{Name: "x", Dose: "1", Kind: "cronico"}},
		{"negative stock", "u-1", CreateInput{Name: "x", Dose: "1", StockCurrent: -1}},
		{"stock overflow", "u-1", CreateInput{Name: "x", Dose: "1", StockCurrent: 20, StockTotal: 10}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(ctx, c.userID, c.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_ForeignOwnerIsNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	m, err := svc.Create(ctx, "owner", CreateInput{Name: "Losartán", Dose: "50mg"})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, "someone-else", m.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetByID(ctx, "owner", m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
}

func TestLowStock(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	low, err := svc.Create(ctx, "u-1", CreateInput{Name: "A", Dose: "1", StockCurrent: 2, StockTotal: 10})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u-1", CreateInput{Name: "B", Dose: "1", StockCurrent: 5, StockTotal: 10})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u-1", CreateInput{Name: "C", Dose: "1"})
	require.NoError(t, err)

	inactive, err := svc.Create(ctx, "u-1", CreateInput{Name: "D", Dose: "1", StockCurrent: 1, StockTotal: 10})
	require.NoError(t, err)
	inactive.Active = false
	repo.byID[inactive.ID] = inactive

	items, err := svc.LowStock(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, low.ID, items[0].ID)
}
