package doses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	lastFilter ListFilter
	stats      []MedicationStats
}

func (r *testRepo) ListByUser(ctx context.Context, userID string, f ListFilter) ([]Event, error) {
	r.lastFilter = f
	return nil, nil
}

func (r *testRepo) StatsByUser(ctx context.Context, userID string) ([]MedicationStats, error) {
	return r.stats, nil
}

func (r *testRepo) DeleteBefore(ctx context.Context, before time.Time) (int, error) {
	return 0, nil
}

func TestCompliancePercent(t *testing.T) {
	assert.Equal(t, 0.0, CompliancePercent(3, 0))
	assert.Equal(t, 100.0, CompliancePercent(4, 4))
	assert.Equal(t, 66.67, CompliancePercent(2, 3))
	assert.Equal(t, 33.33, CompliancePercent(1, 3))
}

func TestList_ClampsLimit(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.List(ctx, "u-1", ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, repo.lastFilter.Limit)

	_, err = svc.List(ctx, "u-1", ListFilter{Limit: 10_000, MedicationID: " m-1 "})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, repo.lastFilter.Limit)
	assert.Equal(t, "m-1", repo.lastFilter.MedicationID)

	_, err = svc.List(ctx, "", ListFilter{})
	assert.Error(t, err)
}

func TestStats_ComputesPercentage(t *testing.T) {
	repo := &testRepo{stats: []MedicationStats{
		{MedicationID: "m-1", MedicationName: "Ibuprofeno", Total: 3, Taken: 2},
		{MedicationID: "m-2", MedicationName: "Omeprazol", Total: 5, Taken: 5},
	}}
	svc := NewService(repo)

	items, err := svc.Stats(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 66.67, items[0].Percentage)
	assert.Equal(t, 100.0, items[1].Percentage)
}
