package static

import (
	"context"
	"sort"
	"testing"

	"medirecord/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_ExactCaseInsensitive(t *testing.T) {
	d := New()

	info, err := d.Lookup(context.Background(), "  PARACETAMOL ")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", info.Name)
	assert.True(t, info.OverTheCounter)
	assert.Equal(t, "Acetaminofén", info.GenericName)
	assert.Equal(t, SourceName, info.Source)

	_, err = d.Lookup(context.Background(), "paracet")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSuggest_BothDirections(t *testing.T) {
	d := New()
	ctx := context.Background()

	got, err := d.Suggest(ctx, "pril", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"captopril", "enalapril"}, got)

	got, err = d.Suggest(ctx, "omeprazol 20mg", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"omeprazol"}, got)

	got, err = d.Suggest(ctx, "a", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = d.Suggest(ctx, "   ", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNames_Sorted(t *testing.T) {
	names := New().Names()
	assert.Len(t, names, len(table))
	assert.True(t, sort.StringsAreSorted(names))
}
