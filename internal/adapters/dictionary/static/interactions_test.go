package static

import (
	"context"
	"testing"

	"medirecord/internal/ports/drugs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractions_TableKeysAreKnownDrugs(t *testing.T) {
	for p := range interactions {
		assert.Contains(t, table, p.a)
		assert.Contains(t, table, p.b)
		assert.Less(t, p.a, p.b)
	}
}

func TestInteractions_FindsPairsInAnyOrder(t *testing.T) {
	d := New()

	got, err := d.Interactions(context.Background(), []string{" Metformina", "GLIBENCLAMIDA", "paracetamol", "metformina", "inexistente"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "glibenclamida", got[0].DrugA)
	assert.Equal(t, "metformina", got[0].DrugB)
	assert.Equal(t, drugs.SeverityMild, got[0].Severity)
	assert.Equal(t, "Monitorear niveles de glucosa con frecuencia.", got[0].Recommendation)
	assert.Equal(t, SourceName, got[0].Source)
}

func TestInteractions_SeveralPairs(t *testing.T) {
	d := New()

	got, err := d.Interactions(context.Background(), []string{"losartan", "ibuprofeno", "enalapril"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	bySeverity := map[drugs.Severity]int{}
	for _, it := range got {
		bySeverity[it.Severity]++
	}
	assert.Equal(t, 1, bySeverity[drugs.SeveritySevere])
	assert.Equal(t, 2, bySeverity[drugs.SeverityModerate])
}

func TestInteractions_IgnoresAccents(t *testing.T) {
	d := New()

	got, err := d.Interactions(context.Background(), []string{"Losartán", "Enalapril"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "losartan", got[0].DrugB)
}

func TestInteractions_NoneForSingleOrUnrelated(t *testing.T) {
	d := New()
	ctx := context.Background()

	got, err := d.Interactions(ctx, []string{"paracetamol"})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = d.Interactions(ctx, []string{"paracetamol", "loratadina"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
