package adherence

import (
	"testing"

	"medirecord/internal/domain/medications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressResponse_NeverShowsCompleteBeforeHundred(t *testing.T) {
	out := toProgressResponse(Progress{
		MedicationID:  "m1",
		Kind:          medications.TreatmentTemporary,
		Active:        true,
		TakenCount:    299,
		TotalExpected: 300,
		Percentage:    Percentage(299, 300),
	})

	require.NotNil(t, out.Percentage)
	assert.InDelta(t, 99.6, *out.Percentage, 1e-9)
	assert.Equal(t, "Progreso: 99%", out.Label)

	out = toProgressResponse(Progress{
		MedicationID:  "m1",
		Kind:          medications.TreatmentTemporary,
		TakenCount:    7,
		TotalExpected: 7,
		Percentage:    100,
	})
	assert.Equal(t, "Progreso: 100%", out.Label)
	assert.Equal(t, float64(100), *out.Percentage)
}

func TestProgressResponse_PermanentOmitsTotals(t *testing.T) {
	out := toProgressResponse(Progress{
		MedicationID: "m1",
		Kind:         medications.TreatmentPermanent,
		Active:       true,
		TakenCount:   12,
		IsPermanent:  true,
	})
	assert.Nil(t, out.Percentage)
	assert.Nil(t, out.TotalExpected)
	assert.Equal(t, "(Tratamiento permanente)", out.Label)
}
