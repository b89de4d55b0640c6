package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("08:00:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00", got)

	got, err = ParseTimeOfDay(" 21:30 ")
	require.NoError(t, err)
	assert.Equal(t, "21:30", got)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("8am")
	assert.Error(t, err)
}

func TestNormalizeDays(t *testing.T) {
	days, err := NormalizeDays([]int{5, 1, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, days)

	_, err = NormalizeDays([]int{7})
	assert.Error(t, err)
}

func TestScheduledOn_UsesReminderClock(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	r := Reminder{TimeOfDay: "08:15"}

	wall := time.Date(2025, 3, 4, 22, 47, 13, 0, loc)
	got := r.ScheduledOn(wall)

	assert.Equal(t, time.Date(2025, 3, 4, 8, 15, 0, 0, loc), got)
}

func TestDueOn(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC) // lunes
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	r := Reminder{
		Active:    true,
		TimeOfDay: "08:00",
		Days:      []time.Weekday{time.Monday, time.Wednesday},
		StartDate: start,
		EndDate:   &end,
	}

	assert.True(t, r.DueOn(time.Date(2025, 3, 3, 7, 0, 0, 0, time.Local)))
	assert.False(t, r.DueOn(time.Date(2025, 3, 4, 7, 0, 0, 0, time.Local)), "tuesday")
	assert.True(t, r.DueOn(time.Date(2025, 3, 5, 7, 0, 0, 0, time.Local)))
	assert.False(t, r.DueOn(time.Date(2025, 3, 12, 7, 0, 0, 0, time.Local)), "after end date")
	assert.False(t, r.DueOn(time.Date(2025, 2, 24, 7, 0, 0, 0, time.Local)), "before start date")

	everyDay := Reminder{Active: true, StartDate: start}
	assert.True(t, everyDay.DueOn(time.Date(2025, 3, 8, 7, 0, 0, 0, time.Local)))

	inactive := everyDay
	inactive.Active = false
	assert.False(t, inactive.DueOn(time.Date(2025, 3, 8, 7, 0, 0, 0, time.Local)))
}

func TestDaysCSV_RoundTrip(t *testing.T) {
	days := []time.Weekday{time.Sunday, time.Saturday}
	assert.Equal(t, "0,6", DaysCSV(days))
	assert.Equal(t, days, ParseDaysCSV("0,6"))
	assert.Nil(t, ParseDaysCSV(""))
}
