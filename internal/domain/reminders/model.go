package reminders

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Reminder es una hora del día en la que se espera una toma. Se repite en
// los días de Days (vacío = todos los días) entre StartDate y EndDate.
type Reminder struct {
	ID           string
	MedicationID string
	UserID       string

	TimeOfDay string // HH:MM
	Days      []time.Weekday

	StartDate time.Time  // solo fecha
	EndDate   *time.Time // solo fecha, nil = sin fin

	Active     bool
	AlarmSound bool

	CreatedAt time.Time
}

// ParseTimeOfDay acepta HH:MM o HH:MM:SS y normaliza a HH:MM.
func ParseTimeOfDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("time_of_day %q must be HH:MM", s)
}

// NormalizeDays valida (0=domingo .. 6=sábado), quita duplicados y ordena.
func NormalizeDays(in []int) ([]time.Weekday, error) {
	seen := map[int]bool{}
	out := make([]time.Weekday, 0, len(in))
	for _, d := range in {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("day %d out of range 0..6", d)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, time.Weekday(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r Reminder) clock() (int, int) {
	t, err := time.Parse("15:04", r.TimeOfDay)
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}

// ScheduledOn devuelve la hora programada del recordatorio en el día
// calendario de day, en la zona horaria de day.
func (r Reminder) ScheduledOn(day time.Time) time.Time {
	h, m := r.clock()
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

// DueOn indica si el recordatorio aplica al día calendario de day.
func (r Reminder) DueOn(day time.Time) bool {
	if !r.Active {
		return false
	}
	d := day.Format(dateLayout)
	if !r.StartDate.IsZero() && d < r.StartDate.Format(dateLayout) {
		return false
	}
	if r.EndDate != nil && d > r.EndDate.Format(dateLayout) {
		return false
	}
	if len(r.Days) == 0 {
		return true
	}
	for _, wd := range r.Days {
		if wd == day.Weekday() {
			return true
		}
	}
	return false
}

// DaysCSV / ParseDaysCSV: formato de columna en los stores SQL ("1,3,5").
func DaysCSV(days []time.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, fmt.Sprintf("%d", int(d)))
	}
	return strings.Join(parts, ",")
}

func ParseDaysCSV(s string) []time.Weekday {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	out := make([]time.Weekday, 0, 7)
	for _, p := range strings.Split(s, ",") {
		var d int
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &d); err == nil && d >= 0 && d <= 6 {
			out = append(out, time.Weekday(d))
		}
	}
	return out
}

// DateOnly trunca a medianoche UTC del mismo día calendario.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
