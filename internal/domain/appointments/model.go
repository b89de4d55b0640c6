package appointments

import "time"

type Attendance string

const (
	AttendancePending  Attendance = "pendiente"
	AttendanceAttended Attendance = "asistio"
	AttendanceMissed   Attendance = "no_asistio"
)

func (a Attendance) Valid() bool {
	switch a {
	case AttendancePending, AttendanceAttended, AttendanceMissed:
		return true
	}
	return false
}

// Appointment es una cita médica.
type Appointment struct {
	ID     string
	UserID string

	DoctorName  string
	Specialty   string
	ScheduledAt time.Time
	Location    string
	Notes       string

	ReminderSent bool
	Attendance   Attendance

	CreatedAt time.Time
	UpdatedAt time.Time
}
