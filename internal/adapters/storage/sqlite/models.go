package sqlite

import (
	"time"

	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/notifications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/ports/notify"
)

// Los tiempos se guardan en UTC para que las comparaciones de texto de
// SQLite respeten el orden cronológico.

type medicationRow struct {
	ID            string `gorm:"primaryKey"`
	UserID        string `gorm:"index;not null"`
	Name          string `gorm:"not null"`
	Dose          string `gorm:"not null"`
	Form          string
	Route         string
	Instructions  string
	StockCurrent  int
	StockTotal    int
	TreatmentKind string `gorm:"not null"`
	DurationDays  int
	Active        bool `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (medicationRow) TableName() string { return "medications" }

func toMedicationRow(m medications.Medication) medicationRow {
	return medicationRow{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Dose:          m.Dose,
		Form:          string(m.Form),
		Route:         m.Route,
		Instructions:  m.Instructions,
		StockCurrent:  m.StockCurrent,
		StockTotal:    m.StockTotal,
		TreatmentKind: string(m.Kind),
		DurationDays:  m.DurationDays,
		Active:        m.Active,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

func (r medicationRow) toDomain() medications.Medication {
	return medications.Medication{
		ID:           r.ID,
		UserID:       r.UserID,
		Name:         r.Name,
		Dose:         r.Dose,
		Form:         medications.Form(r.Form),
		Route:        r.Route,
		Instructions: r.Instructions,
		StockCurrent: r.StockCurrent,
		StockTotal:   r.StockTotal,
		Kind:         medications.TreatmentKind(r.TreatmentKind),
		DurationDays: r.DurationDays,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type reminderRow struct {
	ID           string `gorm:"primaryKey"`
	MedicationID string `gorm:"index;not null"`
	UserID       string `gorm:"index;not null"`
	TimeOfDay    string `gorm:"not null"`
	DaysOfWeek   string
	StartDate    time.Time
	EndDate      *time.Time
	Active       bool `gorm:"index"`
	AlarmSound   bool
	CreatedAt    time.Time
}

func (reminderRow) TableName() string { return "reminders" }

func toReminderRow(r reminders.Reminder) reminderRow {
	row := reminderRow{
		ID:           r.ID,
		MedicationID: r.MedicationID,
		UserID:       r.UserID,
		TimeOfDay:    r.TimeOfDay,
		DaysOfWeek:   reminders.DaysCSV(r.Days),
		StartDate:    reminders.DateOnly(r.StartDate),
		Active:       r.Active,
		AlarmSound:   r.AlarmSound,
		CreatedAt:    r.CreatedAt.UTC(),
	}
	if r.EndDate != nil {
		end := reminders.DateOnly(*r.EndDate)
		row.EndDate = &end
	}
	return row
}

func (r reminderRow) toDomain() reminders.Reminder {
	rem := reminders.Reminder{
		ID:           r.ID,
		MedicationID: r.MedicationID,
		UserID:       r.UserID,
		TimeOfDay:    r.TimeOfDay,
		Days:         reminders.ParseDaysCSV(r.DaysOfWeek),
		StartDate:    reminders.DateOnly(r.StartDate),
		Active:       r.Active,
		AlarmSound:   r.AlarmSound,
		CreatedAt:    r.CreatedAt,
	}
	if r.EndDate != nil {
		end := reminders.DateOnly(*r.EndDate)
		rem.EndDate = &end
	}
	return rem
}

type doseRow struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"index;not null"`
	MedicationID string `gorm:"index;not null"`
	ReminderID   string
	State        string `gorm:"not null"`
	ScheduledAt  time.Time
	TakenAt      *time.Time
	Notes        string
	CreatedAt    time.Time `gorm:"index"`
}

func (doseRow) TableName() string { return "dose_events" }

func toDoseRow(e doses.Event) doseRow {
	row := doseRow{
		ID:           e.ID,
		UserID:       e.UserID,
		MedicationID: e.MedicationID,
		ReminderID:   e.ReminderID,
		State:        string(e.State),
		ScheduledAt:  e.ScheduledAt.UTC(),
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt.UTC(),
	}
	if e.TakenAt != nil {
		t := e.TakenAt.UTC()
		row.TakenAt = &t
	}
	return row
}

func (r doseRow) toDomain() doses.Event {
	return doses.Event{
		ID:           r.ID,
		UserID:       r.UserID,
		MedicationID: r.MedicationID,
		ReminderID:   r.ReminderID,
		State:        doses.State(r.State),
		ScheduledAt:  r.ScheduledAt,
		TakenAt:      r.TakenAt,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}

type appointmentRow struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"index;not null"`
	DoctorName   string `gorm:"not null"`
	Specialty    string
	ScheduledAt  time.Time `gorm:"index"`
	Location     string
	Notes        string
	ReminderSent bool
	Attendance   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (appointmentRow) TableName() string { return "appointments" }

func toAppointmentRow(a appointments.Appointment) appointmentRow {
	return appointmentRow{
		ID:           a.ID,
		UserID:       a.UserID,
		DoctorName:   a.DoctorName,
		Specialty:    a.Specialty,
		ScheduledAt:  a.ScheduledAt.UTC(),
		Location:     a.Location,
		Notes:        a.Notes,
		ReminderSent: a.ReminderSent,
		Attendance:   string(a.Attendance),
		CreatedAt:    a.CreatedAt.UTC(),
		UpdatedAt:    a.UpdatedAt.UTC(),
	}
}

func (r appointmentRow) toDomain() appointments.Appointment {
	return appointments.Appointment{
		ID:           r.ID,
		UserID:       r.UserID,
		DoctorName:   r.DoctorName,
		Specialty:    r.Specialty,
		ScheduledAt:  r.ScheduledAt,
		Location:     r.Location,
		Notes:        r.Notes,
		ReminderSent: r.ReminderSent,
		Attendance:   appointments.Attendance(r.Attendance),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type notificationRow struct {
	ID      string `gorm:"primaryKey"`
	UserID  string `gorm:"index;not null"`
	Kind    string
	Title   string
	Message string
	Read    bool
	SentAt  time.Time
}

func (notificationRow) TableName() string { return "notifications" }

func toNotificationRow(n notifications.Notification) notificationRow {
	return notificationRow{
		ID:      n.ID,
		UserID:  n.UserID,
		Kind:    string(n.Kind),
		Title:   n.Title,
		Message: n.Message,
		Read:    n.Read,
		SentAt:  n.SentAt.UTC(),
	}
}

func (r notificationRow) toDomain() notifications.Notification {
	return notifications.Notification{
		ID:      r.ID,
		UserID:  r.UserID,
		Kind:    notify.Kind(r.Kind),
		Title:   r.Title,
		Message: r.Message,
		Read:    r.Read,
		SentAt:  r.SentAt,
	}
}
