package reminders

import (
	"net/http"
	"strings"
	"time"

	"medirecord/internal/middleware"
	"medirecord/internal/platform/apperr"
	"medirecord/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/medications/{medicationID}/reminders", createReminderHandler(svc))
	r.Get("/medications/{medicationID}/reminders", listRemindersHandler(svc))
	r.Get("/me/reminders/today", listTodayHandler(svc))
}

type createReminderRequest struct {
	TimeOfDay  string `json:"time_of_day" validate:"required"`
	Days       []int  `json:"days_of_week" validate:"omitempty,dive,gte=0,lte=6"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD, default hoy
	EndDate    string `json:"end_date"`   // YYYY-MM-DD opcional
	AlarmSound bool   `json:"alarm_sound"`
}

type reminderResponse struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	TimeOfDay    string    `json:"time_of_day"`
	Days         []int     `json:"days_of_week"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date,omitempty"`
	Active       bool      `json:"active"`
	AlarmSound   bool      `json:"alarm_sound"`
	CreatedAt    time.Time `json:"created_at"`
}

// createReminderHandler godoc
// @Summary Programar recordatorio
// @Description Agrega una hora de toma diaria (o en días específicos, 0=domingo) a un medicamento activo.
// @Tags reminders
// @Accept json
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Param payload body createReminderRequest true "Hora HH:MM y días"
// @Success 201 {object} reminderResponse
// @Failure 400 {object} object "invalid input"
// @Failure 404 {object} object "medication not found"
// @Failure 409 {object} object "medication is inactive"
// @Router /medications/{medicationID}/reminders [post]
func createReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req createReminderRequest
		if err := web.DecodeJSON(r, &req, false); err != nil {
			web.WriteError(w, err)
			return
		}

		start, err := parseDate(req.StartDate, "start_date")
		if err != nil {
			web.WriteError(w, err)
			return
		}
		end, err := parseDate(req.EndDate, "end_date")
		if err != nil {
			web.WriteError(w, err)
			return
		}

		rem, err := svc.Create(r.Context(), userID, chi.URLParam(r, "medicationID"), CreateInput{
			TimeOfDay:  req.TimeOfDay,
			Days:       req.Days,
			StartDate:  start,
			EndDate:    end,
			AlarmSound: req.AlarmSound,
		})
		if err != nil {
			web.WriteError(w, err)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toReminderResponse(rem))
	}
}

// listRemindersHandler godoc
// @Summary Recordatorios de un medicamento
// @Tags reminders
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {array} reminderResponse
// @Router /medications/{medicationID}/reminders [get]
func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByMedication(r.Context(), userID, chi.URLParam(r, "medicationID"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toReminderResponses(items))
	}
}

// listTodayHandler godoc
// @Summary Recordatorios de hoy
// @Tags reminders
// @Produce json
// @Success 200 {array} reminderResponse
// @Router /me/reminders/today [get]
func listTodayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.ListToday(r.Context(), userID)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toReminderResponses(items))
	}
}

func parseDate(s, field string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperr.InvalidInput(field + " must be YYYY-MM-DD")
	}
	return &t, nil
}

func toReminderResponse(r Reminder) reminderResponse {
	days := make([]int, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, int(d))
	}
	out := reminderResponse{
		ID:           r.ID,
		MedicationID: r.MedicationID,
		TimeOfDay:    r.TimeOfDay,
		Days:         days,
		StartDate:    r.StartDate.Format(dateLayout),
		Active:       r.Active,
		AlarmSound:   r.AlarmSound,
		CreatedAt:    r.CreatedAt,
	}
	if r.EndDate != nil {
		e := r.EndDate.Format(dateLayout)
		out.EndDate = &e
	}
	return out
}

func toReminderResponses(items []Reminder) []reminderResponse {
	out := make([]reminderResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReminderResponse(r))
	}
	return out
}
