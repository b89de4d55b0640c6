package doses

import (
	"net/http"
	"strconv"
	"time"

	"medirecord/internal/middleware"
	"medirecord/internal/platform/apperr"
	"medirecord/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/doses", listDosesHandler(svc))
	r.Get("/me/adherence", statsHandler(svc))
}

type EventResponse struct {
	ID           string     `json:"id"`
	MedicationID string     `json:"medication_id"`
	ReminderID   string     `json:"reminder_id"`
	State        State      `json:"state"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	TakenAt      *time.Time `json:"taken_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type statsResponse struct {
	MedicationID   string  `json:"medication_id"`
	MedicationName string  `json:"medication_name"`
	Total          int     `json:"total"`
	Taken          int     `json:"taken"`
	Percentage     float64 `json:"percentage"`
}

// listDosesHandler godoc
// @Summary Historial de tomas
// @Tags doses
// @Produce json
// @Param medication_id query string false "Filtrar por medicamento"
// @Param limit query int false "Máximo de resultados (default 50, máx 500)"
// @Success 200 {array} EventResponse
// @Router /me/doses [get]
func listDosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		f := ListFilter{MedicationID: r.URL.Query().Get("medication_id")}
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				web.WriteError(w, apperr.InvalidInput("limit must be a positive integer"))
				return
			}
			f.Limit = n
		}

		items, err := svc.List(r.Context(), userID, f)
		if err != nil {
			web.WriteError(w, err)
			return
		}

		out := make([]EventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, ToEventResponse(e))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// statsHandler godoc
// @Summary Cumplimiento por medicamento
// @Description Porcentaje de tomas `tomado` sobre el total registrado, por medicamento.
// @Tags doses
// @Produce json
// @Success 200 {array} statsResponse
// @Router /me/adherence [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.Stats(r.Context(), userID)
		if err != nil {
			web.WriteError(w, err)
			return
		}

		out := make([]statsResponse, 0, len(items))
		for _, s := range items {
			out = append(out, statsResponse(s))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// ToEventResponse se exporta porque adherence devuelve la toma recién creada.
func ToEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		MedicationID: e.MedicationID,
		ReminderID:   e.ReminderID,
		State:        e.State,
		ScheduledAt:  e.ScheduledAt,
		TakenAt:      e.TakenAt,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}
