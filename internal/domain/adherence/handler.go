package adherence

import (
	"fmt"
	"math"
	"net/http"

	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/middleware"
	"medirecord/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, tracker *Tracker) {
	r.Get("/medications/{medicationID}/progress", progressHandler(tracker))
	r.Post("/medications/{medicationID}/completion", completionHandler(tracker))
	r.Post("/reminders/{reminderID}/doses", recordDoseHandler(tracker))
}

type recordDoseRequest struct {
	State doses.State `json:"state" validate:"omitempty,oneof=tomado retrasado omitido"`
	Notes string      `json:"notes"`
}

type progressResponse struct {
	MedicationID  string                    `json:"medication_id"`
	Kind          medications.TreatmentKind `json:"treatment_kind"`
	Active        bool                      `json:"active"`
	IsPermanent   bool                      `json:"is_permanent"`
	TakenCount    int                       `json:"taken_count"`
	TotalExpected *int                      `json:"total_expected,omitempty"`
	Percentage    *float64                  `json:"percentage,omitempty"`
	Label         string                    `json:"label"`
}

type recordDoseResponse struct {
	Dose        doses.EventResponse `json:"dose"`
	Progress    progressResponse    `json:"progress"`
	Deactivated bool                `json:"deactivated"`
	Message     string              `json:"message"`
}

type completionResponse struct {
	MedicationID string `json:"medication_id"`
	Deactivated  bool   `json:"deactivated"`
}

// progressHandler godoc
// @Summary Progreso del tratamiento
// @Description Tomas `tomado` sobre las esperadas (recordatorios activos × días). En tratamientos permanentes no hay porcentaje y `is_permanent` es true.
// @Tags adherence
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} progressResponse
// @Failure 404 {object} object "medication not found"
// @Router /medications/{medicationID}/progress [get]
func progressHandler(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		p, err := tracker.ComputeProgress(r.Context(), userID, chi.URLParam(r, "medicationID"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toProgressResponse(p))
	}
}

// completionHandler godoc
// @Summary Aplicar política de finalización
// @Description Da de baja el medicamento y sus recordatorios si el tratamiento temporal llegó al 100%. Idempotente.
// @Tags adherence
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} completionResponse
// @Failure 404 {object} object "medication not found"
// @Router /medications/{medicationID}/completion [post]
func completionHandler(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		medicationID := chi.URLParam(r, "medicationID")
		deactivated, err := tracker.EnforceCompletionPolicy(r.Context(), userID, medicationID)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, completionResponse{MedicationID: medicationID, Deactivated: deactivated})
	}
}

// recordDoseHandler godoc
// @Summary Registrar toma
// @Description Registra la toma de un recordatorio (por defecto `tomado`). La hora programada es la del recordatorio. Si el tratamiento temporal llega al 100% se da de baja en la misma transacción.
// @Tags adherence
// @Accept json
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Param payload body recordDoseRequest false "Estado y notas"
// @Success 201 {object} recordDoseResponse
// @Failure 404 {object} object "reminder not found"
// @Failure 409 {object} object "medication or reminder inactive"
// @Router /reminders/{reminderID}/doses [post]
func recordDoseHandler(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req recordDoseRequest
		if err := web.DecodeJSON(r, &req, true); err != nil {
			web.WriteError(w, err)
			return
		}

		out, err := tracker.RecordDose(r.Context(), userID, chi.URLParam(r, "reminderID"), RecordDoseInput{
			State: req.State,
			Notes: req.Notes,
		})
		if err != nil {
			web.WriteError(w, err)
			return
		}

		msg := doseMessage(out.MedicationName, out.Dose.State)
		if out.Deactivated {
			msg = "Tratamiento completado al 100% - Medicamento dado de baja"
		}

		web.WriteJSON(w, http.StatusCreated, recordDoseResponse{
			Dose:        doses.ToEventResponse(out.Dose),
			Progress:    toProgressResponse(out.Progress),
			Deactivated: out.Deactivated,
			Message:     msg,
		})
	}
}

func toProgressResponse(p Progress) progressResponse {
	out := progressResponse{
		MedicationID: p.MedicationID,
		Kind:         p.Kind,
		Active:       p.Active,
		IsPermanent:  p.IsPermanent,
		TakenCount:   p.TakenCount,
	}
	if p.IsPermanent {
		out.Label = "(Tratamiento permanente)"
		return out
	}

	total := p.TotalExpected
	pct := math.Floor(p.Percentage*10) / 10
	out.TotalExpected = &total
	out.Percentage = &pct
	// piso: "100%" solo cuando el tratamiento está completo
	out.Label = fmt.Sprintf("Progreso: %d%%", int(math.Floor(p.Percentage)))
	return out
}
