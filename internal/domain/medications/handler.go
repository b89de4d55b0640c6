package medications

import (
	"net/http"
	"strconv"
	"time"

	"medirecord/internal/middleware"
	"medirecord/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/medications", createMedicationHandler(svc))
	r.Get("/medications", listMedicationsHandler(svc))
	r.Get("/medications/low-stock", lowStockHandler(svc))
	r.Get("/medications/{medicationID}", getMedicationHandler(svc))
}

// createMedicationRequest es el cuerpo para registrar un medicamento.
type createMedicationRequest struct {
	Name         string        `json:"name" validate:"required"`
	Dose         string        `json:"dose" validate:"required"`
	Form         Form          `json:"form" validate:"omitempty,oneof=tableta capsula liquido inyeccion crema otro"`
	Route        string        `json:"route"`
	Instructions string        `json:"instructions"`
	StockCurrent int           `json:"stock_current" validate:"gte=0"`
	StockTotal   int           `json:"stock_total" validate:"gte=0"`
	Kind         TreatmentKind `json:"treatment_kind" validate:"required,oneof=temporal permanente"`
	DurationDays int           `json:"duration_days" validate:"gte=0"`
}

type medicationResponse struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Name         string        `json:"name"`
	Dose         string        `json:"dose"`
	Form         Form          `json:"form"`
	Route        string        `json:"route"`
	Instructions string        `json:"instructions"`
	StockCurrent int           `json:"stock_current"`
	StockTotal   int           `json:"stock_total"`
	Kind         TreatmentKind `json:"treatment_kind"`
	DurationDays int           `json:"duration_days"`
	Active       bool          `json:"active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// createMedicationHandler godoc
// @Summary Registrar medicamento
// @Description Crea un medicamento activo para el usuario autenticado. Los tratamientos `temporal` requieren `duration_days > 0`.
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param payload body createMedicationRequest true "Datos del medicamento"
// @Success 201 {object} medicationResponse
// @Failure 400 {object} object "invalid input"
// @Failure 401 {object} object "unauthorized"
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req createMedicationRequest
		if err := web.DecodeJSON(r, &req, false); err != nil {
			web.WriteError(w, err)
			return
		}

		m, err := svc.Create(r.Context(), userID, CreateInput{
			Name:         req.Name,
			Dose:         req.Dose,
			Form:         req.Form,
			Route:        req.Route,
			Instructions: req.Instructions,
			StockCurrent: req.StockCurrent,
			StockTotal:   req.StockTotal,
			Kind:         req.Kind,
			DurationDays: req.DurationDays,
		})
		if err != nil {
			web.WriteError(w, err)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos
// @Tags medications
// @Produce json
// @Param active query bool false "Solo activos"
// @Success 200 {array} medicationResponse
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))
		items, err := svc.List(r.Context(), userID, ListFilter{ActiveOnly: activeOnly})
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

// lowStockHandler godoc
// @Summary Medicamentos con stock bajo
// @Description Activos con stock actual por debajo del 25% del total.
// @Tags medications
// @Produce json
// @Success 200 {array} medicationResponse
// @Router /medications/low-stock [get]
func lowStockHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.LowStock(r.Context(), userID)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicamento
// @Tags medications
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 404 {object} object "medication not found"
// @Router /medications/{medicationID} [get]
func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		m, err := svc.GetByID(r.Context(), userID, chi.URLParam(r, "medicationID"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Dose:         m.Dose,
		Form:         m.Form,
		Route:        m.Route,
		Instructions: m.Instructions,
		StockCurrent: m.StockCurrent,
		StockTotal:   m.StockTotal,
		Kind:         m.Kind,
		DurationDays: m.DurationDays,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toMedicationResponses(items []Medication) []medicationResponse {
	out := make([]medicationResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMedicationResponse(m))
	}
	return out
}
