package appointments

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
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/{appointmentID}/attendance", attendanceHandler(svc))
	})
}

type createAppointmentRequest struct {
	DoctorName  string `json:"doctor_name" validate:"required"`
	Specialty   string `json:"specialty"`
	ScheduledAt string `json:"scheduled_at" validate:"required"` // RFC3339
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

type attendanceRequest struct {
	Attendance Attendance `json:"attendance" validate:"required,oneof=pendiente asistio no_asistio"`
}

type appointmentResponse struct {
	ID           string     `json:"id"`
	DoctorName   string     `json:"doctor_name"`
	Specialty    string     `json:"specialty"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Location     string     `json:"location"`
	Notes        string     `json:"notes"`
	ReminderSent bool       `json:"reminder_sent"`
	Attendance   Attendance `json:"attendance"`
	CreatedAt    time.Time  `json:"created_at"`
}

// createAppointmentHandler godoc
// @Summary Registrar cita médica
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos de la cita; scheduled_at en RFC3339"
// @Success 201 {object} appointmentResponse
// @Failure 400 {object} object "invalid input"
// @Router /appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req createAppointmentRequest
		if err := web.DecodeJSON(r, &req, false); err != nil {
			web.WriteError(w, err)
			return
		}
		at, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			web.WriteError(w, apperr.InvalidInput("scheduled_at must be RFC3339"))
			return
		}

		a, err := svc.Create(r.Context(), userID, CreateInput{
			DoctorName:  req.DoctorName,
			Specialty:   req.Specialty,
			ScheduledAt: at,
			Location:    req.Location,
			Notes:       req.Notes,
		})
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Tags appointments
// @Produce json
// @Param upcoming query bool false "Solo futuras"
// @Success 200 {array} appointmentResponse
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		upcoming, _ := strconv.ParseBool(r.URL.Query().Get("upcoming"))
		items, err := svc.List(r.Context(), userID, upcoming)
		if err != nil {
			web.WriteError(w, err)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// attendanceHandler godoc
// @Summary Registrar asistencia
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param payload body attendanceRequest true "pendiente | asistio | no_asistio"
// @Success 200 {object} appointmentResponse
// @Failure 404 {object} object "appointment not found"
// @Router /appointments/{appointmentID}/attendance [post]
func attendanceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req attendanceRequest
		if err := web.DecodeJSON(r, &req, false); err != nil {
			web.WriteError(w, err)
			return
		}

		a, err := svc.SetAttendance(r.Context(), userID, chi.URLParam(r, "appointmentID"), req.Attendance)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:           a.ID,
		DoctorName:   a.DoctorName,
		Specialty:    a.Specialty,
		ScheduledAt:  a.ScheduledAt,
		Location:     a.Location,
		Notes:        a.Notes,
		ReminderSent: a.ReminderSent,
		Attendance:   a.Attendance,
		CreatedAt:    a.CreatedAt,
	}
}
