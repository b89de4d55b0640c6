package notifications

import (
	"net/http"
	"strconv"
	"time"

	"medirecord/internal/middleware"
	"medirecord/internal/platform/web"
	"medirecord/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/notifications", listNotificationsHandler(svc))
	r.Post("/notifications/{notificationID}/read", markReadHandler(svc))
}

type notificationResponse struct {
	ID      string      `json:"id"`
	Kind    notify.Kind `json:"kind"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Read    bool        `json:"read"`
	SentAt  time.Time   `json:"sent_at"`
}

// listNotificationsHandler godoc
// @Summary Bandeja de notificaciones
// @Tags notifications
// @Produce json
// @Param unread query bool false "Solo no leídas"
// @Success 200 {array} notificationResponse
// @Router /me/notifications [get]
func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		unread, _ := strconv.ParseBool(r.URL.Query().Get("unread"))
		items, err := svc.List(r.Context(), userID, unread)
		if err != nil {
			web.WriteError(w, err)
			return
		}

		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			out = append(out, toNotificationResponse(n))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// markReadHandler godoc
// @Summary Marcar notificación como leída
// @Tags notifications
// @Produce json
// @Param notificationID path string true "ID de la notificación"
// @Success 200 {object} notificationResponse
// @Failure 404 {object} object "notification not found"
// @Router /notifications/{notificationID}/read [post]
func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		n, err := svc.MarkRead(r.Context(), userID, chi.URLParam(r, "notificationID"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toNotificationResponse(n))
	}
}

func toNotificationResponse(n Notification) notificationResponse {
	return notificationResponse{
		ID:      n.ID,
		Kind:    n.Kind,
		Title:   n.Title,
		Message: n.Message,
		Read:    n.Read,
		SentAt:  n.SentAt,
	}
}
