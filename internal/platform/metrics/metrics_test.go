package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.DoseRecorded("tomado")
	m.DoseRecorded("tomado")
	m.DoseRecorded("omitido")
	m.TreatmentCompleted()
	m.NotificationSent("alerta")
	m.RemindersDispatched(3)
	m.RemindersDispatched(0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.dosesRecorded.WithLabelValues("tomado")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.dosesRecorded.WithLabelValues("omitido")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.treatmentsCompleted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.notificationsSent.WithLabelValues("alerta")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.remindersDispatched))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/medications/{medicationID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Handle("/metrics", m.Handler())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/medications/abc", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.httpRequests.WithLabelValues("/medications/{medicationID}", http.MethodGet, "404"),
	))

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "medirecord_http_requests_total"))
}
