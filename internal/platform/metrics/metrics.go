package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "medirecord"

// Metrics agrupa los contadores del servicio en un registry propio, así
// los tests pueden crear instancias sin chocar con el registry global.
type Metrics struct {
	reg *prometheus.Registry

	dosesRecorded       *prometheus.CounterVec
	treatmentsCompleted prometheus.Counter
	notificationsSent   *prometheus.CounterVec
	remindersDispatched prometheus.Counter
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		dosesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doses_recorded_total",
			Help:      "Tomas registradas por estado.",
		}, []string{"state"}),
		treatmentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "treatments_completed_total",
			Help:      "Tratamientos temporales dados de baja al llegar al 100%.",
		}),
		notificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Notificaciones guardadas por tipo.",
		}, []string{"kind"}),
		remindersDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_dispatched_total",
			Help:      "Recordatorios emitidos por el scheduler.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests HTTP por ruta, método y status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia HTTP por ruta.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.dosesRecorded,
		m.treatmentsCompleted,
		m.notificationsSent,
		m.remindersDispatched,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) DoseRecorded(state string) {
	m.dosesRecorded.WithLabelValues(state).Inc()
}

func (m *Metrics) TreatmentCompleted() {
	m.treatmentsCompleted.Inc()
}

func (m *Metrics) NotificationSent(kind string) {
	m.notificationsSent.WithLabelValues(kind).Inc()
}

func (m *Metrics) RemindersDispatched(n int) {
	if n > 0 {
		m.remindersDispatched.Add(float64(n))
	}
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Middleware cuenta requests usando el patrón de ruta de chi (no el path
// real) para no explotar la cardinalidad.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
