package router

import (
	"net/http"
	"time"

	"medirecord/internal/adapters/dictionary/static"
	mem "medirecord/internal/adapters/storage/memory"
	"medirecord/internal/domain/adherence"
	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/drugs"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/notifications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/middleware"
	"medirecord/internal/platform/logger"
	"medirecord/internal/platform/metrics"
	"medirecord/internal/platform/web"
	"medirecord/internal/ports/auth"
	portdrugs "medirecord/internal/ports/drugs"
	"medirecord/internal/scheduler"

	_ "medirecord/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Backend es un store completo (memoria, Postgres o SQLite).
type Backend interface {
	Medications() medications.Repository
	Reminders() reminders.Repository
	Doses() doses.Repository
	Appointments() appointments.Repository
	Notifications() notifications.Repository
	Adherence() adherence.Store
}

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si no viene, in-memory.
	Backend Backend

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// DrugFallback se consulta si el diccionario local no conoce el nombre (RxNorm).
	DrugFallback portdrugs.Lookup

	CORSOrigins []string
	Scheduler   scheduler.Config

	// Location es la zona horaria de los usuarios (TIMEZONE). Default: time.Local.
	Location *time.Location

	// Now fija el reloj de los services (tests).
	Now func() time.Time
}

// App es el servicio armado: el handler HTTP y el scheduler que comparte
// los mismos repos y bandeja de notificaciones.
type App struct {
	Handler   http.Handler
	Scheduler *scheduler.Scheduler
}

func NewRouter(opts Options) http.Handler {
	return Build(opts).Handler
}

func Build(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	backend := opts.Backend
	if backend == nil {
		backend = mem.NewStore()
	}

	// Services por módulo
	notifSvc := notifications.NewService(backend.Notifications(), log, m)
	medsSvc := medications.NewService(backend.Medications())
	remSvc := reminders.NewService(backend.Reminders(), medsSvc)
	dosesSvc := doses.NewService(backend.Doses())
	apptSvc := appointments.NewService(backend.Appointments())
	tracker := adherence.NewTracker(backend.Adherence(), notifSvc, m, log)
	drugsSvc := drugs.NewService(static.New(), opts.DrugFallback, log)
	drugsSvc.SetMedications(medsSvc)

	loc := opts.Location
	if loc == nil {
		loc = opts.Scheduler.Location
	}
	if loc == nil {
		loc = time.Local
	}
	now := clockIn(opts.Now, loc)
	notifSvc.SetClock(now)
	medsSvc.SetClock(now)
	remSvc.SetClock(now)
	apptSvc.SetClock(now)
	tracker.SetClock(now)

	schedCfg := opts.Scheduler
	schedCfg.Location = loc
	sched := scheduler.New(schedCfg, backend.Reminders(), backend.Medications(), apptSvc, notifSvc, m, log)
	sched.SetClock(now)
	sched.EnableCleanup(scheduler.Purgers{
		Doses:         backend.Doses(),
		Appointments:  backend.Appointments(),
		Notifications: backend.Notifications(),
	})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(m.Middleware)
	r.Use(corsHandler(opts.CORSOrigins))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	medications.RegisterRoutes(r, medsSvc)
	reminders.RegisterRoutes(r, remSvc)
	adherence.RegisterRoutes(r, tracker)
	doses.RegisterRoutes(r, dosesSvc)
	appointments.RegisterRoutes(r, apptSvc)
	notifications.RegisterRoutes(r, notifSvc)
	drugs.RegisterRoutes(r, drugsSvc)

	return &App{Handler: r, Scheduler: sched}
}

// clockIn devuelve el reloj de los services en la zona de los usuarios:
// "hoy" y la hora de un recordatorio se resuelven en loc, no en la del servidor.
func clockIn(base func() time.Time, loc *time.Location) func() time.Time {
	if base == nil {
		base = time.Now
	}
	return func() time.Time { return base().In(loc) }
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.DebugUserHeader},
		MaxAge:         300,
	}).Handler
}
