// @title MediRecord API
// @version 1.0
// @description Seguimiento de medicamentos, recordatorios y adherencia a tratamientos.
// @BasePath /
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medirecord/internal/adapters/auth/remote"
	"medirecord/internal/adapters/dictionary/rxnorm"
	mem "medirecord/internal/adapters/storage/memory"
	pg "medirecord/internal/adapters/storage/postgres"
	"medirecord/internal/adapters/storage/sqlite"
	"medirecord/internal/platform/config"
	"medirecord/internal/platform/logger"
	"medirecord/internal/platform/metrics"
	"medirecord/internal/ports/auth"
	"medirecord/internal/ports/drugs"
	"medirecord/internal/router"
	"medirecord/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "", "archivo de configuración (yaml)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "medirecord: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer logger.Sync(log)

	backend, closeBackend, err := openBackend(cfg, log)
	if err != nil {
		return err
	}
	defer closeBackend()

	var verifier auth.AuthVerifier // nil = modo dev (X-Debug-User-ID)
	if cfg.AuthBaseURL != "" {
		v, err := remote.New(remote.Config{BaseURL: cfg.AuthBaseURL, APIKey: cfg.AuthAPIKey, Log: log})
		if err != nil {
			return fmt.Errorf("auth verifier: %w", err)
		}
		verifier = v
	} else {
		log.Warn("auth verifier not configured, running in dev mode", nil)
	}

	var fallback drugs.Lookup
	if cfg.RxNormEnabled {
		c, err := rxnorm.New(rxnorm.Config{BaseURL: cfg.RxNormBaseURL, Timeout: cfg.RxNormTimeout, Log: log})
		if err != nil {
			return fmt.Errorf("rxnorm: %w", err)
		}
		fallback = c
	}

	app := router.Build(router.Options{
		AuthVerifier: verifier,
		Backend:      backend,
		Logger:       log,
		Metrics:      metrics.New(),
		DrugFallback: fallback,
		CORSOrigins:  cfg.CORSAllowedOrigins,
		Location:     cfg.Location(),
		Scheduler: scheduler.Config{
			Spec:        cfg.SchedulerSpec,
			CleanupSpec: cfg.CleanupSpec,
			Retention: scheduler.Retention{
				Doses:         cfg.DoseRetention(),
				Appointments:  cfg.AppointmentRetention(),
				Notifications: cfg.NotificationRetention(),
			},
		},
	})

	if cfg.SchedulerEnabled {
		if err := app.Scheduler.Start(); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "db_driver": cfg.DBDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Scheduler.Stop(shutdownCtx); err != nil {
		log.Warn("scheduler stop", map[string]any{"err": err})
	}
	return srv.Shutdown(shutdownCtx)
}

func openBackend(cfg config.Config, log logger.Logger) (router.Backend, func(), error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg.NewStore(db), func() { _ = db.Close() }, nil

	case config.DriverSQLite:
		st, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		return st, func() { _ = st.Close() }, nil

	default:
		log.Warn("using in-memory store, data is lost on restart", nil)
		return mem.NewStore(), func() {}, nil
	}
}
