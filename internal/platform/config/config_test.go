package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_DRIVER", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err, "explicit config path must exist")

	cfg, err = Load(writeConfig(t, "port: \"9090\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverMemory, cfg.DBDriver)
	assert.Equal(t, "@every 1m", cfg.SchedulerSpec)
	assert.Equal(t, 5*time.Second, cfg.RxNormTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "@daily", cfg.CleanupSpec)
	assert.Equal(t, 90*24*time.Hour, cfg.DoseRetention())
	assert.Equal(t, 180*24*time.Hour, cfg.AppointmentRetention())
	assert.Equal(t, 30*24*time.Hour, cfg.NotificationRetention())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_level: debug\ndb_driver: sqlite\nsqlite_path: /tmp/a.db\n")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/a.db", cfg.SQLitePath)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoad_DSNImpliesPostgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/medirecord")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
}

func TestValidate(t *testing.T) {
	base := Config{
		DBDriver: DriverMemory, Timezone: "UTC", SchedulerSpec: "@every 1m",
		DoseRetentionDays: 90, AppointmentRetentionDays: 180, NotificationRetentionDays: 30,
	}
	require.NoError(t, base.Validate())

	pg := base
	pg.DBDriver = DriverPostgres
	assert.ErrorContains(t, pg.Validate(), "db_dsn")

	bad := base
	bad.DBDriver = "mongo"
	assert.ErrorContains(t, bad.Validate(), "unknown db_driver")

	tz := base
	tz.Timezone = "Mars/Olympus"
	assert.ErrorContains(t, tz.Validate(), "invalid timezone")

	ret := base
	ret.NotificationRetentionDays = 0
	assert.ErrorContains(t, ret.Validate(), "retention days")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "medirecord.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}
