package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port    string `mapstructure:"port"`
	AppName string `mapstructure:"app_name"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	DBDriver   string `mapstructure:"db_driver"`
	DBDSN      string `mapstructure:"db_dsn"`
	SQLitePath string `mapstructure:"sqlite_path"`

	AuthBaseURL string `mapstructure:"auth_base_url"`
	AuthAPIKey  string `mapstructure:"auth_api_key"`

	RxNormEnabled bool          `mapstructure:"rxnorm_enabled"`
	RxNormBaseURL string        `mapstructure:"rxnorm_base_url"`
	RxNormTimeout time.Duration `mapstructure:"rxnorm_timeout"`

	SchedulerEnabled bool   `mapstructure:"scheduler_enabled"`
	SchedulerSpec    string `mapstructure:"scheduler_spec"`

	// Retención en días por tipo de dato; la aplica el job de limpieza.
	CleanupSpec               string `mapstructure:"cleanup_spec"`
	DoseRetentionDays         int    `mapstructure:"dose_retention_days"`
	AppointmentRetentionDays  int    `mapstructure:"appointment_retention_days"`
	NotificationRetentionDays int    `mapstructure:"notification_retention_days"`

	Timezone           string   `mapstructure:"timezone"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

var keys = []string{
	"port", "app_name",
	"log_level", "log_format",
	"db_driver", "db_dsn", "sqlite_path",
	"auth_base_url", "auth_api_key",
	"rxnorm_enabled", "rxnorm_base_url", "rxnorm_timeout",
	"scheduler_enabled", "scheduler_spec",
	"cleanup_spec", "dose_retention_days", "appointment_retention_days", "notification_retention_days",
	"timezone", "cors_allowed_origins",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("app_name", "medirecord")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("db_driver", "")
	v.SetDefault("sqlite_path", "medirecord.db")
	v.SetDefault("rxnorm_enabled", false)
	v.SetDefault("rxnorm_base_url", "https://rxnav.nlm.nih.gov")
	v.SetDefault("rxnorm_timeout", 5*time.Second)
	v.SetDefault("scheduler_enabled", true)
	v.SetDefault("scheduler_spec", "@every 1m")
	v.SetDefault("cleanup_spec", "@daily")
	v.SetDefault("dose_retention_days", 90)
	v.SetDefault("appointment_retention_days", 180)
	v.SetDefault("notification_retention_days", 30)
	v.SetDefault("timezone", "Local")
	v.SetDefault("cors_allowed_origins", []string{"*"})
}

// Load arma la config: defaults, luego archivo yaml opcional y por último env.
// Las env vars usan nombres planos (PORT, DB_DSN, LOG_LEVEL, ...).
// Si configPath está vacío se usa CONFIG_FILE o ./medirecord.yaml si existe.
func Load(configPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath == "" {
		configPath = os.Getenv("CONFIG_FILE")
	}
	if configPath == "" {
		if _, err := os.Stat("medirecord.yaml"); err == nil {
			configPath = "medirecord.yaml"
		}
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	for _, k := range keys {
		if err := v.BindEnv(k, strings.ToUpper(k)); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSAllowedOrigins = splitOrigins(cfg.CORSAllowedOrigins)

	// Sin driver explícito: postgres si hay DSN, si no memoria.
	if strings.TrimSpace(cfg.DBDriver) == "" {
		if strings.TrimSpace(cfg.DBDSN) != "" {
			cfg.DBDriver = DriverPostgres
		} else {
			cfg.DBDriver = DriverMemory
		}
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			errs = append(errs, errors.New("db_dsn is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown db_driver %q", c.DBDriver))
	}

	if c.DBDriver == DriverSQLite && strings.TrimSpace(c.SQLitePath) == "" {
		errs = append(errs, errors.New("sqlite_path is required for sqlite"))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err))
	}

	if c.SchedulerEnabled && strings.TrimSpace(c.SchedulerSpec) == "" {
		errs = append(errs, errors.New("scheduler_spec is required when scheduler is enabled"))
	}

	if c.DoseRetentionDays <= 0 || c.AppointmentRetentionDays <= 0 || c.NotificationRetentionDays <= 0 {
		errs = append(errs, errors.New("retention days must be > 0"))
	}

	return errors.Join(errs...)
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func (c Config) DoseRetention() time.Duration         { return days(c.DoseRetentionDays) }
func (c Config) AppointmentRetention() time.Duration  { return days(c.AppointmentRetentionDays) }
func (c Config) NotificationRetention() time.Duration { return days(c.NotificationRetentionDays) }

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// splitOrigins acepta tanto lista yaml como "a,b" desde env.
func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
