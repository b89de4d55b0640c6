// Package sqlite es el store local sobre SQLite (gorm + driver pure-Go).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"medirecord/internal/domain/appointments"
	"medirecord/internal/domain/doses"
	"medirecord/internal/domain/medications"
	"medirecord/internal/domain/notifications"
	"medirecord/internal/domain/reminders"
	"medirecord/internal/platform/apperr"

	_ "github.com/glebarez/go-sqlite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

type Store struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// Open abre (o crea) la base en path y aplica AutoMigrate. ":memory:" sirve
// para tests: con una sola conexión todas las queries ven la misma base.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite path required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?" + pragmas
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite serializa escrituras; una conexión evita SQLITE_BUSY en las transacciones.
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if err := db.AutoMigrate(
		&medicationRow{},
		&reminderRow{},
		&doseRow{},
		&appointmentRow{},
		&notificationRow{},
	); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, sqlDB: sqlDB}, nil
}

func (s *Store) Close() error { return s.sqlDB.Close() }

func (s *Store) Medications() medications.Repository     { return &medicationRepo{db: s.db} }
func (s *Store) Reminders() reminders.Repository         { return &reminderRepo{db: s.db} }
func (s *Store) Doses() doses.Repository                 { return &doseRepo{db: s.db} }
func (s *Store) Appointments() appointments.Repository   { return &appointmentRepo{db: s.db} }
func (s *Store) Notifications() notifications.Repository { return &notificationRepo{db: s.db} }

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what)
	}
	return err
}
