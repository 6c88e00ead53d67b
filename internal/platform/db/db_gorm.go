// Package db opens the PostgreSQL pool shared by every store.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds the PostgreSQL connection settings.
type Config struct {
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	RunMigration bool
}

// LoadConfigFromEnv reads DB_* variables. Unset pool sizes fall back to defaults.
func LoadConfigFromEnv() Config {
	cfg := Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		SSLMode:      os.Getenv("DB_SSLMODE"),
		MaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 5),
		RunMigration: os.Getenv("RUN_MIGRATIONS") == "true",
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	return cfg
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// BuildDSN renders cfg as a libpq key/value connection string.
func BuildDSN(cfg Config) string {
	parts := []string{
		"host=" + cfg.Host,
		"port=" + cfg.Port,
		"user=" + cfg.User,
		"password=" + quoteDSN(cfg.Password),
		"dbname=" + cfg.Name,
		"sslmode=" + cfg.SSLMode,
		"TimeZone=UTC",
	}
	return strings.Join(parts, " ")
}

// quoteDSN quotes values containing spaces or quotes, as libpq requires.
func quoteDSN(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry calls open until it succeeds or timeout elapses, sleeping interval between attempts.
func ConnectWithRetry(dsn string, timeout, interval time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		gdb, err := open(dsn)
		if err == nil {
			return gdb, nil
		}
		if time.Now().Add(interval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", interval)
		time.Sleep(interval)
	}
}

// postgresOpener opens PostgreSQL through the pgx driver.
// TranslateError makes unique violations surface as gorm.ErrDuplicatedKey.
func postgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// OpenDB connects to PostgreSQL, sizes the pool and optionally migrates the schema.
func OpenDB(cfg Config) (*gorm.DB, error) {
	gdb, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, 3*time.Second, postgresOpener)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if cfg.RunMigration {
		if err := AutoMigrate(gdb); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		slog.Info("schema migrated")
	}
	return gdb, nil
}

// NewSQLX wraps the pool gorm opened so raw-SQL stores share it.
// driverName selects the placeholder style for sqlx.Rebind ("pgx" or "sqlite3").
func NewSQLX(gdb *gorm.DB, driverName string) (*sqlx.DB, error) {
	if gdb == nil {
		return nil, errors.New("nil gorm handle")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(sqlDB, driverName), nil
}
