// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"learning_backend/internal/platform/captcha"
	"learning_backend/internal/platform/db"
	infraredis "learning_backend/internal/platform/redis"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is unset or empty.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Port           string
	JWTSecret      string
	AdminKeyID     string // keyid required on catalogue writes; empty disables the check
	RequestTimeout time.Duration
	SummaryTTL     time.Duration
	CORSOrigins    []string // empty allows any origin
	AuthRateRPS    float64
	AuthRateBurst  int
	LogLevel       slog.Level

	DB      db.Config
	Redis   infraredis.Config
	Captcha captcha.Config
}

// Load reads configuration from environment variables and returns a validated Config.
// JWT_SECRET is required. Optional variables with defaults: PORT (8080),
// REQUEST_TIMEOUT (10s), SUMMARY_CACHE_TTL (30s), AUTH_RATE_LIMIT_RPS (5),
// AUTH_RATE_LIMIT_BURST (10), LOG_LEVEL (info).
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	cfg := &Config{
		Port:          "8080",
		JWTSecret:     secret,
		AdminKeyID:    os.Getenv("ADMIN_KEY_ID"),
		AuthRateRPS:   5,
		AuthRateBurst: 10,
		LogLevel:      slog.LevelInfo,
		DB:            db.LoadConfigFromEnv(),
		Redis:         infraredis.LoadConfigFromEnv(),
		Captcha:       captcha.LoadConfig(),
	}

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		cfg.Port = v
	}

	var err error
	if cfg.RequestTimeout, err = duration("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SummaryTTL, err = duration("SUMMARY_CACHE_TTL", 30*time.Second); err != nil {
		return nil, err
	}

	if v, ok := os.LookupEnv("AUTH_RATE_LIMIT_RPS"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return nil, fmt.Errorf("AUTH_RATE_LIMIT_RPS has invalid value %q", v)
		}
		cfg.AuthRateRPS = rps
	}
	if v, ok := os.LookupEnv("AUTH_RATE_LIMIT_BURST"); ok && v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("AUTH_RATE_LIMIT_BURST has invalid value %q", v)
		}
		cfg.AuthRateBurst = burst
	}

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL has invalid value %q: %w", v, err)
		}
	}

	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid duration %q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %q", key, v)
	}
	return d, nil
}
