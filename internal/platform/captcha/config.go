// Package captcha verifies reCAPTCHA response tokens against Google's siteverify API.
package captcha

import (
	"os"
	"time"
)

// DefaultVerifyURL is the reCAPTCHA siteverify endpoint.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Config holds configuration for the reCAPTCHA client.
type Config struct {
	Secret    string        // server-side secret key
	VerifyURL string        // siteverify endpoint
	Timeout   time.Duration // whole-request timeout
}

// Enabled reports whether a secret is configured.
func (c Config) Enabled() bool {
	return c.Secret != ""
}

// LoadConfig loads reCAPTCHA configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		Secret:    os.Getenv("CAPTCHA_SECRET"),
		VerifyURL: os.Getenv("CAPTCHA_VERIFY_URL"),
		Timeout:   5 * time.Second,
	}
	if cfg.VerifyURL == "" {
		cfg.VerifyURL = DefaultVerifyURL
	}
	if v := os.Getenv("CAPTCHA_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}
