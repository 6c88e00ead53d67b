// Package di provides dependency injection factories for creating application components.
package di

import (
	authhandler "learning_backend/internal/feature/auth/transport/handler"
	"learning_backend/internal/platform/captcha"
	infrahttp "learning_backend/internal/platform/http"
)

// NewCaptchaVerifier creates a reCAPTCHA client with its own bounded HTTP client.
// It returns a nil interface when no CAPTCHA secret is configured, which disables the check.
func NewCaptchaVerifier(cfg captcha.Config) authhandler.CaptchaVerifier {
	if !cfg.Enabled() {
		return nil
	}
	return captcha.NewRecaptchaClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}
