package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"learning_backend/internal/shared/apperror"
)

// ErrVerificationFailed is returned when Google does not confirm the token.
var ErrVerificationFailed = apperror.New(apperror.KindForbidden, "RECAPTCHA_FAILED", "reCAPTCHA verification failed!")

// verifyResponse is the subset of the siteverify response we read.
type verifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// RecaptchaClient calls the siteverify endpoint.
type RecaptchaClient struct {
	cfg    Config
	client *http.Client
}

// NewRecaptchaClient creates a client with the given configuration and HTTP client.
func NewRecaptchaClient(cfg Config, client *http.Client) *RecaptchaClient {
	return &RecaptchaClient{cfg: cfg, client: client}
}

// Verify confirms token with Google. remoteIP is optional.
// An empty token, a rejected token and an unreachable endpoint all fail with ErrVerificationFailed.
func (r *RecaptchaClient) Verify(ctx context.Context, token, remoteIP string) error {
	if token == "" {
		return ErrVerificationFailed
	}

	form := url.Values{}
	form.Set("secret", r.cfg.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return ErrVerificationFailed.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := r.client.Do(req)
	if err != nil {
		return ErrVerificationFailed.Wrap(err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return ErrVerificationFailed.Wrap(fmt.Errorf("siteverify http %d", res.StatusCode))
	}

	var body verifyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return ErrVerificationFailed.Wrap(err)
	}
	if !body.Success {
		return ErrVerificationFailed.Wrap(fmt.Errorf("siteverify rejected token: %v", body.ErrorCodes))
	}
	return nil
}
