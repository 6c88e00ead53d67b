// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"learning_backend/internal/api"
	"learning_backend/internal/feature/auth/domain/entity"
	"learning_backend/internal/feature/auth/transport/http/dto"
	"learning_backend/internal/shared/apperror"
	"learning_backend/internal/shared/inputguard"
)

// ErrMissingCredentials is returned when email or password is absent from the body.
var ErrMissingCredentials = apperror.New(apperror.KindValidation, "PAYLOAD_UNDEFINED", "email and password are required")

// AuthUsecase is the auth business logic used by the handler.
// Interfaces are declared by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, email, password, createdAt, role string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// CaptchaVerifier confirms a client-side CAPTCHA response.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// AuthHandler serves /auth/register and /auth/login.
type AuthHandler struct {
	auth    AuthUsecase
	captcha CaptchaVerifier
	now     func() time.Time
}

// NewAuthHandler creates an AuthHandler. captcha may be nil to skip CAPTCHA checks.
func NewAuthHandler(auth AuthUsecase, captcha CaptchaVerifier) *AuthHandler {
	return &AuthHandler{auth: auth, captcha: captcha, now: time.Now}
}

// Register handles POST /auth/register.
//   - 400 on a missing field, a denylisted character or a password policy violation
//   - 403 when CAPTCHA verification fails
//   - 409 when the email is taken
//   - 201 with a one-hour registration token on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteError(c, ErrMissingCredentials.Wrap(err))
		return
	}
	if err := inputguard.Check(req.Email, req.Password); err != nil {
		slog.Warn("register rejected by input guard", "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}
	if !h.verifyCaptcha(c, req.RecaptchaToken) {
		return
	}

	createdAt := h.now().UTC().Format(entity.CreatedAtLayout)
	token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, createdAt, entity.DefaultRole)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.TokenResponse{
		Success: "You have been successfully registered.",
		Token:   token,
	})
}

// Login handles POST /auth/login.
//   - 400 on a missing field or a denylisted character
//   - 401 on an unknown email or a wrong password, with one shared message
//   - 200 with a thirty-day session token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteError(c, ErrMissingCredentials.Wrap(err))
		return
	}
	if err := inputguard.Check(req.Email, req.Password); err != nil {
		slog.Warn("login rejected by input guard", "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}
	if !h.verifyCaptcha(c, req.RecaptchaToken) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{
		Success: "successfully logged in!",
		Token:   token,
	})
}

// verifyCaptcha writes the error response and returns false when verification fails.
func (h *AuthHandler) verifyCaptcha(c *gin.Context, token string) bool {
	if h.captcha == nil {
		return true
	}
	if err := h.captcha.Verify(c.Request.Context(), token, c.ClientIP()); err != nil {
		slog.Warn("captcha verification failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return false
	}
	return true
}
