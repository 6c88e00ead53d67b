package jwtmw

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"learning_backend/internal/api"
	"learning_backend/internal/shared/apperror"
)

var (
	// ErrUnauthorizedUser is returned when the token carries no user ID (e.g. a registration token).
	ErrUnauthorizedUser = apperror.New(apperror.KindUnauthorized, "UNAUTHORIZED_USER", "Unauthorized user")

	// ErrInvalidUserID is returned when the path user ID is not a positive integer.
	ErrInvalidUserID = apperror.New(apperror.KindValidation, "INVALID_USER_ID", "Invalid user id")

	// ErrUserMismatch is returned when the path user ID is not the caller's.
	ErrUserMismatch = apperror.New(apperror.KindForbidden, "INVALID_USER_ID", "Invalid user id")
)

// Keys under which AuthRequired stores the verified identity.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextClaims = "claims"
)

// TokenVerifier is satisfied by *Verifier.
type TokenVerifier interface {
	Verify(tokenStr, requiredKeyID string) (*Claims, error)
}

// AuthRequired returns a Gin middleware that rejects requests without a valid bearer token.
// A non-empty requiredKeyID additionally restricts the route to tokens carrying that keyid.
func AuthRequired(v TokenVerifier, requiredKeyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Verify(bearerToken(c.GetHeader("Authorization")), requiredKeyID)
		if err != nil {
			slog.Warn("token verification failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
			api.WriteError(c, err)
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextEmail, claims.Email)
		if claims.UserID != 0 {
			c.Set(ContextUserID, claims.UserID)
		}
		c.Next()
	}
}

// UserIDFrom returns the authenticated user ID, if the token carried one.
func UserIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// PathUser resolves the user ID path parameter named param and checks it against the token.
// Routes scoped to a learner use it so that one user cannot read or write another's data.
func PathUser(c *gin.Context, param string) (uint, error) {
	tokenUserID, ok := UserIDFrom(c)
	if !ok {
		return 0, ErrUnauthorizedUser
	}
	userID, err := api.PathID(c, param, ErrInvalidUserID)
	if err != nil {
		return 0, err
	}
	if userID != tokenUserID {
		slog.Warn("user scoped access denied", "path_user_id", userID, "token_user_id", tokenUserID, "remote_addr", c.ClientIP())
		return 0, ErrUserMismatch
	}
	return userID, nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
