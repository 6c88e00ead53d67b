package jwtmw

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"learning_backend/internal/shared/apperror"
)

var (
	// ErrTokenMissing is returned when no bearer token was presented.
	ErrTokenMissing = apperror.New(apperror.KindUnauthorized, "TOKEN_MISSING", "session lacks an authentication token!")
	// ErrTokenInvalid covers malformed, badly signed and expired tokens alike.
	ErrTokenInvalid = apperror.New(apperror.KindUnauthorized, "TOKEN_INVALID", "provided token does not correspond to a valid session!")
	// ErrKeyIDMismatch is returned when a route requires a keyid the token does not carry.
	// It answers 403 but still satisfies errors.Is(err, ErrTokenInvalid).
	ErrKeyIDMismatch = apperror.New(apperror.KindForbidden, "TOKEN_KEYID_MISMATCH", "provided token does not have the required keyid!").Wrap(ErrTokenInvalid)
)

// Claims is the verified content of a token.
// UserID is zero for registration tokens, which only carry an email.
type Claims struct {
	UserID    uint
	Email     string
	KeyID     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Verifier checks signature and expiry of tokens issued by Issuer.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier creates a Verifier for the given secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), now: time.Now}
}

// Verify parses tokenStr and, when requiredKeyID is non-empty, checks the keyid claim.
// Expiry is evaluated now, not at issuance.
func (v *Verifier) Verify(tokenStr, requiredKeyID string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrTokenMissing
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)

	mc := jwt.MapClaims{}
	token, err := parser.ParseWithClaims(tokenStr, mc, func(t *jwt.Token) (interface{}, error) {
		// only HMAC is accepted
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid.Wrap(err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{}
	if email, ok := mc[ClaimEmail].(string); ok {
		claims.Email = email
	}
	// JSON numbers decode as float64
	if id, ok := mc[ClaimUserID].(float64); ok && id > 0 {
		claims.UserID = uint(id)
	}
	if kid, ok := mc[ClaimKeyID].(string); ok {
		claims.KeyID = kid
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	if requiredKeyID != "" && claims.KeyID != requiredKeyID {
		return nil, ErrKeyIDMismatch
	}
	return claims, nil
}
