// Package jwtmw issues and verifies HS256 bearer tokens and provides the gin auth middleware.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeyJWTSecret names the environment variable holding the signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// Claim names embedded in issued tokens.
const (
	ClaimEmail  = "email"
	ClaimUserID = "userId"
	ClaimKeyID  = "keyid"
)

// Issuer signs tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer creates an Issuer for the given secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// Issue signs claims plus iat and exp, where exp = iat + ttl.
// Caller-supplied iat and exp values are overwritten.
func (i *Issuer) Issue(claims map[string]any, ttl time.Duration) (string, error) {
	now := i.now()

	mc := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
