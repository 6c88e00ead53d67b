// Package inputguard rejects request fields that carry characters commonly used in SQL injection.
// It runs before any usecase call and sits on top of parameterized queries, never instead of them.
package inputguard

import (
	"strings"

	"learning_backend/internal/shared/apperror"
)

// denylist holds single quote, backslash, NUL, LF, CR, double quote and SUB (0x1A).
const denylist = "'\\\x00\n\r\"\x1a"

// ErrRejected is deliberately vague so that a probe learns nothing about the filter.
var ErrRejected = apperror.New(apperror.KindValidation, "UNKNOWN_ERROR", "An unknown error has occurred.")

// Contains reports whether s holds any denylisted character.
func Contains(s string) bool {
	return strings.ContainsAny(s, denylist)
}

// Check returns ErrRejected if any field holds a denylisted character.
func Check(fields ...string) error {
	for _, f := range fields {
		if Contains(f) {
			return ErrRejected
		}
	}
	return nil
}

// CheckOptional is Check for pointer fields; nil values are skipped.
func CheckOptional(fields ...*string) error {
	for _, f := range fields {
		if f != nil && Contains(*f) {
			return ErrRejected
		}
	}
	return nil
}
