// Package domain holds the auth rules that do not depend on storage or transport.
package domain

import (
	"errors"

	"learning_backend/internal/shared/apperror"
)

// Password policy violations, in evaluation order.
var (
	ErrPasswordTooShort    = apperror.New(apperror.KindValidation, "PASSWORD_TOO_SHORT", "password needs to be at least 9 characters long")
	ErrPasswordTooLong     = apperror.New(apperror.KindValidation, "PASSWORD_TOO_LONG", "password must be at most 72 bytes long")
	ErrPasswordNoDigit     = apperror.New(apperror.KindValidation, "PASSWORD_NO_DIGIT", "password must contain at least one number")
	ErrPasswordNoUppercase = apperror.New(apperror.KindValidation, "PASSWORD_NO_UPPERCASE", "password must contain at least one uppercase letter")
	ErrPasswordNoSpecial   = apperror.New(apperror.KindValidation, "PASSWORD_NO_SPECIAL", "password must contain at least one special character")
)

// IsPolicyViolation reports whether err is one of the password policy errors.
func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPasswordTooLong) ||
		errors.Is(err, ErrPasswordNoDigit) ||
		errors.Is(err, ErrPasswordNoUppercase) ||
		errors.Is(err, ErrPasswordNoSpecial)
}
