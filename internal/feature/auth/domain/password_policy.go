package domain

import "unicode/utf8"

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 9

// MaxPasswordBytes is the most bcrypt will hash. It is counted in bytes.
const MaxPasswordBytes = 72

// ValidatePassword checks candidate against the password policy.
// Rules run in a fixed order and the first failure is returned:
// length, digit, uppercase letter, special character.
// A password longer than MaxPasswordBytes fails right after the minimum length check.
func ValidatePassword(candidate string) error {
	if utf8.RuneCountInString(candidate) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(candidate) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	var hasDigit, hasUpper, hasSpecial bool
	for _, r := range candidate {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z', r == '_':
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasDigit:
		return ErrPasswordNoDigit
	case !hasUpper:
		return ErrPasswordNoUppercase
	case !hasSpecial:
		return ErrPasswordNoSpecial
	}
	return nil
}
