package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		wantErr   error
	}{
		{"valid", "Str0ng!pass", nil},
		{"valid with space as special", "Str0ng pass", nil},
		{"valid with non-ascii special", "Str0ngpassé", nil},
		{"empty", "", ErrPasswordTooShort},
		{"eight chars with everything else", "Ab1!Ab1!", ErrPasswordTooShort},
		{"short beats missing digit", "abc", ErrPasswordTooShort},
		{"exactly nine passes length", "Abcdefg1!", nil},
		{"no digit", "Abcdefgh!", ErrPasswordNoDigit},
		{"no digit and no upper reports digit", "abcdefgh!", ErrPasswordNoDigit},
		{"no uppercase", "abcdefg1!", ErrPasswordNoUppercase},
		{"no uppercase and no special reports uppercase", "abcdefgh1", ErrPasswordNoUppercase},
		{"no special", "Abcdefgh1", ErrPasswordNoSpecial},
		{"underscore is a word character", "Abcdefg1_", ErrPasswordNoSpecial},
		{"multibyte counts as one char", "Ab1!éééé", ErrPasswordTooShort},
		{"exactly 72 ascii bytes", "Ab1!" + strings.Repeat("a", 68), nil},
		{"73 ascii bytes", "Ab1!" + strings.Repeat("a", 69), ErrPasswordTooLong},
		{"44 chars but 84 bytes", "Aa1!" + strings.Repeat("é", 40), ErrPasswordTooLong},
		{"too long beats missing digit", strings.Repeat("a", 80), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(tt.candidate)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "want %v, got %v", tt.wantErr, err)
			assert.True(t, IsPolicyViolation(err))
		})
	}
}

// Any password under the minimum length fails on length, whatever else it contains.
func TestValidatePassword_ShortAlwaysLength(t *testing.T) {
	t.Parallel()

	alphabet := []string{"a", "Z", "7", "!", "_", " "}
	for n := 0; n < MinPasswordLength; n++ {
		for _, ch := range alphabet {
			candidate := strings.Repeat(ch, n)
			assert.ErrorIs(t, ValidatePassword(candidate), ErrPasswordTooShort, "candidate %q", candidate)
		}
		mixed := strings.Repeat("A1!", 3)[:n]
		assert.ErrorIs(t, ValidatePassword(mixed), ErrPasswordTooShort, "candidate %q", mixed)
	}
}

func TestIsPolicyViolation(t *testing.T) {
	t.Parallel()

	assert.False(t, IsPolicyViolation(nil))
	assert.False(t, IsPolicyViolation(errors.New("password must contain at least one number")))
	assert.True(t, IsPolicyViolation(ErrPasswordNoSpecial))
}
