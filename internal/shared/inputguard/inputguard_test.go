package inputguard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  []string
		wantErr bool
	}{
		{"clean fields", []string{"user@example.com", "Passw0rd!x"}, false},
		{"no fields", nil, false},
		{"single quote", []string{"a' OR '1'='1"}, true},
		{"backslash", []string{`abc\`}, true},
		{"nul byte", []string{"abc\x00def"}, true},
		{"newline", []string{"line\nbreak"}, true},
		{"carriage return", []string{"line\rbreak"}, true},
		{"double quote", []string{`say "hi"`}, true},
		{"sub control char", []string{"abc\x1a"}, true},
		{"literal escape text is allowed", []string{"x1a"}, false},
		{"second field dirty", []string{"ok", "bad'"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Check(tt.fields...)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrRejected))
				assert.Equal(t, "An unknown error has occurred.", err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckOptional(t *testing.T) {
	t.Parallel()

	clean := "Intro to Go"
	dirty := "O'Reilly"

	assert.NoError(t, CheckOptional(nil, &clean))
	assert.ErrorIs(t, CheckOptional(&clean, nil, &dirty), ErrRejected)
}
