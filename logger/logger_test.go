package logger

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSensitiveString(t *testing.T) {
	assert.Equal(t, "", MaskSensitiveString("", 2, 2))
	assert.Equal(t, "****", MaskSensitiveString("abcd", 2, 2))
	assert.Equal(t, "re...23", MaskSensitiveString("re_live_key_123", 2, 2))
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"empty", "", ""},
		{"regular address", "jonathan@example.com", "jo...n@example.com"},
		{"short local part", "ab@example.com", "**@example.com"},
		{"not an address", "not-an-email", "no...il"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.email))
		})
	}
}

func TestFilterSensitiveHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer abc")
	headers.Set("Idempotency-Key", "k-1")
	headers.Set("Content-Type", "application/json")

	filtered := filterSensitiveHeaders(headers)

	assert.Equal(t, "[REDACTED]", filtered["Authorization"])
	assert.Equal(t, "[REDACTED]", filtered["Idempotency-Key"])
	assert.Equal(t, "application/json", filtered["Content-Type"])
}
