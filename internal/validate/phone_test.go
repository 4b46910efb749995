package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddCountryIndicator(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"local nine digits", "923111222", "244923111222"},
		{"already prefixed", "244923111222", "244923111222"},
		{"international 00 prefix", "00244923111222", "244923111222"},
		{"plus prefix", "+244923111222", "244923111222"},
		{"spaces and dashes", "923 111-222", "244923111222"},
		{"short local number", "12345", "24412345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddCountryIndicator(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAddCountryIndicatorEmpty(t *testing.T) {
	_, err := AddCountryIndicator("---")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
