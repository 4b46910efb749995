package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "0,00 Kz"},
		{"small", 950, "950,00 Kz"},
		{"thousands", 1500.5, "1.500,50 Kz"},
		{"millions", 12345678.9, "12.345.678,90 Kz"},
		{"rounds cents", 10.999, "11,00 Kz"},
		{"negative", -2500, "-2.500,00 Kz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatCurrency(tt.amount))
		})
	}
}
