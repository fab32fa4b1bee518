package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineSubtotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		unitPrice float64
		want      float64
	}{
		{"single unit", 1, 9.99, 9.99},
		{"float noise removed", 3, 0.1, 0.3},
		{"fractional quantity", 0.5, 12.4, 6.2},
		{"zero quantity", 0, 4.5, 0},
		{"negative price for a discount line", 1, -2.5, -2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineSubtotal(tt.quantity, tt.unitPrice))
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum())
	assert.Equal(t, 0.6, Sum(0.1, 0.2, 0.3))
	assert.Equal(t, 10.0, Sum(12.5, -2.5))
}
