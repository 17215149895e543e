package utils

import "testing"

func TestDerivePayout(t *testing.T) {
	tests := []struct {
		name     string
		invested float64
		pct      float64
		expected float64
	}{
		{
			name:     "standard investment",
			invested: 100000,
			pct:      2.00,
			expected: 2000.00,
		},
		{
			name:     "zero investment",
			invested: 0,
			pct:      5.00,
			expected: 0.00,
		},
		{
			name:     "fractional amount rounds half up",
			invested: 333.33,
			pct:      2.50,
			expected: 8.33,
		},
		{
			name:     "exact half rounds up",
			invested: 205,
			pct:      2.50,
			expected: 5.13,
		},
		{
			name:     "full percentage",
			invested: 50000,
			pct:      100,
			expected: 50000.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DerivePayout(tt.invested, tt.pct)
			if result != tt.expected {
				t.Errorf("DerivePayout(%v, %v) = %v; want %v", tt.invested, tt.pct, result, tt.expected)
			}
		})
	}
}
