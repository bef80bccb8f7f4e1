package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small positive", 0.001, true},
		{"Very small negative", -0.001, true},
		{"Just above tolerance", 0.02, false},
		{"Large positive", 100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsZero(tt.input)
			if result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Identical values", 5.0, 5.0, 0.01, true},
		{"Within tolerance", 5.0, 5.005, 0.01, true},
		{"Outside tolerance", 5.0, 5.02, 0.01, false},
		{"Negative values within", -5.0, -5.005, 0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestMinMaxInt(t *testing.T) {
	if got := MinInt(3, 7); got != 3 {
		t.Errorf("MinInt(3, 7) = %d, expected 3", got)
	}
	if got := MinInt(7, 3); got != 3 {
		t.Errorf("MinInt(7, 3) = %d, expected 3", got)
	}
	if got := MaxInt(3, 7); got != 7 {
		t.Errorf("MaxInt(3, 7) = %d, expected 7", got)
	}
	if got := MaxInt(-3, -7); got != -3 {
		t.Errorf("MaxInt(-3, -7) = %d, expected -3", got)
	}
	if got := MaxInt(0, 0); got != 0 {
		t.Errorf("MaxInt(0, 0) = %d, expected 0", got)
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"Empty sums to zero", nil, 0.0},
		{"Single value", []float64{2.5}, 2.5},
		{"Mixed signs", []float64{1.0, -3.0, 2.0}, 0.0},
		{"Accumulates left to right", []float64{0.1, 0.2, 0.3}, 0.1 + 0.2 + 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sum(tt.values)
			if result != tt.expected {
				t.Errorf("Sum(%v) = %v, expected %v", tt.values, result, tt.expected)
			}
		})
	}
}
