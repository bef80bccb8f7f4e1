package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"Pretty", "pretty", false},
		{"CSV", "csv", false},
		{"Unknown", "xml", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePricing(t *testing.T) {
	tests := []struct {
		name      string
		primary   float64
		secondary float64
		cost      float64
		warnings  int
	}{
		{"Valid defaults", 49000, 15000, 25000, 0},
		{"Zero primary", 0, 15000, 25000, 1},
		{"Negative cost", 49000, 15000, -1, 1},
		{"Secondary above primary", 10000, 20000, 5000, 1},
		{"Everything wrong", 0, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidatePricing(tt.primary, tt.secondary, tt.cost)
			if len(warnings) != tt.warnings {
				t.Errorf("got %d warnings %v, expected %d", len(warnings), warnings, tt.warnings)
			}
		})
	}
}

func TestValidateScenario(t *testing.T) {
	orders := []int{100, 150, 200}
	demands := []int{100, 150, 200}
	probabilities := []float64{0.2, 0.3, 0.5}

	t.Run("Valid scenario", func(t *testing.T) {
		warnings := ValidateScenario(orders, demands, probabilities)
		if len(warnings) != 0 {
			t.Errorf("got unexpected warnings: %v", warnings)
		}
	})

	t.Run("Probabilities not summing to one", func(t *testing.T) {
		warnings := ValidateScenario(orders, demands, []float64{0.2, 0.2, 0.2})
		if len(warnings) != 1 || !strings.Contains(warnings[0], "sum to") {
			t.Errorf("expected one sum warning, got %v", warnings)
		}
	})

	t.Run("Probability out of range", func(t *testing.T) {
		warnings := ValidateScenario(orders, demands, []float64{-0.5, 0.5, 1.0})
		found := false
		for _, w := range warnings {
			if strings.Contains(w, "outside [0,1]") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected out-of-range warning, got %v", warnings)
		}
	})

	t.Run("Count mismatch", func(t *testing.T) {
		warnings := ValidateScenario(orders, demands, []float64{0.5, 0.5})
		if len(warnings) != 1 || !strings.Contains(warnings[0], "does not match") {
			t.Errorf("expected one mismatch warning, got %v", warnings)
		}
	})

	t.Run("Duplicate orders", func(t *testing.T) {
		warnings := ValidateScenario([]int{100, 100}, demands, probabilities)
		found := false
		for _, w := range warnings {
			if strings.Contains(w, "appears at indices") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected duplicate warning, got %v", warnings)
		}
	})

	t.Run("Empty sequences", func(t *testing.T) {
		warnings := ValidateScenario(nil, nil, nil)
		if len(warnings) != 2 {
			t.Errorf("expected warnings for empty orders and demands, got %v", warnings)
		}
	})
}
