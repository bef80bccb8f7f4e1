package validation

import (
	"fmt"
	"math"

	"github.com/iwvelando/newsvendor-planner/pkg/constants"
)

// ValidatePricing checks the pricing parameters and returns warnings for
// values that are syntactically valid but almost certainly mistakes.
func ValidatePricing(primaryPrice, secondaryPrice, costPerUnit float64) []string {
	var warnings []string

	if primaryPrice <= 0 {
		warnings = append(warnings, fmt.Sprintf("Primary price %.2f is not positive", primaryPrice))
	}
	if secondaryPrice <= 0 {
		warnings = append(warnings, fmt.Sprintf("Secondary price %.2f is not positive", secondaryPrice))
	}
	if costPerUnit <= 0 {
		warnings = append(warnings, fmt.Sprintf("Cost per unit %.2f is not positive", costPerUnit))
	}
	if secondaryPrice > primaryPrice {
		warnings = append(warnings, fmt.Sprintf("Secondary price %.2f exceeds primary price %.2f - surplus units would sell above the regular price",
			secondaryPrice, primaryPrice))
	}

	return warnings
}

// ValidateScenario checks the order/demand/probability sequences and returns
// warnings. Probabilities not summing to 1.0 produce a weighted sum rather
// than a true expectation, so that case warns instead of failing.
func ValidateScenario(orders, demands []int, probabilities []float64) []string {
	var warnings []string

	if len(orders) == 0 {
		warnings = append(warnings, "Scenario has no candidate order quantities")
	}
	if len(demands) == 0 {
		warnings = append(warnings, "Scenario has no demand levels")
	}
	if len(probabilities) != len(demands) {
		warnings = append(warnings, fmt.Sprintf("Probability count %d does not match demand count %d",
			len(probabilities), len(demands)))
	}

	for i, p := range probabilities {
		if p < 0 || p > 1 {
			warnings = append(warnings, fmt.Sprintf("Probability %g at index %d is outside [0,1]", p, i))
		}
	}

	if len(probabilities) > 0 && len(probabilities) == len(demands) {
		sum := 0.0
		for _, p := range probabilities {
			sum += p
		}
		if math.Abs(sum-1.0) > constants.ProbabilitySumTolerance {
			warnings = append(warnings, fmt.Sprintf("Probabilities sum to %g rather than 1.0 - expected profits will be a weighted sum, not a true expectation", sum))
		}
	}

	seen := make(map[int]int)
	for i, order := range orders {
		if j, ok := seen[order]; ok {
			warnings = append(warnings, fmt.Sprintf("Order quantity %d appears at indices %d and %d - duplicates are evaluated independently", order, j, i))
		} else {
			seen[order] = i
		}
	}

	return warnings
}
