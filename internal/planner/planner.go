// Package planner defines the data structures related to a newsvendor plan
// and includes functions for computing the plan: the per-cell profit
// function, the profit matrix, the probability-weighted expected values, and
// the optimal order selection.
package planner

import (
	"errors"
	"fmt"

	"github.com/iwvelando/newsvendor-planner/internal/config"
	"github.com/iwvelando/newsvendor-planner/pkg/grid"
	"github.com/iwvelando/newsvendor-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// Precondition violations surfaced by the pipeline. Callers match these with
// errors.Is; none are recoverable internally.
var (
	// ErrNegativeQuantity indicates a negative order or demand quantity.
	ErrNegativeQuantity = errors.New("order and demand quantities must be non-negative")

	// ErrDimensionMismatch indicates index-aligned sequences of unequal length.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrEmptyInput indicates an empty sequence where at least one candidate is required.
	ErrEmptyInput = errors.New("empty input")
)

// Decision is the order quantity selected by Optimize together with its
// expected profit.
type Decision struct {
	Order          int
	ExpectedProfit float64
}

// Plan holds all information related to one computed plan: the inputs it was
// computed from, both matrices, the per-order expected profits, and the
// optimal decision.
type Plan struct {
	Orders          []int
	Demands         []int
	Probabilities   []float64
	Profits         grid.Grid
	ExpectedValues  grid.Grid
	ExpectedProfits []float64
	Optimal         Decision
}

// Profit computes the profit of ordering order units when demand units are
// demanded, under the two-tier pricing rule: units up to demand sell at the
// primary price, surplus units at the secondary price, and the full order is
// paid for at cost regardless of what sells.
func Profit(pricing config.Pricing, order, demand int) (float64, error) {
	if order < 0 || demand < 0 {
		return 0, fmt.Errorf("%w: got order %d, demand %d", ErrNegativeQuantity, order, demand)
	}

	revenue := pricing.PrimaryPrice*float64(mathutil.MinInt(order, demand)) +
		pricing.SecondaryPrice*float64(mathutil.MaxInt(0, order-demand))
	totalCost := pricing.CostPerUnit * float64(order)

	return revenue - totalCost, nil
}

// BuildMatrix computes the profit for every (order, demand) combination.
// The result has len(orders) rows and len(demands) columns; empty inputs
// yield an empty grid, which is valid rather than an error.
func BuildMatrix(pricing config.Pricing, orders, demands []int) (grid.Grid, error) {
	matrix := grid.New(len(orders), len(demands))
	for i, order := range orders {
		for j, demand := range demands {
			profit, err := Profit(pricing, order, demand)
			if err != nil {
				return grid.Grid{}, err
			}
			matrix.Set(i, j, profit)
		}
	}
	return matrix, nil
}

// Weight multiplies every column of matrix by its demand probability,
// producing a grid of identical shape where cell (i,j) holds
// matrix(i,j) * probabilities[j].
func Weight(matrix grid.Grid, probabilities []float64) (grid.Grid, error) {
	if len(probabilities) != matrix.Cols() {
		return grid.Grid{}, fmt.Errorf("%w: %d probabilities for %d demand columns",
			ErrDimensionMismatch, len(probabilities), matrix.Cols())
	}

	weighted := grid.New(matrix.Rows(), matrix.Cols())
	for i := 0; i < matrix.Rows(); i++ {
		for j := 0; j < matrix.Cols(); j++ {
			weighted.Set(i, j, matrix.At(i, j)*probabilities[j])
		}
	}
	return weighted, nil
}

// ReduceRows sums each row of the weighted grid left to right, yielding one
// expected profit per order quantity. A row with zero columns sums to 0.0.
func ReduceRows(weighted grid.Grid) []float64 {
	expectedProfits := make([]float64, weighted.Rows())
	for i := range expectedProfits {
		expectedProfits[i] = mathutil.Sum(weighted.Row(i))
	}
	return expectedProfits
}

// Optimize scans the expected profits and returns the order quantity with
// the maximum value. Ties break to the first occurrence: a later equal value
// never replaces the incumbent.
func Optimize(orders []int, expectedProfits []float64) (Decision, error) {
	if len(orders) == 0 || len(expectedProfits) == 0 {
		return Decision{}, fmt.Errorf("%w: at least one candidate order is required", ErrEmptyInput)
	}
	if len(orders) != len(expectedProfits) {
		return Decision{}, fmt.Errorf("%w: %d orders but %d expected profits",
			ErrDimensionMismatch, len(orders), len(expectedProfits))
	}

	best := Decision{Order: orders[0], ExpectedProfit: expectedProfits[0]}
	for i := 1; i < len(expectedProfits); i++ {
		if expectedProfits[i] > best.ExpectedProfit {
			best = Decision{Order: orders[i], ExpectedProfit: expectedProfits[i]}
		}
	}
	return best, nil
}

// ComputePlan runs the full pipeline for the configured scenario: profit
// matrix, probability weighting, row reduction, and optimal order selection.
func ComputePlan(logger *zap.Logger, conf config.Configuration) (*Plan, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	scenario := conf.Scenario
	logger.Debug("computing plan",
		zap.String("op", "planner.ComputePlan"),
		zap.Int("orders", len(scenario.Orders)),
		zap.Int("demands", len(scenario.Demands)),
	)

	profits, err := BuildMatrix(conf.Pricing, scenario.Orders, scenario.Demands)
	if err != nil {
		return nil, err
	}

	expectedValues, err := Weight(profits, scenario.Probabilities)
	if err != nil {
		return nil, err
	}

	expectedProfits := ReduceRows(expectedValues)

	optimal, err := Optimize(scenario.Orders, expectedProfits)
	if err != nil {
		return nil, err
	}

	logger.Debug("plan computed",
		zap.String("op", "planner.ComputePlan"),
		zap.Int("optimalOrder", optimal.Order),
		zap.Float64("optimalExpectedProfit", optimal.ExpectedProfit),
	)

	return &Plan{
		Orders:          append([]int(nil), scenario.Orders...),
		Demands:         append([]int(nil), scenario.Demands...),
		Probabilities:   append([]float64(nil), scenario.Probabilities...),
		Profits:         profits,
		ExpectedValues:  expectedValues,
		ExpectedProfits: expectedProfits,
		Optimal:         optimal,
	}, nil
}
