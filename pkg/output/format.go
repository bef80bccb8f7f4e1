// Package output provides utilities for formatting and displaying computed plans.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/newsvendor-planner/internal/planner"
	"github.com/iwvelando/newsvendor-planner/pkg/grid"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(plan *planner.Plan) {
	fmt.Print(PrettyString(plan))
}

// PrettyString renders the report PrettyFormat prints: the profit matrix,
// the expected value matrix, the per-order expected profits, and the optimal
// decision, with numeric cells to two decimal places in fixed-width columns.
func PrettyString(plan *planner.Plan) string {
	var b strings.Builder

	writeTable(&b, plan, plan.Profits, "Profit Matrix")
	b.WriteString("\n")
	writeTable(&b, plan, plan.ExpectedValues, "Expected Values (eij*qj)")

	b.WriteString("\nExpected Profits:\n")
	for i, order := range plan.Orders {
		fmt.Fprintf(&b, "For Order %d: Expected Profit = %.2f dollars\n", order, plan.ExpectedProfits[i])
	}

	fmt.Fprintf(&b, "\nOptimal order quantity: %d\nOptimal expected profit: %.2f dollars\n",
		plan.Optimal.Order, plan.Optimal.ExpectedProfit)

	return b.String()
}

// writeTable renders one matrix with a header row of demand labels and one
// row per order quantity.
func writeTable(b *strings.Builder, plan *planner.Plan, matrix grid.Grid, title string) {
	b.WriteString(title + "\n")
	fmt.Fprintf(b, "%-12s", "Order\\Demand")
	for _, demand := range plan.Demands {
		fmt.Fprintf(b, "%11d", demand)
	}
	b.WriteString("\n")

	for i, order := range plan.Orders {
		fmt.Fprintf(b, "%-12s", fmt.Sprintf("Order %d", order))
		for j := 0; j < matrix.Cols(); j++ {
			fmt.Fprintf(b, "%11.2f", matrix.At(i, j))
		}
		b.WriteString("\n")
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(plan *planner.Plan) {
	fmt.Print(CsvString(plan))
}

// CsvString renders the plan as CSV: both matrices, the expected profit
// listing, and the optimal decision, separated by blank lines.
func CsvString(plan *planner.Plan) string {
	var b strings.Builder

	writeCsvMatrix(&b, plan, plan.Profits, "Profit Matrix")
	b.WriteString("\n")
	writeCsvMatrix(&b, plan, plan.ExpectedValues, "Expected Values (eij*qj)")

	b.WriteString("\n\"Expected Profits\"\n")
	b.WriteString(`"order","expectedProfit"` + "\n")
	for i, order := range plan.Orders {
		fmt.Fprintf(&b, "\"%d\",\"%.2f\"\n", order, plan.ExpectedProfits[i])
	}

	b.WriteString("\n\"Optimal\"\n")
	b.WriteString(`"order","expectedProfit"` + "\n")
	fmt.Fprintf(&b, "\"%d\",\"%.2f\"\n", plan.Optimal.Order, plan.Optimal.ExpectedProfit)

	return b.String()
}

func writeCsvMatrix(b *strings.Builder, plan *planner.Plan, matrix grid.Grid, title string) {
	fmt.Fprintf(b, "%q\n", title)
	b.WriteString(`"order"`)
	for _, demand := range plan.Demands {
		fmt.Fprintf(b, ",\"%d\"", demand)
	}
	b.WriteString("\n")

	for i, order := range plan.Orders {
		fmt.Fprintf(b, "\"%d\"", order)
		for j := 0; j < matrix.Cols(); j++ {
			fmt.Fprintf(b, ",\"%.2f\"", matrix.At(i, j))
		}
		b.WriteString("\n")
	}
}
