package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/newsvendor-planner/internal/config"
	"github.com/iwvelando/newsvendor-planner/internal/planner"
)

func testPlan(t *testing.T) *planner.Plan {
	t.Helper()
	plan, err := planner.ComputePlan(nil, *config.DefaultConfiguration())
	if err != nil {
		t.Fatalf("failed to compute test plan: %v", err)
	}
	return plan
}

func TestPrettyString(t *testing.T) {
	out := PrettyString(testPlan(t))

	checks := []string{
		"Profit Matrix",
		"Expected Values (eij*qj)",
		"Order\\Demand",
		"Order 100",
		"Order 300",
		"2400000.00",
		"400000.00",
		"Expected Profits:",
		"For Order 100: Expected Profit = 2400000.00 dollars",
		"For Order 250: Expected Profit = 4555000.00 dollars",
		"Optimal order quantity: 250",
		"Optimal expected profit: 4555000.00 dollars",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("PrettyString output missing %q", want)
		}
	}
}

func TestPrettyStringColumnAlignment(t *testing.T) {
	out := PrettyString(testPlan(t))

	lines := strings.Split(out, "\n")
	var header, firstRow string
	for i, line := range lines {
		if strings.HasPrefix(line, "Order\\Demand") {
			header = line
			firstRow = lines[i+1]
			break
		}
	}
	if header == "" {
		t.Fatalf("header row not found in output")
	}

	// Label column is 12 wide, each of the five value columns 11 wide.
	want := 12 + 5*11
	if len(header) != want {
		t.Errorf("header width = %d, expected %d", len(header), want)
	}
	if len(firstRow) != want {
		t.Errorf("first row width = %d, expected %d", len(firstRow), want)
	}
	if !strings.HasSuffix(header, "        300") {
		t.Errorf("header = %q, expected right-aligned demand labels", header)
	}
}

func TestPrettyFormatWritesStdout(t *testing.T) {
	plan := testPlan(t)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	PrettyFormat(plan)

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if buf.String() != PrettyString(plan) {
		t.Errorf("PrettyFormat output differs from PrettyString")
	}
}

func TestCsvString(t *testing.T) {
	out := CsvString(testPlan(t))

	checks := []string{
		`"Profit Matrix"`,
		`"Expected Values (eij*qj)"`,
		`"order","100","150","200","250","300"`,
		`"100","2400000.00","2400000.00","2400000.00","2400000.00","2400000.00"`,
		`"300","400000.00","2100000.00","3800000.00","5500000.00","7200000.00"`,
		`"Expected Profits"`,
		`"order","expectedProfit"`,
		`"Optimal"`,
		`"250","4555000.00"`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("CsvString output missing %q", want)
		}
	}
}

func TestCsvFormatWritesStdout(t *testing.T) {
	plan := testPlan(t)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	CsvFormat(plan)

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if buf.String() != CsvString(plan) {
		t.Errorf("CsvFormat output differs from CsvString")
	}
}
