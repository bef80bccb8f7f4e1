// Package constants provides shared constants for the newsvendor-planner application.
package constants

// Pricing defaults
const (
	// DefaultPrimaryPrice is the sale price for units that satisfy demand
	DefaultPrimaryPrice = 49000.00

	// DefaultSecondaryPrice is the clearance price for surplus units
	DefaultSecondaryPrice = 15000.00

	// DefaultCostPerUnit is the procurement cost applied to the full order
	DefaultCostPerUnit = 25000.00
)

// Default scenario data. These reproduce the reference scenario used for
// compatibility testing; real runs supply their own via configuration.
var (
	// DefaultOrders is the default candidate order quantity sequence
	DefaultOrders = []int{100, 150, 200, 250, 300}

	// DefaultDemands is the default demand level sequence
	DefaultDemands = []int{100, 150, 200, 250, 300}

	// DefaultProbabilities is the default demand probability vector (sums to 1.0)
	DefaultProbabilities = []float64{0.1, 0.15, 0.25, 0.3, 0.2}
)

// Numeric constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// ProbabilitySumTolerance is how far a probability vector's sum may
	// drift from 1.0 before a configuration warning is raised
	ProbabilitySumTolerance = 1e-9
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
