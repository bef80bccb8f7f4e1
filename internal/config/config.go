// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/newsvendor-planner/pkg/constants"
	"github.com/iwvelando/newsvendor-planner/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for newsvendor-planner.
type Configuration struct {
	Pricing  Pricing
	Scenario Scenario
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// Pricing holds the two-tier pricing parameters. PrimaryPrice applies to
// units that satisfy demand, SecondaryPrice to surplus units liquidated
// beyond demand, and CostPerUnit to every unit ordered.
type Pricing struct {
	PrimaryPrice   float64 `yaml:"primaryPrice,omitempty"`
	SecondaryPrice float64 `yaml:"secondaryPrice,omitempty"`
	CostPerUnit    float64 `yaml:"costPerUnit,omitempty"`
}

// Scenario holds the candidate order quantities, the demand levels, and the
// probability assigned to each demand level. Probabilities are index-aligned
// with Demands and should sum to 1.0 for a true expectation; this is a
// documented precondition rather than an enforced invariant.
type Scenario struct {
	Orders        []int     `yaml:"orders,omitempty"`
	Demands       []int     `yaml:"demands,omitempty"`
	Probabilities []float64 `yaml:"probabilities,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// DefaultConfiguration returns the built-in reference configuration: the
// five-point order/demand scenario with the documented default pricing.
func DefaultConfiguration() *Configuration {
	conf := &Configuration{}
	conf.ApplyDefaults()
	return conf
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// LoadConfigurationFromReader loads YAML-formatted configuration from an
// in-memory source, e.g. an HTTP upload.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills any unset pricing parameters and, when the scenario is
// entirely absent, substitutes the reference scenario. A partially specified
// scenario is left alone so validation can report on it.
func (conf *Configuration) ApplyDefaults() {
	if conf.Pricing.PrimaryPrice == 0 {
		conf.Pricing.PrimaryPrice = constants.DefaultPrimaryPrice
	}
	if conf.Pricing.SecondaryPrice == 0 {
		conf.Pricing.SecondaryPrice = constants.DefaultSecondaryPrice
	}
	if conf.Pricing.CostPerUnit == 0 {
		conf.Pricing.CostPerUnit = constants.DefaultCostPerUnit
	}

	if len(conf.Scenario.Orders) == 0 && len(conf.Scenario.Demands) == 0 && len(conf.Scenario.Probabilities) == 0 {
		conf.Scenario.Orders = append([]int(nil), constants.DefaultOrders...)
		conf.Scenario.Demands = append([]int(nil), constants.DefaultDemands...)
		conf.Scenario.Probabilities = append([]float64(nil), constants.DefaultProbabilities...)
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard precondition violations (negative quantities,
// dimension mismatches) are reported by the planner itself when it runs.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	warnings = append(warnings, validation.ValidatePricing(conf.Pricing.PrimaryPrice, conf.Pricing.SecondaryPrice, conf.Pricing.CostPerUnit)...)
	warnings = append(warnings, validation.ValidateScenario(conf.Scenario.Orders, conf.Scenario.Demands, conf.Scenario.Probabilities)...)
	return warnings
}
