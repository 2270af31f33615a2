// Package scenarios loads the canonical YAML fixtures used to exercise the
// ingredient parser end to end, mirroring how the teacher repo's spec
// package loads its own canonical.yaml/extended.yaml test data.
package scenarios

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Amount mirrors ingredient.Amount in a YAML-friendly shape, kept separate
// from the root package's type so this package never imports it; the
// external scenarios_test package imports both and converts between them
// to drive fixtures against the real parser.
type Amount struct {
	Unit       string   `yaml:"unit"`
	Value      float64  `yaml:"value"`
	UpperValue *float64 `yaml:"upper_value,omitempty"`
}

// Expected is the parsed shape a scenario expects Parser.Parse to produce.
type Expected struct {
	Name     string   `yaml:"name"`
	Amounts  []Amount `yaml:"amounts"`
	Modifier string   `yaml:"modifier,omitempty"`
}

// Scenario is one canonical line and what parsing it should produce, or the
// ParseError.Reason expected if parsing should fail.
type Scenario struct {
	Source      string    `yaml:"source"`
	Expected    *Expected `yaml:"expected,omitempty"`
	ExpectedErr string    `yaml:"expected_err,omitempty"`
}

// CanonicalTests is the top-level shape of a scenario YAML file.
type CanonicalTests struct {
	Tests map[string]Scenario `yaml:"tests"`
}

// ParseFile reads a YAML file at path and unmarshals it into out.
func ParseFile(path string, out *CanonicalTests) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}
	return ParseData(data, out)
}

// ParseData unmarshals YAML scenario data into out.
func ParseData(data []byte, out *CanonicalTests) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal scenarios: %w", err)
	}
	return nil
}
