package ingredient

import (
	"os"

	"github.com/goccy/go-yaml"
)

// yamlVocabulary is the on-disk shape for a unit/adjective vocabulary file: a
// single yaml.Unmarshal call into a plain struct, no custom UnmarshalYAML.
type yamlVocabulary struct {
	Units []struct {
		Canonical       string   `yaml:"canonical"`
		Kind            string   `yaml:"kind"`
		Aliases         []string `yaml:"aliases"`
		SingleLetter    bool     `yaml:"single_letter"`
		DigitBoundaryOK bool     `yaml:"digit_boundary_ok"`
	} `yaml:"units"`
	Adjectives []string `yaml:"adjectives"`
}

// WithUnitsFromYAML returns an Option that adds the units and adjectives
// described by YAML data in the vocabulary file shape above, for callers who
// want to configure a Parser from a config file rather than Go literals.
func WithUnitsFromYAML(data []byte) Option {
	return func(b *configBuilder) {
		var v yamlVocabulary
		if err := yaml.Unmarshal(data, &v); err != nil {
			b.loadErr = err
			return
		}
		applyYAMLVocabulary(b, v)
	}
}

// WithUnitsFromYAMLFile reads path and applies it like WithUnitsFromYAML.
func WithUnitsFromYAMLFile(path string) Option {
	return func(b *configBuilder) {
		data, err := os.ReadFile(path)
		if err != nil {
			b.loadErr = err
			return
		}
		WithUnitsFromYAML(data)(b)
	}
}

func applyYAMLVocabulary(b *configBuilder, v yamlVocabulary) {
	for _, u := range v.Units {
		b.units = append(b.units, UnitDef{
			Canonical:       u.Canonical,
			Kind:            UnitKind(u.Kind),
			Aliases:         u.Aliases,
			SingleLetter:    u.SingleLetter,
			DigitBoundaryOK: u.DigitBoundaryOK,
		})
	}
	b.adjectives = append(b.adjectives, v.Adjectives...)
}
