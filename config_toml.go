package ingredient

import (
	"os"

	"github.com/BurntSushi/toml"
)

// tomlVocabulary mirrors yamlVocabulary's shape for callers who keep their
// vocabulary in TOML instead.
type tomlVocabulary struct {
	Units []struct {
		Canonical       string   `toml:"canonical"`
		Kind            string   `toml:"kind"`
		Aliases         []string `toml:"aliases"`
		SingleLetter    bool     `toml:"single_letter"`
		DigitBoundaryOK bool     `toml:"digit_boundary_ok"`
	} `toml:"units"`
	Adjectives []string `toml:"adjectives"`
}

// WithUnitsFromTOML returns an Option that adds the units and adjectives
// described by TOML data in the vocabulary shape above.
func WithUnitsFromTOML(data []byte) Option {
	return func(b *configBuilder) {
		var v tomlVocabulary
		if err := toml.Unmarshal(data, &v); err != nil {
			b.loadErr = err
			return
		}
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
}

// WithUnitsFromTOMLFile reads path and applies it like WithUnitsFromTOML.
func WithUnitsFromTOMLFile(path string) Option {
	return func(b *configBuilder) {
		data, err := os.ReadFile(path)
		if err != nil {
			b.loadErr = err
			return
		}
		WithUnitsFromTOML(data)(b)
	}
}
