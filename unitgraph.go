package ingredient

import (
	units "github.com/bcicen/go-units"
)

// unitGraph is a compiled table of conversion factors between units of the
// same kind, built once when a Config is constructed. It backstops
// github.com/bcicen/go-units (the first-choice resolver, since it already
// knows standard volume/mass/length conversions) with a small fixed factor
// table for the default volume, mass, time and length units. Size-words,
// counts, and currency have no entry in that table and are only ever
// convertible to themselves.
type unitGraph struct {
	// factorToBase maps a canonical unit name to how many of its kind's base
	// unit (fixed by baseUnitByKind) one unit equals. Used only as a
	// fallback when go-units cannot convert between two names.
	factorToBase map[string]float64
	kindOf       map[string]UnitKind
	baseOf       map[UnitKind]string
}

// baseUnitByKind names the fixed reference unit each kind's factorToBase
// entries are expressed relative to. Unlike "first unit seen while
// iterating the compiled alias table" (which depends on sort order and
// would silently pick an arbitrary unit), these are fixed regardless of
// what else a caller configures with WithUnits.
var baseUnitByKind = map[UnitKind]string{
	KindVolume: "cup",
	KindMass:   "gram",
	KindTime:   "second",
	KindLength: "inch",
}

// buildUnitGraph precomputes the fallback conversion table from cfg's
// configured units, modeled on bartender's CocktailUnit factor table: every
// unit of a given kind is expressed as a multiple of that kind's fixed base
// unit.
func buildUnitGraph(cfg *Config) *unitGraph {
	g := &unitGraph{
		factorToBase: map[string]float64{},
		kindOf:       map[string]UnitKind{},
		baseOf:       map[UnitKind]string{},
	}

	for _, e := range cfg.unitAliases {
		name := e.resolved.canonical
		if _, ok := g.kindOf[name]; ok {
			continue
		}
		g.kindOf[name] = e.resolved.kind
	}
	for kind, base := range baseUnitByKind {
		if _, ok := g.kindOf[base]; ok {
			g.baseOf[kind] = base
			g.factorToBase[base] = 1
		}
	}

	// Volume, relative to "cup".
	setFactor(g, "teaspoon", 1.0/48)
	setFactor(g, "tablespoon", 1.0/16)
	setFactor(g, "fluid ounce", 1.0/8)
	setFactor(g, "pint", 2)
	setFactor(g, "quart", 4)
	setFactor(g, "gallon", 16)
	setFactor(g, "milliliter", 1.0/236.588)
	setFactor(g, "ml", 1.0/236.588)
	setFactor(g, "liter", 1000.0/236.588)

	// Mass, relative to "gram".
	setFactor(g, "ounce", 28.3495)
	setFactor(g, "pound", 453.592)
	setFactor(g, "kilogram", 1000)
	setFactor(g, "g", 1)

	// Time, relative to "second".
	setFactor(g, "minute", 60)
	setFactor(g, "hour", 3600)

	// Length, relative to "inch": nothing else registered by default.

	return g
}

func setFactor(g *unitGraph, unit string, factor float64) {
	if _, ok := g.kindOf[unit]; !ok {
		return // not configured; leave absent rather than inventing a kind
	}
	g.factorToBase[unit] = factor
}

// SameKind reports whether two canonical unit names belong to the same
// dimension and are therefore potentially convertible.
func (p *Parser) SameKind(a, b string) bool {
	ka, aok := p.cfg.graph.kindOf[a]
	kb, bok := p.cfg.graph.kindOf[b]
	return aok && bok && ka == kb
}

// Convert converts value from one configured unit to another of the same
// kind. It first defers to github.com/bcicen/go-units, which covers the
// standard metric/imperial conversions exactly; units that library doesn't
// recognize (size-words, "whole", custom units from WithUnits) fall back to
// the Config's own factor table. Converting between different kinds, or a
// unit with no known factor in either system, is ErrUnconvertible.
func (p *Parser) Convert(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}
	if !p.SameKind(from, to) {
		return 0, errUnconvertible(from, to)
	}

	if v, err := convertViaGoUnits(value, from, to); err == nil {
		return v, nil
	}

	g := p.cfg.graph
	ff, fok := g.factorToBase[from]
	ft, tok := g.factorToBase[to]
	if !fok || !tok {
		return 0, errUnconvertible(from, to)
	}
	base := value * ff
	return base / ft, nil
}

// convertViaGoUnits attempts a conversion using go-units' registered unit
// names and symbols, returning an error if either name is unrecognized
// there (the caller then tries the fallback graph instead).
func convertViaGoUnits(value float64, from, to string) (float64, error) {
	fu, err := units.Find(from)
	if err != nil {
		return 0, err
	}
	tu, err := units.Find(to)
	if err != nil {
		return 0, err
	}
	val := units.NewValue(value, fu)
	converted, err := val.Convert(tu)
	if err != nil {
		return 0, err
	}
	return converted.Float(), nil
}

// KnownUnits is provided on Config; Parser forwards to it for convenience.
func (p *Parser) KnownUnits() []string { return p.cfg.KnownUnits() }
