package ingredient

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// UnitDef describes one recognized unit: its canonical spelling, dimension,
// and every alias (including abbreviations) that should resolve to it.
// Canonical itself does not need to be repeated in Aliases.
type UnitDef struct {
	Canonical string
	Kind      UnitKind
	Aliases   []string

	// SingleLetter marks aliases that are exactly one letter (e.g. "T", "t").
	// Single-letter aliases are matched case-sensitively to avoid "T"
	// (tablespoon) vs "t" (teaspoon) collapsing under sentence
	// capitalization; everything else
	// matches case-insensitively.
	SingleLetter bool

	// DigitBoundaryOK allows this unit's aliases to be followed directly by
	// a digit (no whitespace) and still count as a valid match, a carve-out
	// for unambiguous abbreviations like "g"/"ml" that recipes routinely
	// write glued to a number ("450g").
	DigitBoundaryOK bool
}

// resolvedUnit is what an alias resolves to once the vocabulary is compiled.
type resolvedUnit struct {
	canonical       string
	kind            UnitKind
	digitBoundaryOK bool
}

// aliasEntry is one (alias, resolution) pair prepared for longest-match
// matching.
type aliasEntry struct {
	alias        string
	foldKey      string // lowercased; singleLetter entries match on alias instead
	singleLetter bool
	resolved     resolvedUnit
}

// Config is the immutable, compiled bundle of vocabularies the parser
// matches against. Build one with New or NewConfig; it is safe for
// concurrent use once built.
type Config struct {
	units       []UnitDef
	adjectives  []string
	isIngredient func(string) bool

	unitAliases []aliasEntry // sorted longest-alias-first
	adjAliases  []aliasEntry
	adjCanon    map[string]bool // canonical adjective words, for size-word resolution

	graph *unitGraph
}

// Option customizes a Config under construction. Options are applied in the
// order given to NewConfig/New.
type Option func(*configBuilder)

type configBuilder struct {
	units        []UnitDef
	adjectives   []string
	isIngredient func(string) bool
	noDefaults   bool
	loadErr      error // set by a file/data-backed Option (YAML, TOML) that failed
}

// WithoutDefaults starts from an empty vocabulary instead of merging with
// the built-in defaults.
func WithoutDefaults() Option {
	return func(b *configBuilder) { b.noDefaults = true }
}

// WithUnits appends additional unit definitions. Their aliases join the same
// longest-first ordering as the defaults; the relative order of the default
// aliases among themselves is unchanged.
func WithUnits(units ...UnitDef) Option {
	return func(b *configBuilder) { b.units = append(b.units, units...) }
}

// WithAdjectives appends additional size-word/adjective tokens.
func WithAdjectives(words ...string) Option {
	return func(b *configBuilder) { b.adjectives = append(b.adjectives, words...) }
}

// WithIngredientPredicate sets the predicate the rich-text parser uses to
// recognize ingredient mentions.
func WithIngredientPredicate(pred func(string) bool) Option {
	return func(b *configBuilder) { b.isIngredient = pred }
}

// WithIngredientNames builds an ingredient predicate from a fixed list of
// names: case-insensitive, whole-word matching, for callers who just have a
// name list rather than a custom predicate.
func WithIngredientNames(names ...string) Option {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = true
	}
	return WithIngredientPredicate(func(word string) bool {
		return set[strings.ToLower(strings.TrimSpace(word))]
	})
}

// defaultUnits is the built-in vocabulary every Config starts from unless
// WithoutDefaults is given.
func defaultUnits() []UnitDef {
	return []UnitDef{
		{Canonical: "teaspoon", Kind: KindVolume, Aliases: []string{"teaspoons", "tsp", "tsps"}},
		{Canonical: "t", Kind: KindVolume, SingleLetter: true},
		{Canonical: "tablespoon", Kind: KindVolume, Aliases: []string{"tablespoons", "tbsp", "tbsps", "tbs"}},
		{Canonical: "T", Kind: KindVolume, SingleLetter: true},
		{Canonical: "cup", Kind: KindVolume, Aliases: []string{"cups"}},
		{Canonical: "c", Kind: KindVolume, SingleLetter: true},
		{Canonical: "pint", Kind: KindVolume, Aliases: []string{"pints", "pt"}},
		{Canonical: "quart", Kind: KindVolume, Aliases: []string{"quarts", "qt"}},
		{Canonical: "gallon", Kind: KindVolume, Aliases: []string{"gallons", "gal"}},
		{Canonical: "fluid ounce", Kind: KindVolume, Aliases: []string{"fluid ounces", "fl oz", "fl. oz.", "fl. oz"}},
		{Canonical: "ounce", Kind: KindMass, Aliases: []string{"ounces", "oz"}},
		{Canonical: "pound", Kind: KindMass, Aliases: []string{"pounds", "lb", "lbs", "#"}},
		{Canonical: "gram", Kind: KindMass, Aliases: []string{"grams"}, DigitBoundaryOK: false},
		{Canonical: "g", Kind: KindMass, SingleLetter: true, DigitBoundaryOK: true},
		{Canonical: "kilogram", Kind: KindMass, Aliases: []string{"kilograms", "kg"}},
		{Canonical: "milliliter", Kind: KindVolume, Aliases: []string{"milliliters", "millilitre", "millilitres"}},
		{Canonical: "ml", Kind: KindVolume, Aliases: []string{"mL"}, DigitBoundaryOK: true},
		{Canonical: "liter", Kind: KindVolume, Aliases: []string{"liters", "litre", "litres", "l"}},
		{Canonical: "inch", Kind: KindLength, Aliases: []string{"inches", "in"}},
		{Canonical: "celsius", Kind: KindTemperature, Aliases: []string{"°C", "degrees celsius", "degrees c"}},
		{Canonical: "fahrenheit", Kind: KindTemperature, Aliases: []string{"°F", "degrees fahrenheit", "degrees f"}},
		{Canonical: "minute", Kind: KindTime, Aliases: []string{"minutes", "min", "mins"}},
		{Canonical: "hour", Kind: KindTime, Aliases: []string{"hours", "hr", "hrs"}},
		{Canonical: "second", Kind: KindTime, Aliases: []string{"seconds", "sec", "secs"}},
		{Canonical: "whole", Kind: KindCount},
		{Canonical: "$", Kind: KindCurrency},
		{Canonical: "kcal", Kind: KindEnergy, Aliases: []string{"kcals", "calories"}},
		{Canonical: "large", Kind: KindSizeWord},
		{Canonical: "medium", Kind: KindSizeWord},
		{Canonical: "small", Kind: KindSizeWord},
	}
}

// defaultAdjectives is the ordered default adjective list. "large",
// "medium", "small" are also registered as size-word units above; since
// parseOneAmount tries matchUnit before matchAdjective, those three always
// match as units, and resolveSizeWords turns either reading into a "whole"
// count plus a modifier.
func defaultAdjectives() []string {
	return []string{"large", "medium", "small", "whole", "extra-large", "jumbo", "cloves", "heads", "pieces"}
}

// NewConfig builds and validates a Config from options, without building a
// Parser. Most callers should use New instead; NewConfig is useful for
// sharing one Config across several Parsers or inspecting it directly.
func NewConfig(opts ...Option) (*Config, error) {
	b := &configBuilder{}
	if !hasWithoutDefaults(opts) {
		b.units = append(b.units, defaultUnits()...)
		b.adjectives = append(b.adjectives, defaultAdjectives()...)
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.loadErr != nil {
		return nil, errConfigInvalid(b.loadErr.Error())
	}
	if b.isIngredient == nil {
		b.isIngredient = func(string) bool { return false }
	}

	if len(b.units) == 0 && len(b.adjectives) == 0 {
		return nil, errConfigInvalid("empty vocabulary")
	}

	cfg := &Config{
		units:        b.units,
		adjectives:   b.adjectives,
		isIngredient: b.isIngredient,
	}

	seenCanonical := map[string]bool{}
	var unitAliases []aliasEntry
	for _, u := range b.units {
		if u.Canonical == "" {
			return nil, errConfigInvalid("unit with empty canonical name")
		}
		// Single-letter units are matched case-sensitively (see
		// UnitDef.SingleLetter), so "t" and "T" are deliberately distinct
		// canonical units; only fold case for everything else.
		key := u.Canonical
		if !u.SingleLetter {
			key = strings.ToLower(u.Canonical)
		}
		if seenCanonical[key] {
			return nil, errConfigInvalid("duplicate canonical unit: " + u.Canonical)
		}
		seenCanonical[key] = true

		resolved := resolvedUnit{canonical: u.Canonical, kind: u.Kind, digitBoundaryOK: u.DigitBoundaryOK}
		aliases := append([]string{u.Canonical}, u.Aliases...)
		for _, a := range aliases {
			if a == "" {
				continue
			}
			unitAliases = append(unitAliases, aliasEntry{
				alias:        a,
				foldKey:      strings.ToLower(a),
				singleLetter: u.SingleLetter && utf8.RuneCountInString(a) == 1,
				resolved:     resolved,
			})
		}
	}
	sortAliasesLongestFirst(unitAliases)
	cfg.unitAliases = unitAliases

	var adjAliases []aliasEntry
	adjCanon := map[string]bool{}
	for _, word := range b.adjectives {
		adjAliases = append(adjAliases, aliasEntry{
			alias:    word,
			foldKey:  strings.ToLower(word),
			resolved: resolvedUnit{canonical: word, kind: KindSizeWord},
		})
		adjCanon[word] = true
	}
	sortAliasesLongestFirst(adjAliases)
	cfg.adjAliases = adjAliases
	cfg.adjCanon = adjCanon

	cfg.graph = buildUnitGraph(cfg)

	return cfg, nil
}

func hasWithoutDefaults(opts []Option) bool {
	b := &configBuilder{}
	for _, opt := range opts {
		opt(b)
		if b.noDefaults {
			return true
		}
	}
	return false
}

// sortAliasesLongestFirst sorts by rune length descending, then
// alphabetically, so the matcher tries longer candidates before shorter ones
// (longest-match-wins) while staying deterministic among equal lengths.
func sortAliasesLongestFirst(entries []aliasEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(entries[i].alias), utf8.RuneCountInString(entries[j].alias)
		if li != lj {
			return li > lj
		}
		return entries[i].alias < entries[j].alias
	})
}

// KnownUnits returns every canonical unit name configured, each exactly
// once, in matcher priority order.
func (c *Config) KnownUnits() []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range c.unitAliases {
		if !seen[e.resolved.canonical] {
			seen[e.resolved.canonical] = true
			out = append(out, e.resolved.canonical)
		}
	}
	return out
}
