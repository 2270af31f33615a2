package ingredient

import (
	"fmt"
	"math"
	"strings"
)

// commonFractions lists the fractional parts FormatAmount will render as a
// vulgar fraction glyph instead of a decimal, in ascending order of value.
// The entries are further apart than fractionEpsilon, so at most one of them
// matches a given fractional part.
var commonFractions = []struct {
	value float64
	glyph string
}{
	{1.0 / 8, "⅛"}, {1.0 / 4, "¼"}, {1.0 / 3, "⅓"}, {3.0 / 8, "⅜"},
	{1.0 / 2, "½"}, {5.0 / 8, "⅝"}, {2.0 / 3, "⅔"}, {3.0 / 4, "¾"}, {7.0 / 8, "⅞"},
}

const fractionEpsilon = 0.01

// nonPluralUnits lists canonical units that never take an "s": abbreviations
// ("T", "t", "c", "g", "ml"), the bare-count and size-word sentinels, and
// units ("$", temperatures) that aren't grammatically countable.
var nonPluralUnits = map[string]bool{
	"": true, "whole": true, "$": true,
	"t": true, "T": true, "c": true, "g": true, "ml": true,
	"celsius": true, "fahrenheit": true,
	"large": true, "medium": true, "small": true,
}

// FormatAmount renders a as human-readable text, preferring a whole number
// plus a vulgar fraction glyph over a decimal when the value is close to one
// of the common cooking fractions ("1½ cups" rather than "1.5 cups"), and
// falling back to a trimmed decimal otherwise. Ranges render as "low-high
// unit". The unit is singularized or pluralized by value, per the Amount's
// canonical spelling ("1 cup" vs "2 cups").
func (p *Parser) FormatAmount(a Amount) string {
	if a.IsRange() {
		unit := pluralizeUnit(a.Unit, a.Value, true)
		return fmt.Sprintf("%s-%s %s", formatValue(a.Value), formatValue(*a.UpperValue), unit)
	}
	if a.Unit == "" {
		return formatValue(a.Value)
	}
	unit := pluralizeUnit(a.Unit, a.Value, false)
	return fmt.Sprintf("%s %s", formatValue(a.Value), unit)
}

// pluralizeUnit returns unit's plural spelling when value warrants it: a
// range is always plural, and a single value is plural when it exceeds one
// (so "0.75 cup" and "1 cup" stay singular, matching how these are
// conventionally written, while "1.25 cups" and "2 cups" pluralize).
func pluralizeUnit(unit string, value float64, isRange bool) string {
	if nonPluralUnits[unit] {
		return unit
	}
	if !isRange && value <= 1 {
		return unit
	}
	return englishPlural(unit)
}

// englishPlural applies the regular English pluralization suffix: "-es"
// after a sibilant ending, "-s" otherwise. Every default unit canonical this
// package ships follows the regular rule ("cup"/"cups", "inch"/"inches",
// "ounce"/"ounces"); custom units added with WithUnits get the same
// regular suffix, and irregular plurals are not handled.
func englishPlural(s string) string {
	switch {
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "sh"), strings.HasSuffix(s, "ch"),
		strings.HasSuffix(s, "x"), strings.HasSuffix(s, "z"):
		return s + "es"
	default:
		return s + "s"
	}
}

func formatValue(v float64) string {
	whole := math.Trunc(v)
	frac := v - whole

	for _, cf := range commonFractions {
		if math.Abs(frac-cf.value) < fractionEpsilon {
			if whole == 0 {
				return cf.glyph
			}
			return fmt.Sprintf("%d%s", int(whole), cf.glyph)
		}
	}

	return trimTrailingZeros(fmt.Sprintf("%.2f", v))
}

// trimTrailingZeros removes a trailing ".00" or insignificant trailing
// zeros from a decimal string formatted with a fixed number of places,
// e.g. "2.50" -> "2.5", "2.00" -> "2".
func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
