package ingredient

import (
	"strings"
	"unicode/utf8"

	"github.com/nickysemenza/ingredient-parser/lexer"
)

// matchedUnit is the result of matching a unit or adjective alias at the
// cursor's current position.
type matchedUnit struct {
	canonical string
	kind      UnitKind
	text      string // the exact alias text matched, e.g. "Tbsp" or "TABLESPOONS"
	isAdj     bool
}

// matchUnit tries every configured unit alias, longest first, at the
// cursor's current position and consumes the longest one that matches a
// full word (respecting the digit-boundary carve-out). It never fails
// outright: on no match the cursor is untouched and ok is false.
func matchUnit(c *lexer.Cursor, cfg *Config, tr *tracer) (matchedUnit, bool) {
	tr = tr.child("unit")
	defer tr.close()

	if m, ok := matchFromAliases(c, cfg.unitAliases); ok {
		tr.matched(m.text)
		return m, true
	}
	tr.failed("no unit at this position")
	return matchedUnit{}, false
}

// matchAdjective tries every configured adjective, longest first.
func matchAdjective(c *lexer.Cursor, cfg *Config, tr *tracer) (matchedUnit, bool) {
	tr = tr.child("adjective")
	defer tr.close()

	if m, ok := matchFromAliases(c, cfg.adjAliases); ok {
		m.isAdj = true
		tr.matched(m.text)
		return m, true
	}
	tr.failed("no adjective at this position")
	return matchedUnit{}, false
}

func matchFromAliases(c *lexer.Cursor, aliases []aliasEntry) (matchedUnit, bool) {
	mark := c.Mark()
	rest := c.Rest()
	restLower := strings.ToLower(rest)

	for _, e := range aliases {
		var matches bool
		if e.singleLetter {
			matches = strings.HasPrefix(rest, e.alias)
		} else {
			matches = strings.HasPrefix(restLower, e.foldKey)
		}
		if !matches {
			continue
		}
		end := mark + len(e.alias)
		if !unitBoundaryOK(c, end, e) {
			continue
		}
		c.Reset(end)
		return matchedUnit{canonical: e.resolved.canonical, kind: e.resolved.kind, text: c.Input()[mark:end]}, true
	}
	return matchedUnit{}, false
}

// unitBoundaryOK reports whether a candidate match ending at byte offset end
// is followed by a valid word boundary. Most units require a non-word rune
// or end-of-input to follow (so "cupcake" doesn't match the unit "cup"); a
// handful of unambiguous metric abbreviations (g, ml) are additionally
// allowed to be followed directly by a digit, since recipes are routinely
// written "450g" with no space.
func unitBoundaryOK(c *lexer.Cursor, end int, e aliasEntry) bool {
	input := c.Input()
	if end >= len(input) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(input[end:])
	if !lexer.IsWordRune(next) {
		return true
	}
	if e.resolved.digitBoundaryOK && next >= '0' && next <= '9' {
		return true
	}
	return false
}
