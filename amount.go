package ingredient

import (
	"unicode/utf8"

	"github.com/nickysemenza/ingredient-parser/lexer"
	"github.com/nickysemenza/ingredient-parser/token"
)

// dashRunes are literal range joiners; "to" is matched separately as a word
// since it needs a non-word rune (such as whitespace) on both sides to avoid
// swallowing part of a name.
var dashRunes = []rune{'-', '–', '—'}

// parseOneAmount matches a single Amount at the cursor: a number, optional
// whitespace, and an optional unit or adjective. A number with no following
// unit is a bare Amount (Unit == ""); a size-word adjective with no leading
// number is also accepted as a bare-unit Amount of value 1, since "large egg"
// and "1 large egg" describe the same quantity.
func parseOneAmount(c *lexer.Cursor, cfg *Config, tr *tracer) (Amount, bool) {
	tr = tr.child("one_amount")
	defer tr.close()

	mark := c.Mark()

	n, hasNumber := parseNumber(c, cfg, tr)
	if hasNumber {
		c.SkipSpaces()
	}

	unitMark := c.Mark()
	if m, ok := matchUnit(c, cfg, tr); ok && (hasNumber || m.kind == KindSizeWord) {
		tr.matched(c.Input()[mark:c.Pos()])
		return Amount{Unit: m.canonical, Value: valueOrOne(n, hasNumber)}, true
	}
	c.Reset(unitMark)
	if m, ok := matchAdjective(c, cfg, tr); ok {
		tr.matched(c.Input()[mark:c.Pos()])
		return Amount{Unit: m.canonical, Value: valueOrOne(n, hasNumber)}, true
	}
	c.Reset(unitMark)

	if hasNumber {
		tr.matched(c.Input()[mark:c.Pos()])
		return Amount{Unit: "", Value: n.value}, true
	}

	c.Reset(mark)
	tr.failed("no number, unit, or adjective at this position")
	return Amount{}, false
}

func valueOrOne(n parsedNumber, has bool) float64 {
	if has {
		return n.value
	}
	return 1
}

// parseAmountChain matches one or more Amounts joined by '/', '+', or
// spelled "plus", all sharing a unit when later members omit one: "1/2
// tablespoon" composite fractions inherit nothing (they're folded into a
// single number by parseNumber already), but "2 cups + 1 tablespoon" and a
// bare trailing number like "1 cup plus 2" both need the later Amount's
// unit filled in from its predecessor.
func parseAmountChain(c *lexer.Cursor, cfg *Config, tr *tracer) ([]Amount, bool) {
	tr = tr.child("amount_chain")
	defer tr.close()

	start := c.Mark()
	first, ok := parseOneAmount(c, cfg, tr)
	if !ok {
		tr.failed("no amount to start a chain")
		return nil, false
	}
	amounts := []Amount{first}

	for {
		joinMark := c.Mark()
		c.SkipSpaces()
		joined := c.MatchRune('/') || matchJoinerWord(c, token.PlusWords) || c.MatchRune('+')
		if !joined {
			c.Reset(joinMark)
			break
		}
		c.SkipSpaces()

		next, ok := parseOneAmount(c, cfg, tr)
		if !ok {
			c.Reset(joinMark)
			break
		}
		if next.Unit == "" {
			next.Unit = amounts[len(amounts)-1].Unit
		}
		amounts = append(amounts, next)
	}

	tr.matched(c.Input()[start:c.Pos()])
	return amounts, true
}

// matchJoinerWord consumes one of words as a whole word (bounded by a
// non-word rune or the end of input on both sides), case-insensitively.
func matchJoinerWord(c *lexer.Cursor, words []string) bool {
	mark := c.Mark()
	if mark > 0 {
		if prev, _ := utf8.DecodeLastRuneInString(c.Input()[:mark]); lexer.IsWordRune(prev) {
			return false
		}
	}
	for _, w := range words {
		if c.MatchFold(w) {
			if c.AtWordBoundary() {
				return true
			}
			c.Reset(mark)
		}
	}
	return false
}

// parseRange attempts to read a chain, then an optional dash/"to" joiner and
// a second chain, collapsing them into range Amounts sharing the first
// chain's units. A reversed range (upper < lower) is not a hard failure:
// per the amount grammar's totality rule, the attempt simply backtracks to
// just the first chain, as if the dash had never been there. Callers that
// need to flag a reversed range as an error should use ValidateAmount.
func parseRange(c *lexer.Cursor, cfg *Config, tr *tracer) ([]Amount, bool) {
	tr = tr.child("range")
	defer tr.close()

	start := c.Mark()
	lower, ok := parseAmountChain(c, cfg, tr)
	if !ok {
		tr.failed("no amount to start a range")
		return nil, false
	}

	dashMark := c.Mark()
	c.SkipSpaces()
	if !matchDashJoiner(c) {
		c.Reset(dashMark)
		tr.matched(c.Input()[start:c.Pos()])
		return lower, true
	}
	c.SkipSpaces()

	upper, ok := parseAmountChain(c, cfg, tr)
	if !ok || len(upper) != len(lower) {
		c.Reset(dashMark)
		tr.matched(c.Input()[start:c.Pos()])
		return lower, true
	}

	merged := make([]Amount, len(lower))
	reversed := false
	for i := range lower {
		if upper[i].Value < lower[i].Value {
			reversed = true
		}
		merged[i] = lower[i]
		merged[i].UpperValue = &upper[i].Value
		if merged[i].Unit == "" {
			merged[i].Unit = upper[i].Unit
		}
	}
	if reversed {
		c.Reset(dashMark)
		tr.failed("reversed range, backtracking to lower bound only")
		return lower, true
	}

	tr.matched(c.Input()[start:c.Pos()])
	return merged, true
}

func matchDashJoiner(c *lexer.Cursor) bool {
	mark := c.Mark()
	r, size := c.Peek()
	if size != 0 {
		for _, d := range dashRunes {
			if r == d {
				c.Advance()
				return true
			}
		}
	}
	if matchJoinerWord(c, token.DashWords) {
		return true
	}
	c.Reset(mark)
	return false
}

// parseParenAlt matches a parenthesized alternate amount, such as the
// "(240ml)" in "1 cup (240ml)", and returns the amounts inside the
// parentheses; parseAmount appends them to the preceding reading. It never
// consumes the
// opening '(' unless the whole parenthetical parses as an amount, so that a
// literal trailing parenthetical note like "(optional)" is left untouched
// for the caller to deal with.
func parseParenAlt(c *lexer.Cursor, cfg *Config, tr *tracer) ([]Amount, bool) {
	tr = tr.child("paren_alt")
	defer tr.close()

	mark := c.Mark()
	if !c.MatchRune('(') {
		tr.failed("no '(' at this position")
		return nil, false
	}
	c.SkipSpaces()
	inner, ok := parseRange(c, cfg, tr)
	if !ok {
		c.Reset(mark)
		tr.failed("parenthetical did not contain an amount")
		return nil, false
	}
	c.SkipSpaces()
	if !c.MatchRune(')') {
		c.Reset(mark)
		tr.failed("parenthetical amount not closed, leaving for caller")
		return nil, false
	}
	tr.matched(c.Input()[mark:c.Pos()])
	return inner, true
}

// parseAmount is the full L3 entry point: a range, optionally followed by a
// parenthesized alternate reading.
func parseAmount(c *lexer.Cursor, cfg *Config, tr *tracer) ([]Amount, bool) {
	tr = tr.child("amount")
	defer tr.close()

	start := c.Mark()
	amounts, ok := parseRange(c, cfg, tr)
	if !ok {
		tr.failed("no amount at this position")
		return nil, false
	}

	altMark := c.Mark()
	c.SkipSpaces()
	if alt, ok := parseParenAlt(c, cfg, tr); ok {
		amounts = append(amounts, alt...)
	} else {
		c.Reset(altMark)
	}

	tr.matched(c.Input()[start:c.Pos()])
	return amounts, true
}

// ParseAmount parses a standalone amount expression such as "1 1/2 cups",
// "2-3 tablespoons", or "1 cup (240ml)", with no surrounding ingredient
// name. It returns every Amount read left to right; a composite expression
// like "1 cup plus 2 tablespoons" yields two entries.
//
// ParseAmount never returns ErrRangeReversed: a reversed range gracefully
// degrades to its lower bound alone, per the totality guarantee the amount
// grammar makes for direct callers. Use ValidateAmount to check a string for
// that condition explicitly.
func (p *Parser) ParseAmount(input string) ([]Amount, error) {
	if input == "" {
		return nil, errInputEmpty(0)
	}
	c := lexer.New(input)
	amounts, ok := parseAmount(c, p.cfg, nil)
	if !ok {
		return nil, errNoAmount(0)
	}
	return amounts, nil
}

// ValidateAmount reports ErrRangeReversed if input's range (if any) has an
// upper bound below its lower bound, the one amount-level condition that
// ParseAmount itself never surfaces.
func (p *Parser) ValidateAmount(input string) error {
	c := lexer.New(input)
	lower, ok := parseAmountChain(c, p.cfg, nil)
	if !ok {
		return nil
	}
	dashMark := c.Mark()
	c.SkipSpaces()
	if !matchDashJoiner(c) {
		return nil
	}
	c.SkipSpaces()
	upper, ok := parseAmountChain(c, p.cfg, nil)
	if !ok || len(upper) != len(lower) {
		return nil
	}
	for i := range lower {
		if upper[i].Value < lower[i].Value {
			return errRangeReversed(dashMark, lower[i].Value, upper[i].Value)
		}
	}
	return nil
}
