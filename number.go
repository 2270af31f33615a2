package ingredient

import (
	"strconv"
	"strings"

	"github.com/nickysemenza/ingredient-parser/lexer"
	"github.com/nickysemenza/ingredient-parser/token"
)

// unicodeFractions maps vulgar fraction runes to their exact decimal value.
var unicodeFractions = map[rune]float64{
	'¼': 1.0 / 4, '½': 1.0 / 2, '¾': 3.0 / 4,
	'⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'⅕': 1.0 / 5, '⅖': 2.0 / 5, '⅗': 3.0 / 5, '⅘': 4.0 / 5,
	'⅙': 1.0 / 6, '⅚': 5.0 / 6,
	'⅐': 1.0 / 7,
	'⅛': 1.0 / 8, '⅜': 3.0 / 8, '⅝': 5.0 / 8, '⅞': 7.0 / 8,
	'⅑': 1.0 / 9,
	'⅒': 1.0 / 10,
}

// parsedNumber is the internal result of number grammar, before it is known
// whether the number is standing alone or feeding an amount.
type parsedNumber struct {
	value float64
	kind  token.Kind
	text  string // exact surface text consumed
}

// parseNumber tries, in priority order, a mixed numeral ("1 1/2", "2 ½"), a
// lone unicode fraction, an ASCII fraction ("3/4"), a decimal ("1.5"), an
// integer, and finally a spelled-out cardinal ("two", "twenty one"). It
// never fails outright: on no match it returns ok=false and leaves the
// cursor untouched.
func parseNumber(c *lexer.Cursor, cfg *Config, tr *tracer) (parsedNumber, bool) {
	tr = tr.child("number")
	defer tr.close()

	if n, ok := parseMixedNumeral(c, cfg); ok {
		tr.matched(n.text)
		return n, true
	}
	if n, ok := parseUnicodeFraction(c); ok {
		tr.matched(n.text)
		return n, true
	}
	if n, ok := parseAsciiFraction(c); ok {
		tr.matched(n.text)
		return n, true
	}
	if n, ok := parseDecimalOrInteger(c); ok {
		tr.matched(n.text)
		return n, true
	}
	if n, ok := parseSpelledCardinal(c); ok {
		tr.matched(n.text)
		return n, true
	}
	tr.failed("no number at this position")
	return parsedNumber{}, false
}

// parseMixedNumeral matches a whole number, whitespace, then a fraction
// ("1 1/2", "2 ½", "1¼"). A Unicode fraction may immediately follow the
// whole number with no intervening space at all; an ASCII fraction needs at
// least one run of horizontal space, per spec.md §4.2 rule 1.
func parseMixedNumeral(c *lexer.Cursor, cfg *Config) (parsedNumber, bool) {
	mark := c.Mark()
	whole := c.ReadDigits()
	if whole == "" {
		c.Reset(mark)
		return parsedNumber{}, false
	}
	wholeVal, err := strconv.ParseFloat(whole, 64)
	if err != nil {
		c.Reset(mark)
		return parsedNumber{}, false
	}
	afterWhole := c.Mark()

	// Zero or more spaces, then a Unicode fraction: "1¼" and "1 ¼" both
	// read as a mixed numeral with no space requirement either way.
	c.SkipSpaces()
	if n, ok := parseUnicodeFraction(c); ok {
		return parsedNumber{value: wholeVal + n.value, kind: token.Number, text: c.Input()[mark:c.Pos()]}, true
	}

	// An ASCII fraction ("1 1/2") requires at least one space, so the whole
	// number doesn't run straight into the numerator with nothing to mark
	// the boundary.
	c.Reset(afterWhole)
	if c.SkipSpaces() == 0 {
		c.Reset(mark)
		return parsedNumber{}, false
	}
	if n, ok := parseAsciiFraction(c); ok {
		return parsedNumber{value: wholeVal + n.value, kind: token.Number, text: c.Input()[mark:c.Pos()]}, true
	}
	c.Reset(mark)
	return parsedNumber{}, false
}

func parseUnicodeFraction(c *lexer.Cursor) (parsedNumber, bool) {
	mark := c.Mark()
	r, size := c.Peek()
	if size == 0 {
		return parsedNumber{}, false
	}
	val, ok := unicodeFractions[r]
	if !ok {
		return parsedNumber{}, false
	}
	c.Advance()
	return parsedNumber{value: val, kind: token.UnicodeFraction, text: c.Input()[mark:c.Pos()]}, true
}

// parseAsciiFraction matches "N/M" with no interior whitespace, where M != 0.
// A zero denominator ("1/0") is never a valid fraction reading, so this just
// backtracks as a non-match rather than surfacing a standalone error: per
// the amount grammar's totality rule (spec.md §7), the number and amount
// layers never fail outright, they only decline to match.
func parseAsciiFraction(c *lexer.Cursor) (parsedNumber, bool) {
	mark := c.Mark()
	num := c.ReadDigits()
	if num == "" {
		c.Reset(mark)
		return parsedNumber{}, false
	}
	if !c.MatchRune('/') {
		c.Reset(mark)
		return parsedNumber{}, false
	}
	den := c.ReadDigits()
	if den == "" {
		c.Reset(mark)
		return parsedNumber{}, false
	}
	numVal, _ := strconv.ParseFloat(num, 64)
	denVal, _ := strconv.ParseFloat(den, 64)
	if denVal == 0 {
		// A zero denominator can't be a valid fraction under any reading;
		// back out entirely so a caller further up the chain (e.g. the
		// amount grammar) sees a plain non-match rather than a partially
		// consumed cursor.
		c.Reset(mark)
		return parsedNumber{}, false
	}
	return parsedNumber{value: numVal / denVal, kind: token.AsciiFraction, text: c.Input()[mark:c.Pos()]}, true
}

// parseDecimalOrInteger matches "12", "1.5", or ".5".
func parseDecimalOrInteger(c *lexer.Cursor) (parsedNumber, bool) {
	mark := c.Mark()
	intPart := c.ReadDigits()
	hasFrac := false
	fracMark := c.Mark()
	var fracPart string
	if c.MatchRune('.') {
		fracPart = c.ReadDigits()
		if fracPart == "" {
			c.Reset(fracMark)
		} else {
			hasFrac = true
		}
	}
	if intPart == "" && !hasFrac {
		c.Reset(mark)
		return parsedNumber{}, false
	}
	text := c.Input()[mark:c.Pos()]
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		c.Reset(mark)
		return parsedNumber{}, false
	}
	kind := token.Number
	if hasFrac {
		kind = token.Decimal
	}
	return parsedNumber{value: val, kind: kind, text: text}, true
}

// parseSpelledCardinal matches a run of spelled-out number words ("twenty
// one", "one hundred") and combines them by standard English numeral
// grammar: tens add to ones, "hundred" multiplies what preceded it.
func parseSpelledCardinal(c *lexer.Cursor) (parsedNumber, bool) {
	mark := c.Mark()
	total := 0
	matchedAny := false
	pendingTens := 0

	for {
		wordMark := c.Mark()
		word := readLowerWord(c)
		if word == "" {
			c.Reset(wordMark)
			break
		}
		val, ok := token.LookupCardinal(word)
		if !ok {
			c.Reset(wordMark)
			break
		}
		if token.IsHundredWord(word) {
			base := pendingTens
			if base == 0 {
				base = 1
			}
			total += base * 100
			pendingTens = 0
		} else if val >= 20 && val%10 == 0 {
			pendingTens += val
		} else {
			pendingTens += val
		}
		matchedAny = true

		betweenMark := c.Mark()
		c.SkipSpaces()
		if c.Done() {
			break
		}
		// Only continue if the next word is itself a cardinal; otherwise
		// this space belongs to whatever comes after the number.
		peekMark := c.Mark()
		next := readLowerWord(c)
		c.Reset(peekMark)
		if _, ok := token.LookupCardinal(next); !ok {
			c.Reset(betweenMark)
			break
		}
	}
	total += pendingTens

	if !matchedAny {
		c.Reset(mark)
		return parsedNumber{}, false
	}
	return parsedNumber{value: float64(total), kind: token.Cardinal, text: c.Input()[mark:c.Pos()]}, true
}

// readLowerWord reads one word-rune run and returns it lowercased, without
// consuming anything if the cursor isn't on a word rune.
func readLowerWord(c *lexer.Cursor) string {
	mark := c.Mark()
	w := c.ReadWhile(lexer.IsWordRune)
	if w == "" {
		c.Reset(mark)
		return ""
	}
	return strings.ToLower(w)
}
