package ingredient

import (
	"strings"
	"unicode/utf8"

	"github.com/nickysemenza/ingredient-parser/lexer"
)

// ParseRichText scans a free-form sentence left to right and splits it into
// an alternating stream of plain prose, recognized amounts, and ingredient
// mentions (per the configured predicate). Concatenating RichItem.String()
// over the returned slice, in order, always reproduces input byte-for-byte:
// rich-text parsing only classifies spans, it never drops or rewrites any of
// them.
//
// Unlike ParseAmount and the ingredient-line grammar, ParseRichText cannot
// fail: worst case, the whole input comes back as a single RichText item.
func (p *Parser) ParseRichText(input string) []RichItem {
	return p.ParseRichTextFunc(input, nil)
}

// ParseRichTextFunc is ParseRichText with an override predicate for
// recognizing ingredient mentions, used in place of (not in addition to)
// the Parser's configured predicate when fn is non-nil.
func (p *Parser) ParseRichTextFunc(input string, fn func(string) bool) []RichItem {
	isIngredient := p.cfg.isIngredient
	if fn != nil {
		isIngredient = fn
	}

	if input == "" {
		return nil
	}

	c := lexer.New(input)
	var items []RichItem
	var plainStart int

	flushPlain := func(end int) {
		if end > plainStart {
			items = append(items, RichItem{Kind: RichText, Text: c.Input()[plainStart:end]})
		}
	}

	for !c.Done() {
		wordStart := c.Pos()
		if !isAtWordStart(c) {
			c.Advance()
			continue
		}

		if amounts, ok := parseAmount(c, p.cfg, nil); ok && c.Pos() > wordStart {
			flushPlain(wordStart)
			items = append(items, RichItem{Kind: RichAmount, Text: c.Input()[wordStart:c.Pos()], Amounts: amounts})
			plainStart = c.Pos()
			continue
		}

		word := c.ReadWhile(lexer.IsWordRune)
		if word == "" {
			c.Advance()
			continue
		}
		if isIngredient != nil && isIngredient(word) {
			flushPlain(wordStart)
			items = append(items, RichItem{Kind: RichIngredient, Text: word})
			plainStart = c.Pos()
		}
	}
	flushPlain(c.Pos())

	return items
}

// isAtWordStart reports whether the cursor sits at the beginning of a word
// (preceded by nothing, or by a non-word rune), which is where amount and
// ingredient-mention matching are attempted. Matching only at word starts
// keeps "cupcake" from being probed for the unit "cup" mid-word.
func isAtWordStart(c *lexer.Cursor) bool {
	r, size := c.Peek()
	if size == 0 {
		return false
	}
	if pos := c.Pos(); pos > 0 {
		if prev, _ := utf8.DecodeLastRuneInString(c.Input()[:pos]); lexer.IsWordRune(prev) {
			return false
		}
	}
	return lexer.IsWordRune(r) || strings.ContainsRune("¼½¾⅓⅔⅕⅖⅗⅘⅙⅚⅐⅛⅜⅝⅞⅑⅒", r)
}
