package ingredient

import (
	"strings"

	"github.com/nickysemenza/ingredient-parser/lexer"
)

// parseIngredientLine is the L4 grammar: an optional amount, whitespace, a
// name, and an optional ", modifier" clause, with two hoisting passes that
// run after the core shape is read: a "to taste" phrase anywhere in the
// line is pulled into the modifier, and a trailing parenthetical that parses
// as an amount is merged into Amounts instead of staying part of the name.
//
// Unlike the amount grammar, parseIngredientLine can fail outright: an
// empty line is ErrInputEmpty, and a line with no recoverable name is
// ErrNameMissing.
func parseIngredientLine(c *lexer.Cursor, cfg *Config, tr *tracer) (Ingredient, error) {
	tr = tr.child("ingredient_line")
	defer tr.close()

	if strings.TrimSpace(c.Rest()) == "" {
		err := errInputEmpty(c.Pos())
		tr.failed(err.Reason)
		return Ingredient{}, err
	}

	var amounts []Amount
	amtMark := c.Mark()
	if a, ok := parseAmount(c, cfg, tr); ok {
		c.SkipSpaces()
		if c.Done() {
			// The whole line was an amount with nothing else to serve as a
			// name: this can never recover into a valid ingredient, so fail
			// here instead of letting the leftover numeric text fall through
			// to the name grammar, which would happily (and wrongly) accept
			// "2 cups" itself as a name.
			err := errNameMissing(c.Pos())
			tr.failed(err.Reason)
			return Ingredient{}, err
		}
		amounts = a
	} else {
		c.Reset(amtMark)
	}

	rest := c.Rest()
	name, modifier, toTaste := splitNameModifier(rest)
	if toTaste {
		if modifier == "" {
			modifier = "to taste"
		} else {
			modifier = modifier + ", to taste"
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		err := errNameMissing(c.Pos())
		tr.failed(err.Reason)
		return Ingredient{}, err
	}

	name, hoisted, err := hoistTrailingParenAmount(name, cfg, tr)
	if err != nil {
		tr.failed(err.Reason)
		return Ingredient{}, err
	}
	amounts = append(amounts, hoisted...)

	amounts, sizeModifier := resolveSizeWords(amounts, cfg)
	if sizeModifier != "" {
		if modifier == "" {
			modifier = sizeModifier
		} else {
			modifier = sizeModifier + ", " + modifier
		}
	}

	amounts = normalizeBareAmounts(amounts)

	ing := Ingredient{Name: name, Amounts: amounts, Modifier: modifier}
	tr.matched(c.Input())
	return ing, nil
}

// splitNameModifier separates "name, modifier" and detects a "to taste"
// phrase anywhere in the remaining text, stripping it out regardless of
// where it appeared.
func splitNameModifier(s string) (name, modifier string, toTaste bool) {
	lower := strings.ToLower(s)
	if idx := strings.Index(lower, toTastePhraseLower); idx >= 0 {
		s = strings.TrimSpace(s[:idx] + s[idx+len(toTastePhraseLower):])
		s = strings.Trim(s, ", ")
		toTaste = true
	}

	if idx := strings.Index(s, ","); idx >= 0 {
		return s[:idx], strings.TrimSpace(s[idx+1:]), toTaste
	}
	return s, "", toTaste
}

const toTastePhraseLower = "to taste"

// hoistTrailingParenAmount checks whether name ends with a parenthesized
// expression that parses in full as an amount (e.g. "butter (1 cup)"); if
// so, it strips the parenthetical from the name and returns the Amounts it
// contained. An unterminated trailing '(' with no matching ')' is a hard
// structural error, since it can't plausibly be anything but a forgotten
// close paren.
func hoistTrailingParenAmount(name string, cfg *Config, tr *tracer) (string, []Amount, *ParseError) {
	trimmed := strings.TrimRight(name, " ")
	open := strings.LastIndex(trimmed, "(")
	if open < 0 {
		return name, nil, nil
	}
	if !strings.HasSuffix(trimmed, ")") {
		// Only an error if nothing comes after the unmatched '(' that could
		// be read another way: a stray '(' deep inside a name (e.g. "semi(
		// sweet) chocolate") is just prose, not a hoist candidate.
		if strings.ContainsRune(trimmed[open+1:], ')') {
			return name, nil, nil
		}
		return name, nil, errUnterminatedParen(open)
	}

	inner := trimmed[open+1 : len(trimmed)-1]
	c := lexer.New(inner)
	c.SkipSpaces()
	amounts, ok := parseRange(c, cfg, tr)
	c.SkipSpaces()
	if !ok || !c.Done() {
		return name, nil, nil
	}
	return strings.TrimSpace(trimmed[:open]), amounts, nil
}

// resolveSizeWords rewrites any Amount whose unit is actually a size-word
// into the count unit "whole", folding the word itself into the returned
// modifier. A size-word can surface two ways: as a configured unit ("large",
// "medium", "small" — matched as units so parseOneAmount's number+unit shape
// covers "1 large egg" as well as "large egg"), found via cfg.graph.kindOf,
// or as a plain adjective ("jumbo", "cloves", "extra-large", ...) matched by
// matchAdjective, which never enters the unit graph at all and so must be
// checked against cfg.adjCanon instead. "whole" itself is excluded from the
// adjective check: it is already registered as the bare-count unit
// (KindCount, not KindSizeWord), so an Amount that matched it as a unit is
// already in its final shape and shouldn't grow a redundant "whole"
// modifier. At most one size-word is expected per ingredient line; if more
// than one appears, they are joined in order.
func resolveSizeWords(amounts []Amount, cfg *Config) ([]Amount, string) {
	var words []string
	for i := range amounts {
		kind, ok := cfg.graph.kindOf[amounts[i].Unit]
		isSizeUnit := ok && kind == KindSizeWord
		isAdjective := amounts[i].Unit != "whole" && cfg.adjCanon[amounts[i].Unit]
		if isSizeUnit || isAdjective {
			words = append(words, amounts[i].Unit)
			amounts[i].Unit = "whole"
		}
	}
	return amounts, strings.Join(words, ", ")
}

// normalizeBareAmounts rewrites every Amount with an empty Unit to the
// "whole" unit: a bare number directly modifying an ingredient name ("2
// eggs", "3 limes") always means a count, even though ParseAmount alone
// leaves bare numbers unitless for composite/range arithmetic to stay
// simple.
func normalizeBareAmounts(amounts []Amount) []Amount {
	for i := range amounts {
		if amounts[i].Unit == "" {
			amounts[i].Unit = "whole"
		}
	}
	return amounts
}
