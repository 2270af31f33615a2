// Package token defines the closed set of lexical categories produced and
// consumed while parsing an ingredient line, plus the small fixed vocabularies
// (spelled-out cardinals, range/joiner keywords) that the number and amount
// grammars match against.
package token

// Kind names a lexical category. The number grammar tags what it matched
// with one; it is never a type callers branch on directly.
type Kind string

const (
	Number          Kind = "number"
	UnicodeFraction Kind = "unicode_fraction"
	AsciiFraction   Kind = "ascii_fraction"
	Decimal         Kind = "decimal"
	Cardinal        Kind = "cardinal"
	Unit            Kind = "unit"
	Adjective       Kind = "adjective"
	Dash            Kind = "dash"
	Slash           Kind = "slash"
	Plus            Kind = "plus"
	LParen          Kind = "lparen"
	RParen          Kind = "rparen"
	Comma           Kind = "comma"
	Word            Kind = "word"
	Whitespace      Kind = "whitespace"
	EOF             Kind = "eof"
	Amount          Kind = "amount"
	Name            Kind = "name"
	Modifier        Kind = "modifier"
)

// DashWords are spelled-out range joiners equivalent to a literal dash, e.g.
// "2 to 3 tablespoons".
var DashWords = []string{"to"}

// PlusWords are spelled-out composite joiners equivalent to a literal '+'.
var PlusWords = []string{"plus"}

// ToTastePhrase is recognized anywhere in a line and hoisted into the
// modifier regardless of position.
const ToTastePhrase = "to taste"

// cardinals maps every spelled-out number word the grammar recognizes to its
// integer value. "hundred" is a multiplier, not an addend; see
// LookupCardinal's caller for how the two combine.
var cardinals = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90, "hundred": 100,
}

// LookupCardinal returns the integer value of a spelled-out cardinal word and
// whether it is one of the recognized words at all.
func LookupCardinal(word string) (int, bool) {
	v, ok := cardinals[word]
	return v, ok
}

// IsHundredWord reports whether word is the multiplier "hundred", which
// combines with a preceding cardinal by multiplication rather than addition.
func IsHundredWord(word string) bool {
	return word == "hundred"
}
