package ingredient

import "github.com/nickysemenza/ingredient-parser/lexer"

// Parser holds a compiled Config and exposes every parsing entry point.
// Build one with New.
type Parser struct {
	cfg *Config
}

// New builds a Parser from the given options. With no options it uses the
// default vocabulary described in the package's accompanying specification.
func New(opts ...Option) (*Parser, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Parser{cfg: cfg}, nil
}

// NewFromConfig builds a Parser from an already-built Config, so several
// Parsers (e.g. one per locale) can share one compiled vocabulary.
func NewFromConfig(cfg *Config) *Parser {
	return &Parser{cfg: cfg}
}

// Config returns the Parser's compiled configuration.
func (p *Parser) Config() *Config { return p.cfg }

// Parse parses a single ingredient line into an Ingredient. It returns
// ErrInputEmpty for blank input and ErrNameMissing when no ingredient name
// can be recovered from the line.
func (p *Parser) Parse(line string) (Ingredient, error) {
	c := lexer.New(line)
	return parseIngredientLine(c, p.cfg, nil)
}

// TryParse is Parse without an error return, for callers that would rather
// treat any unparseable line as "no ingredient" than handle an error. It
// returns the zero Ingredient and false on any error from Parse.
func (p *Parser) TryParse(line string) (Ingredient, bool) {
	ing, err := p.Parse(line)
	if err != nil {
		return Ingredient{}, false
	}
	return ing, true
}

// ParseWithTrace parses an ingredient line exactly like Parse, additionally
// recording a full trace of every grammar rule attempted, matched, or
// backtracked along the way. Tracing has no cost unless this function is
// called: Parse and TryParse never build a tracer at all.
func (p *Parser) ParseWithTrace(line string) (Ingredient, *ParseTrace, error) {
	c := lexer.New(line)
	tr := newTracer(c.Pos)
	ing, err := parseIngredientLine(c, p.cfg, tr)
	return ing, &ParseTrace{Root: tr.node}, err
}

// Parse is a package-level convenience wrapper around a Parser built from
// default options. Prefer building a Parser with New and reusing it when
// parsing more than a handful of lines, since New revalidates and recompiles
// the vocabulary on every call.
func Parse(line string) (Ingredient, error) {
	p, err := New()
	if err != nil {
		return Ingredient{}, err
	}
	return p.Parse(line)
}

// ParseAmount is the package-level convenience counterpart to
// Parser.ParseAmount.
func ParseAmount(input string) ([]Amount, error) {
	p, err := New()
	if err != nil {
		return nil, err
	}
	return p.ParseAmount(input)
}
