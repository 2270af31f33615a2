package ingredient

import (
	"testing"

	"github.com/nickysemenza/ingredient-parser/lexer"
)

func TestMatchUnitLongestMatch(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}
	c := lexer.New("tablespoons flour")
	m, ok := matchUnit(c, cfg, nil)
	if !ok {
		t.Fatal("expected a unit match")
	}
	if m.canonical != "tablespoon" {
		t.Errorf("canonical = %q; want \"tablespoon\"", m.canonical)
	}
	if m.text != "tablespoons" {
		t.Errorf("text = %q; want \"tablespoons\"", m.text)
	}
}

func TestMatchUnitDoesNotMatchMidWord(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}
	c := lexer.New("cupcake")
	if _, ok := matchUnit(c, cfg, nil); ok {
		t.Fatal("expected \"cup\" to not match inside \"cupcake\"")
	}
}

func TestMatchUnitSingleLetterCaseSensitive(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}

	c := lexer.New("T butter")
	m, ok := matchUnit(c, cfg, nil)
	if !ok || m.canonical != "T" {
		t.Fatalf("expected uppercase T to match canonical T, got %+v, %v", m, ok)
	}

	c = lexer.New("t butter")
	m, ok = matchUnit(c, cfg, nil)
	if !ok || m.canonical != "t" {
		t.Fatalf("expected lowercase t to match canonical t, got %+v, %v", m, ok)
	}
}

func TestMatchUnitDigitBoundary(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}
	c := lexer.New("g450")
	if _, ok := matchUnit(c, cfg, nil); !ok {
		t.Fatal("expected \"g\" immediately followed by a digit to match (digit-boundary carve-out)")
	}
}
