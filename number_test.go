package ingredient

import (
	"testing"

	"github.com/nickysemenza/ingredient-parser/lexer"
)

func TestParseNumber(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}

	tests := []struct {
		input string
		want  float64
	}{
		{"1 1/2", 1.5},
		{"2 ½", 2.5},
		{"1¼", 1.25},
		{"¾", 0.75},
		{"3/4", 0.75},
		{"1.5", 1.5},
		{"12", 12},
		{"two", 2},
		{"twenty one", 21},
		{"one hundred", 100},
	}
	for _, tt := range tests {
		c := lexer.New(tt.input)
		n, ok := parseNumber(c, cfg, nil)
		if !ok {
			t.Errorf("parseNumber(%q) did not match", tt.input)
			continue
		}
		if n.value != tt.want {
			t.Errorf("parseNumber(%q) = %v; want %v", tt.input, n.value, tt.want)
		}
	}
}

func TestParseNumberNoMatch(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}
	c := lexer.New("flour")
	mark := c.Mark()
	if _, ok := parseNumber(c, cfg, nil); ok {
		t.Fatal("expected no match on non-numeric input")
	}
	if c.Pos() != mark {
		t.Fatal("expected cursor untouched after a failed number match")
	}
}

func TestAsciiFractionZeroDenominatorDoesNotMatch(t *testing.T) {
	c := lexer.New("1/0 cups")
	mark := c.Mark()
	if _, ok := parseAsciiFraction(c); ok {
		t.Fatal("expected 1/0 to not be read as a valid fraction")
	}
	if c.Pos() != mark {
		t.Fatal("expected cursor untouched after a zero-denominator fraction")
	}
}
