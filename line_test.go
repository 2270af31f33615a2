package ingredient

import (
	"errors"
	"testing"
)

func TestParseLines(t *testing.T) {
	p := mustParser(t)

	tests := []struct {
		line     string
		name     string
		modifier string
		amounts  []Amount
	}{
		{"2 eggs", "eggs", "", []Amount{{Unit: "whole", Value: 2}}},
		{"2 1/2 cups flour, sifted", "flour", "sifted", []Amount{{Unit: "cup", Value: 2.5}}},
		{"kosher salt", "kosher salt", "", nil},
		{"salt to taste", "salt", "to taste", nil},
		{"1 large egg", "egg", "large", []Amount{{Unit: "whole", Value: 1}}},
		{"butter (1 cup)", "butter", "", []Amount{{Unit: "cup", Value: 1}}},
		{"1¼ cups flour", "flour", "", []Amount{{Unit: "cup", Value: 1.25}}},
		{"3 jumbo eggs", "eggs", "jumbo", []Amount{{Unit: "whole", Value: 3}}},
		{"2 whole chickens", "chickens", "", []Amount{{Unit: "whole", Value: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ing, err := p.Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.line, err)
			}
			if ing.Name != tt.name {
				t.Errorf("Name = %q; want %q", ing.Name, tt.name)
			}
			if ing.Modifier != tt.modifier {
				t.Errorf("Modifier = %q; want %q", ing.Modifier, tt.modifier)
			}
			if len(ing.Amounts) != len(tt.amounts) {
				t.Fatalf("Amounts = %+v; want %+v", ing.Amounts, tt.amounts)
			}
			for i := range tt.amounts {
				if ing.Amounts[i].Unit != tt.amounts[i].Unit || ing.Amounts[i].Value != tt.amounts[i].Value {
					t.Errorf("Amounts[%d] = %+v; want %+v", i, ing.Amounts[i], tt.amounts[i])
				}
			}
		})
	}
}

func TestParseEmptyLineIsInputEmpty(t *testing.T) {
	p := mustParser(t)
	_, err := p.Parse("")
	if !errors.Is(err, ErrInputEmpty) {
		t.Fatalf("expected ErrInputEmpty, got %v", err)
	}
}

func TestParseAmountOnlyLineIsNameMissing(t *testing.T) {
	p := mustParser(t)
	_, err := p.Parse("2 cups")
	if !errors.Is(err, ErrNameMissing) {
		t.Fatalf("expected ErrNameMissing, got %v", err)
	}
}

func TestParseUnterminatedParenIsHardError(t *testing.T) {
	p := mustParser(t)
	_, err := p.Parse("butter (1 cup")
	if !errors.Is(err, ErrUnterminatedParen) {
		t.Fatalf("expected ErrUnterminatedParen, got %v", err)
	}
}

func TestTryParse(t *testing.T) {
	p := mustParser(t)
	if _, ok := p.TryParse(""); ok {
		t.Fatal("expected TryParse to report false on empty input")
	}
	if ing, ok := p.TryParse("2 eggs"); !ok || ing.Name != "eggs" {
		t.Fatalf("expected TryParse to succeed on \"2 eggs\", got %+v, %v", ing, ok)
	}
}
