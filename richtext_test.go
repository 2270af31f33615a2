package ingredient

import (
	"strings"
	"testing"
)

func TestParseRichTextRoundTrip(t *testing.T) {
	p := mustParser(t)
	inputs := []string{
		"Add 2 cups flour and mix with 1 tablespoon sugar.",
		"Bake for 20 minutes at 350 fahrenheit.",
		"",
		"no numbers or units here",
	}
	for _, in := range inputs {
		items := p.ParseRichText(in)
		var rebuilt strings.Builder
		for _, it := range items {
			rebuilt.WriteString(it.String())
		}
		if rebuilt.String() != in {
			t.Errorf("round trip failed for %q: got %q", in, rebuilt.String())
		}
	}
}

func TestParseRichTextClassifiesAmounts(t *testing.T) {
	p := mustParser(t)
	items := p.ParseRichText("Add 2 cups flour.")

	var foundAmount bool
	for _, it := range items {
		if it.Kind == RichAmount {
			foundAmount = true
			if len(it.Amounts) != 1 || it.Amounts[0].Unit != "cup" || it.Amounts[0].Value != 2 {
				t.Errorf("unexpected amount item: %+v", it)
			}
		}
	}
	if !foundAmount {
		t.Fatalf("expected a RichAmount item in %+v", items)
	}
}

func TestParseRichTextWaterAndSaltSentence(t *testing.T) {
	p, err := New(WithIngredientNames("water", "salt"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	items := p.ParseRichText("Add 1/2 cup / 236 grams water to the bowl with the salt.")

	wantKinds := []RichItemKind{RichText, RichAmount, RichText, RichIngredient, RichText, RichIngredient, RichText}
	wantTexts := []string{"Add ", "1/2 cup / 236 grams", " ", "water", " to the bowl with the ", "salt", "."}
	if len(items) != len(wantKinds) {
		t.Fatalf("got %d items, want %d: %+v", len(items), len(wantKinds), items)
	}
	for i, it := range items {
		if it.Kind != wantKinds[i] || it.Text != wantTexts[i] {
			t.Errorf("item[%d] = {%v, %q}; want {%v, %q}", i, it.Kind, it.Text, wantKinds[i], wantTexts[i])
		}
	}
	if len(items[1].Amounts) != 2 || items[1].Amounts[0].Unit != "cup" || items[1].Amounts[1].Unit != "gram" {
		t.Errorf("unexpected composite amount: %+v", items[1].Amounts)
	}
}

func TestParseRichTextClassifiesIngredientMentions(t *testing.T) {
	p, err := New(WithIngredientNames("flour", "sugar"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	items := p.ParseRichText("Mix the flour and sugar together.")

	var names []string
	for _, it := range items {
		if it.Kind == RichIngredient {
			names = append(names, it.Text)
		}
	}
	if len(names) != 2 || names[0] != "flour" || names[1] != "sugar" {
		t.Errorf("got ingredient mentions %v; want [flour sugar]", names)
	}
}
