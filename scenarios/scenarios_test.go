package scenarios_test

import (
	"os"
	"reflect"
	"testing"

	ingredient "github.com/nickysemenza/ingredient-parser"
	"github.com/nickysemenza/ingredient-parser/scenarios"
)

func Test_Scenarios(t *testing.T) {
	var suite scenarios.CanonicalTests

	for _, file := range []string{"scenarios.yaml"} {
		t.Run(file, func(t *testing.T) {
			if fi, err := os.Stat(file); os.IsNotExist(err) || fi.Size() == 0 {
				t.Skip("skipping scenario file", file, "because it does not exist or is empty")
			}
			if err := scenarios.ParseFile(file, &suite); err != nil {
				t.Fatalf("failed to parse scenario file %s: %v", file, err)
			}

			p, err := ingredient.New()
			if err != nil {
				t.Fatalf("failed to build parser: %v", err)
			}

			for name, sc := range suite.Tests {
				t.Run(name, func(t *testing.T) {
					got, err := p.Parse(sc.Source)

					if sc.ExpectedErr != "" {
						if err == nil {
							t.Fatalf("expected error %s, got none (result %#v)", sc.ExpectedErr, got)
						}
						var pe *ingredient.ParseError
						if ok := asParseError(err, &pe); !ok {
							t.Fatalf("expected a *ingredient.ParseError, got %T: %v", err, err)
						}
						if pe.Reason != sc.ExpectedErr {
							t.Errorf("expected Reason %s, got %s", sc.ExpectedErr, pe.Reason)
						}
						return
					}

					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					want := toIngredient(sc.Expected)
					if got.Name != want.Name || got.Modifier != want.Modifier {
						t.Errorf("Name/Modifier mismatch: want %#v, got %#v", want, got)
					}
					if !reflect.DeepEqual(got.Amounts, want.Amounts) {
						t.Errorf("Amounts mismatch:\nwant: %#v\ngot:  %#v", want.Amounts, got.Amounts)
					}
				})
			}
		})
	}
}

func asParseError(err error, out **ingredient.ParseError) bool {
	pe, ok := err.(*ingredient.ParseError)
	if !ok {
		return false
	}
	*out = pe
	return true
}

func toIngredient(e *scenarios.Expected) ingredient.Ingredient {
	if e == nil {
		return ingredient.Ingredient{}
	}
	ing := ingredient.Ingredient{Name: e.Name, Modifier: e.Modifier}
	for _, a := range e.Amounts {
		amt := ingredient.Amount{Unit: a.Unit, Value: a.Value}
		if a.UpperValue != nil {
			amt.UpperValue = a.UpperValue
		}
		ing.Amounts = append(ing.Amounts, amt)
	}
	return ing
}
