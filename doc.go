// Package ingredient parses recipe ingredient lines ("2 1/2 cups flour,
// sifted") into structured Ingredient values, parses standalone amount
// expressions ("2-3 tablespoons", "1 cup (240ml)"), and splits free-form
// recipe prose into plain text, recognized amounts, and ingredient mentions.
//
// Build a Parser once with New and reuse it; parsing allocates no global
// state and a *Parser is safe for concurrent use once built.
//
//	p, err := ingredient.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	ing, err := p.Parse("2 1/2 cups flour, sifted")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(ing.Name, ing.Amounts[0].Value, ing.Amounts[0].Unit)
//	// Output: flour 2.5 cup
//
// Configuration is built from functional options; callers that need a
// custom vocabulary (a different unit system, additional ingredient names
// to recognize in rich text) pass Options to New rather than mutating
// package state:
//
//	p, err := ingredient.New(
//		ingredient.WithUnits(ingredient.UnitDef{Canonical: "pinch", Kind: ingredient.KindVolume}),
//		ingredient.WithIngredientNames("flour", "sugar", "butter"),
//	)
package ingredient
