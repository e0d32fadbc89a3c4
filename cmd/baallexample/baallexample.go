// The MIT License (MIT)
//
// Copyright (c) 2026 Mihai Pomarlan
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// baallexample builds a small fragment of a food and medicine knowledge
// base in code and runs the four classic query concepts over it: food to
// avoid with apoplexy, food to prefer with apoplexy, the ingredients needed
// for gefillte char, and the dishes containing char.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/mpomarlan/baall"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func buildStore() *baall.Store {
	store := baall.NewStore()

	classes := []string{
		"baall:Food", "baall:Fish", "baall:Char", "baall:SaltyHerring",
		"baall:Dish", "baall:GefillteChar", "baall:Borscht",
		"baall:Vegetable", "baall:Beetroot",
		"baall:Disease", "baall:Apoplexy",
	}
	for _, class := range classes {
		must(store.DeclareClass(class))
	}

	subclasses := [][2]string{
		{"baall:Fish", "baall:Food"},
		{"baall:Char", "baall:Fish"},
		{"baall:SaltyHerring", "baall:Fish"},
		{"baall:Dish", "baall:Food"},
		{"baall:GefillteChar", "baall:Dish"},
		{"baall:Borscht", "baall:Dish"},
		{"baall:Vegetable", "baall:Food"},
		{"baall:Beetroot", "baall:Vegetable"},
		{"baall:Apoplexy", "baall:Disease"},
	}
	for _, edge := range subclasses {
		must(store.AssertSubclass(edge[0], edge[1]))
	}

	individuals := map[string]string{
		"baall:char_1":         "baall:Char",
		"baall:saltyHerring_1": "baall:SaltyHerring",
		"baall:gefillteChar_1": "baall:GefillteChar",
		"baall:borscht_1":      "baall:Borscht",
		"baall:beetroot_1":     "baall:Beetroot",
		"baall:apoplexy_1":     "baall:Apoplexy",
	}
	for individual, class := range individuals {
		must(store.DeclareIndividual(individual))
		must(store.AssertMembership(individual, class))
	}

	properties := []string{
		"baall:hasFoodIngredient_atLeast_f004Major",
		"baall:isContraindicatedFor",
		"baall:isRecommendedFor",
	}
	for _, property := range properties {
		must(store.DeclareProperty(property))
	}

	edges := [][3]string{
		{"baall:gefillteChar_1", "baall:hasFoodIngredient_atLeast_f004Major", "baall:char_1"},
		{"baall:borscht_1", "baall:hasFoodIngredient_atLeast_f004Major", "baall:beetroot_1"},
		{"baall:saltyHerring_1", "baall:isContraindicatedFor", "baall:apoplexy_1"},
		{"baall:beetroot_1", "baall:isRecommendedFor", "baall:apoplexy_1"},
		{"baall:borscht_1", "baall:isRecommendedFor", "baall:apoplexy_1"},
	}
	for _, edge := range edges {
		must(store.AssertPropertyEdge(edge[0], edge[1], edge[2]))
	}

	store.MarkReady()
	return store
}

func printResult(result *baall.ClassificationResult) {
	fmt.Printf("%s\n", result.Query)
	fmt.Printf("  ≡ %s\n", result.Expression)
	if result.Unsatisfiable {
		fmt.Printf("  unsatisfiable\n\n")
		return
	}
	fmt.Printf("  ancestors:   %s\n", strings.Join(result.Ancestors, ", "))
	fmt.Printf("  descendants: %s\n", strings.Join(result.Descendants, ", "))
	fmt.Printf("  members:     %s\n\n", strings.Join(result.Members, ", "))
}

func main() {
	store := buildStore()
	session := baall.NewSession(store)

	food := baall.NewNamedClass("baall:Food")
	apoplexy := baall.NewNamedClass("baall:Apoplexy")
	char := baall.NewNamedClass("baall:Char")
	gefillteChar := baall.NewNamedClass("baall:GefillteChar")
	ingredient := "baall:hasFoodIngredient_atLeast_f004Major"

	queries := []struct {
		name string
		expr baall.ClassExpression
	}{
		{
			// food contraindicated for an apoplexy sufferer
			"q:FoodToAvoidWithApoplexy",
			baall.NewConjunction(food,
				baall.NewExistentialRestriction("baall:isContraindicatedFor", apoplexy)),
		},
		{
			// food recommended for an apoplexy sufferer
			"q:FoodToPreferWithApoplexy",
			baall.NewConjunction(food,
				baall.NewExistentialRestriction("baall:isRecommendedFor", apoplexy)),
		},
		{
			// everything some gefillte char needs as a major ingredient
			"q:NeededForGefillteChar",
			baall.NewInverseExistentialRestriction(ingredient, gefillteChar),
		},
		{
			// every dish with char as a major ingredient
			"q:DishWithChar",
			baall.NewConjunction(food,
				baall.NewExistentialRestriction(ingredient, char)),
		},
	}

	for _, query := range queries {
		result, err := session.DefineAndClassify(query.name, query.expr)
		must(err)
		printResult(result)
	}

	descendants, err := session.Descendants("baall:Food")
	must(err)
	fmt.Printf("baall:Food descendants: %s\n", strings.Join(descendants, ", "))
}
