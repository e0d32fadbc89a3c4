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

package baall

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ingredientProp is the property the ingredient queries traverse.
const ingredientProp = "baall:hasFoodIngredient_atLeast_f004Major"

// newFoodStore builds the food fragment used across the tests:
//
//	Food ⊒ Fish ⊒ Char, Food ⊒ Dish ⊒ {GefillteChar, Borscht},
//	Food ⊒ Vegetable ⊒ Beetroot
//
// with one individual per leaf class (plus herring_1 and potato_1 asserted
// directly on Fish and Vegetable) and ingredient edges
//
//	gefillteChar_1 → char_1, borscht_1 → beetroot_1, borscht_1 → potato_1.
func newFoodStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()

	classes := [][2]string{
		{"baall:Food", ""},
		{"baall:Fish", "baall:Food"},
		{"baall:Char", "baall:Fish"},
		{"baall:Dish", "baall:Food"},
		{"baall:GefillteChar", "baall:Dish"},
		{"baall:Borscht", "baall:Dish"},
		{"baall:Vegetable", "baall:Food"},
		{"baall:Beetroot", "baall:Vegetable"},
	}
	for _, class := range classes {
		require.NoError(t, store.DeclareClass(class[0]))
		if class[1] != "" {
			require.NoError(t, store.AssertSubclass(class[0], class[1]))
		}
	}

	individuals := [][2]string{
		{"baall:char_1", "baall:Char"},
		{"baall:herring_1", "baall:Fish"},
		{"baall:gefillteChar_1", "baall:GefillteChar"},
		{"baall:borscht_1", "baall:Borscht"},
		{"baall:beetroot_1", "baall:Beetroot"},
		{"baall:potato_1", "baall:Vegetable"},
	}
	for _, individual := range individuals {
		require.NoError(t, store.DeclareIndividual(individual[0]))
		require.NoError(t, store.AssertMembership(individual[0], individual[1]))
	}

	require.NoError(t, store.DeclareProperty(ingredientProp))
	edges := [][2]string{
		{"baall:gefillteChar_1", "baall:char_1"},
		{"baall:borscht_1", "baall:beetroot_1"},
		{"baall:borscht_1", "baall:potato_1"},
	}
	for _, edge := range edges {
		require.NoError(t, store.AssertPropertyEdge(edge[0], ingredientProp, edge[1]))
	}

	store.MarkReady()
	return store
}
