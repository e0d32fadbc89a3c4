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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenotationNamedClass(t *testing.T) {
	store := newFoodStore(t)

	// members of descendants are included
	fish, err := store.Denotation(NewNamedClass("baall:Fish"))
	require.NoError(t, err)
	assert.Equal(t, []string{"baall:char_1", "baall:herring_1"}, fish)

	char, err := store.Denotation(NewNamedClass("baall:Char"))
	require.NoError(t, err)
	assert.Equal(t, []string{"baall:char_1"}, char)

	// ⊤ denotes every individual
	everything, err := store.Denotation(NewNamedClass(ThingIRI))
	require.NoError(t, err)
	assert.Len(t, everything, 6)
}

func TestDenotationConjunction(t *testing.T) {
	store := newFoodStore(t)
	fish := NewNamedClass("baall:Fish")
	food := NewNamedClass("baall:Food")
	vegetable := NewNamedClass("baall:Vegetable")

	got, err := store.Denotation(NewConjunction(food, fish))
	require.NoError(t, err)
	assert.Equal(t, []string{"baall:char_1", "baall:herring_1"}, got)

	// conjunction denotation is the intersection of the operand denotations,
	// in any operand order
	swapped, err := store.Denotation(NewConjunction(fish, food))
	require.NoError(t, err)
	assert.Equal(t, got, swapped)

	empty, err := store.Denotation(NewConjunction(fish, vegetable))
	require.NoError(t, err)
	assert.Empty(t, empty)

	// single operand is fine, zero operands are not
	single, err := store.Denotation(NewConjunction(fish))
	require.NoError(t, err)
	assert.Equal(t, got, single)
	_, err = store.Denotation(NewConjunction())
	assert.ErrorIs(t, err, ErrInvalidExpression)
}

func TestDenotationExistential(t *testing.T) {
	store := newFoodStore(t)

	dishes, err := store.Denotation(
		NewExistentialRestriction(ingredientProp, NewNamedClass("baall:Char")))
	require.NoError(t, err)
	assert.Equal(t, []string{"baall:gefillteChar_1"}, dishes)

	withVegetable, err := store.Denotation(
		NewExistentialRestriction(ingredientProp, NewNamedClass("baall:Vegetable")))
	require.NoError(t, err)
	assert.Equal(t, []string{"baall:borscht_1"}, withVegetable)
}

func TestDenotationInverse(t *testing.T) {
	store := newFoodStore(t)

	needed, err := store.Denotation(
		NewInverseExistentialRestriction(ingredientProp, NewNamedClass("baall:GefillteChar")))
	require.NoError(t, err)
	assert.Equal(t, []string{"baall:char_1"}, needed)

	neededForBorscht, err := store.Denotation(
		NewInverseExistentialRestriction(ingredientProp, NewNamedClass("baall:Borscht")))
	require.NoError(t, err)
	assert.Equal(t, []string{"baall:beetroot_1", "baall:potato_1"}, neededForBorscht)
}

func TestDenotationAtLeast(t *testing.T) {
	store := newFoodStore(t)
	vegetable := NewNamedClass("baall:Vegetable")

	one, err := store.Denotation(NewAtLeastRestriction(ingredientProp, 1, vegetable))
	require.NoError(t, err)
	assert.Equal(t, []string{"baall:borscht_1"}, one)

	two, err := store.Denotation(NewAtLeastRestriction(ingredientProp, 2, vegetable))
	require.NoError(t, err)
	assert.Equal(t, []string{"baall:borscht_1"}, two)

	three, err := store.Denotation(NewAtLeastRestriction(ingredientProp, 3, vegetable))
	require.NoError(t, err)
	assert.Empty(t, three)

	_, err = store.Denotation(NewAtLeastRestriction(ingredientProp, 0, vegetable))
	assert.ErrorIs(t, err, ErrInvalidExpression)
}

func TestDenotationAtLeastCountsDistinctObjects(t *testing.T) {
	store := newFoodStore(t)
	// a second asserted edge to the same object must not raise the count
	require.NoError(t, store.AssertPropertyEdge("baall:gefillteChar_1", ingredientProp, "baall:char_1"))

	two, err := store.Denotation(NewAtLeastRestriction(ingredientProp, 2, NewNamedClass("baall:Fish")))
	require.NoError(t, err)
	assert.Empty(t, two)
}

func TestDenotationErrors(t *testing.T) {
	store := newFoodStore(t)

	_, err := store.Denotation(NewNamedClass("baall:NoSuchClass"))
	assert.ErrorIs(t, err, ErrUnknownEntity)

	_, err = store.Denotation(NewExistentialRestriction("baall:noSuchProperty", NewNamedClass("baall:Char")))
	assert.ErrorIs(t, err, ErrUnknownEntity)

	_, err = store.Denotation(NewExistentialRestriction(ingredientProp, nil))
	assert.ErrorIs(t, err, ErrInvalidExpression)

	_, err = store.Denotation(nil)
	assert.ErrorIs(t, err, ErrInvalidExpression)

	// individuals are not class expressions
	_, err = store.Denotation(NewNamedClass("baall:char_1"))
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestDenotationDoesNotMutate(t *testing.T) {
	store := newFoodStore(t)
	before := store.Revision()
	_, err := store.Denotation(NewConjunction(
		NewNamedClass("baall:Food"),
		NewExistentialRestriction(ingredientProp, NewNamedClass("baall:Char"))))
	require.NoError(t, err)
	assert.Equal(t, before, store.Revision())
}
