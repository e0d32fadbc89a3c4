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
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassifyNeededIngredient reproduces the "needed ingredient" query:
// everything some gefillte char dish needs must classify with Char below it.
func TestClassifyNeededIngredient(t *testing.T) {
	store := newFoodStore(t)
	classifier := NewClassifier(store)

	query := NewQueryClass("q:NeededForGefillteChar",
		NewInverseExistentialRestriction(ingredientProp, NewNamedClass("baall:GefillteChar")))
	result, err := classifier.Classify(context.Background(), query)
	require.NoError(t, err)

	assert.False(t, result.Unsatisfiable)
	assert.Contains(t, result.Descendants, "baall:Char")
	assert.Equal(t, []string{"baall:char_1"}, result.Members)
	// closest ancestors first, ⊤ last
	assert.Equal(t, []string{"baall:Char", "baall:Fish", "baall:Food", ThingIRI}, result.Ancestors)
	assert.Equal(t, []string{"baall:Char"}, result.Equivalents)
}

// TestClassifyDishLookup reproduces the "dish with ingredient" query.
func TestClassifyDishLookup(t *testing.T) {
	store := newFoodStore(t)
	classifier := NewClassifier(store)

	query := NewQueryClass("q:DishWithChar", NewConjunction(
		NewNamedClass("baall:Food"),
		NewExistentialRestriction(ingredientProp, NewNamedClass("baall:Char"))))
	result, err := classifier.Classify(context.Background(), query)
	require.NoError(t, err)

	assert.Contains(t, result.Descendants, "baall:GefillteChar")
	assert.Equal(t, []string{"baall:GefillteChar", "baall:Dish", "baall:Food", ThingIRI}, result.Ancestors)
	assert.Equal(t, []string{"baall:gefillteChar_1"}, result.Members)
}

func TestClassifyStrictSubsumption(t *testing.T) {
	store := newFoodStore(t)
	classifier := NewClassifier(store)

	// Food denotes everything here, so every other class is a strict
	// descendant; ⊤ stays an ancestor but never an equivalent
	query := NewQueryClass("q:AnyFood", NewNamedClass("baall:Food"))
	result, err := classifier.Classify(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, []string{"baall:Food", ThingIRI}, result.Ancestors)
	assert.NotContains(t, result.Descendants, ThingIRI)
	// largest subsets first, the equivalent class leads
	assert.Equal(t, "baall:Food", result.Descendants[0])
	assert.Equal(t, []string{"baall:Food"}, result.Equivalents)
	assert.Contains(t, result.Descendants, "baall:Char")
}

func TestClassifyUnsatisfiable(t *testing.T) {
	store := newFoodStore(t)
	classifier := NewClassifier(store)

	query := NewQueryClass("q:FishyVegetable", NewConjunction(
		NewNamedClass("baall:Fish"), NewNamedClass("baall:Vegetable")))
	result, err := classifier.Classify(context.Background(), query)
	require.NoError(t, err)

	assert.True(t, result.Unsatisfiable)
	assert.Empty(t, result.Descendants)
	assert.Empty(t, result.Equivalents)
	assert.Equal(t, []string{ThingIRI}, result.Ancestors)
	assert.Empty(t, result.Members)
}

func TestClassifyStoreNotReady(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.DeclareClass("baall:Food"))
	classifier := NewClassifier(store)

	_, err := classifier.Classify(context.Background(),
		NewQueryClass("q:Q", NewNamedClass("baall:Food")))
	assert.ErrorIs(t, err, ErrStoreNotReady)
}

func TestClassifyUnknownEntity(t *testing.T) {
	store := newFoodStore(t)
	classifier := NewClassifier(store)

	_, err := classifier.Classify(context.Background(),
		NewQueryClass("q:Q", NewNamedClass("baall:NoSuchClass")))
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestClassifyTimeout(t *testing.T) {
	store := newFoodStore(t)
	classifier := NewClassifier(store)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, err := classifier.Classify(ctx,
		NewQueryClass("q:Q", NewNamedClass("baall:Food")))
	assert.ErrorIs(t, err, ErrClassificationTimeout)
}

func TestClassifyIdempotent(t *testing.T) {
	store := newFoodStore(t)
	classifier := NewClassifier(store)
	query := NewQueryClass("q:AnyFish", NewNamedClass("baall:Fish"))

	first, err := classifier.Classify(context.Background(), query)
	require.NoError(t, err)
	second, err := classifier.Classify(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassifyAll(t *testing.T) {
	store := newFoodStore(t)
	classifier := NewClassifier(store)

	queries := []*QueryClass{
		NewQueryClass("q:AnyFish", NewNamedClass("baall:Fish")),
		NewQueryClass("q:AnyVegetable", NewNamedClass("baall:Vegetable")),
		NewQueryClass("q:Nothing", NewConjunction(
			NewNamedClass("baall:Fish"), NewNamedClass("baall:Vegetable"))),
	}
	results, err := classifier.ClassifyAll(context.Background(), queries, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	// results stay in input order
	assert.Equal(t, "q:AnyFish", results[0].Query)
	assert.Equal(t, "q:AnyVegetable", results[1].Query)
	assert.True(t, results[2].Unsatisfiable)
}

func TestClassifyAllError(t *testing.T) {
	store := newFoodStore(t)
	classifier := NewClassifier(store)

	queries := []*QueryClass{
		NewQueryClass("q:AnyFish", NewNamedClass("baall:Fish")),
		NewQueryClass("q:Broken", NewNamedClass("baall:NoSuchClass")),
	}
	_, err := classifier.ClassifyAll(context.Background(), queries, 0)
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func BenchmarkClassify(b *testing.B) {
	builder := RandomStoreBuilder{
		NumClasses:       200,
		NumIndividuals:   1000,
		NumProperties:    10,
		NumSubclassEdges: 400,
		NumMemberships:   2000,
		NumPropertyEdges: 4000,
	}
	rng := rand.New(rand.NewSource(42))
	store, err := builder.Build(rng)
	if err != nil {
		b.Fatal(err)
	}
	classifier := NewClassifier(store)
	query := builder.RandomQuery(rng, "q:Bench")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := classifier.Classify(context.Background(), query); err != nil {
			b.Fatal(err)
		}
	}
}
