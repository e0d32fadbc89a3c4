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
	"errors"
	"fmt"
	"math/rand"
)

// RandomStoreBuilder fills a store with randomly generated classes,
// individuals, properties and assertions. It exists for benchmarks and
// stress tests, the generated knowledge bases carry no meaning.
type RandomStoreBuilder struct {
	NumClasses       uint
	NumIndividuals   uint
	NumProperties    uint
	NumSubclassEdges uint
	NumMemberships   uint
	NumPropertyEdges uint
}

// Build returns a new ready store populated according to the builder
// configuration. Subclass edges only ever point from a higher class index to
// a lower one, so the generated hierarchy is guaranteed acyclic.
func (builder *RandomStoreBuilder) Build(rng *rand.Rand) (*Store, error) {
	if builder.NumClasses < 2 || builder.NumIndividuals == 0 || builder.NumProperties == 0 {
		return nil, errors.New("random builder needs at least 2 classes, 1 individual and 1 property")
	}
	store := NewStore()
	var i uint
	for ; i < builder.NumClasses; i++ {
		if err := store.DeclareClass(randomClassIRI(i)); err != nil {
			return nil, err
		}
	}
	for i = 0; i < builder.NumIndividuals; i++ {
		if err := store.DeclareIndividual(randomIndividualIRI(i)); err != nil {
			return nil, err
		}
	}
	for i = 0; i < builder.NumProperties; i++ {
		if err := store.DeclareProperty(randomPropertyIRI(i)); err != nil {
			return nil, err
		}
	}
	for i = 0; i < builder.NumSubclassEdges; i++ {
		child := uint(rng.Intn(int(builder.NumClasses-1))) + 1
		parent := uint(rng.Intn(int(child)))
		err := store.AssertSubclass(randomClassIRI(child), randomClassIRI(parent))
		if err != nil {
			return nil, err
		}
	}
	for i = 0; i < builder.NumMemberships; i++ {
		individual := uint(rng.Intn(int(builder.NumIndividuals)))
		class := uint(rng.Intn(int(builder.NumClasses)))
		err := store.AssertMembership(randomIndividualIRI(individual), randomClassIRI(class))
		if err != nil {
			return nil, err
		}
	}
	for i = 0; i < builder.NumPropertyEdges; i++ {
		subject := uint(rng.Intn(int(builder.NumIndividuals)))
		object := uint(rng.Intn(int(builder.NumIndividuals)))
		property := uint(rng.Intn(int(builder.NumProperties)))
		err := store.AssertPropertyEdge(randomIndividualIRI(subject),
			randomPropertyIRI(property), randomIndividualIRI(object))
		if err != nil {
			return nil, err
		}
	}
	store.MarkReady()
	return store, nil
}

// RandomQuery returns a random query class over the generated store: a
// conjunction of a named class and an existential restriction.
func (builder *RandomStoreBuilder) RandomQuery(rng *rand.Rand, name string) *QueryClass {
	class := NewNamedClass(randomClassIRI(uint(rng.Intn(int(builder.NumClasses)))))
	filler := NewNamedClass(randomClassIRI(uint(rng.Intn(int(builder.NumClasses)))))
	property := randomPropertyIRI(uint(rng.Intn(int(builder.NumProperties))))
	return NewQueryClass(name, NewConjunction(class, NewExistentialRestriction(property, filler)))
}

func randomClassIRI(i uint) string {
	return fmt.Sprintf("rand:C%d", i)
}

func randomIndividualIRI(i uint) string {
	return fmt.Sprintf("rand:a%d", i)
}

func randomPropertyIRI(i uint) string {
	return fmt.Sprintf("rand:r%d", i)
}
