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
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ClassificationResult is the outcome of classifying one query class against
// the named classes of a store.
//
// Ancestors are named classes whose denotation is a strict superset of the
// query denotation, ordered closest first: smallest superset first, ties
// broken lexically. Descendants are strict subsets, largest first, same tie
// break. Named classes with a denotation identical to the query are listed
// in Equivalents and additionally lead both lists; ⊤ is the exception, it is
// only ever reported as the final ancestor.
//
// Unsatisfiable marks a query with an empty denotation. Such a query is a
// terminal node: no descendants, no equivalents, ⊤ as its only ancestor.
type ClassificationResult struct {
	Query         string
	Expression    string
	Ancestors     []string
	Descendants   []string
	Equivalents   []string
	Unsatisfiable bool
	Members       []string
}

func (r *ClassificationResult) String() string {
	if r.Unsatisfiable {
		return fmt.Sprintf("%s: unsatisfiable", r.Query)
	}
	return fmt.Sprintf("%s: ancestors %v, descendants %v", r.Query, r.Ancestors, r.Descendants)
}

// Classifier places query classes into the named-class hierarchy of a store
// by denotation comparison: closed-world subsumption over asserted facts.
// It never mutates the store, any number of classifications may run
// concurrently against the same store.
type Classifier struct {
	store *Store
}

// NewClassifier returns a new classifier over the given store.
func NewClassifier(store *Store) *Classifier {
	return &Classifier{store: store}
}

// classRank is one named class with its denotation size, the sort key for
// closest-first ordering.
type classRank struct {
	iri  string
	size int
}

// Classify computes the position of the query class among all named classes
// of the store. The store must have been marked ready. The whole pass runs
// against one consistent snapshot of the store; ctx bounds it, a deadline
// hit surfaces as ErrClassificationTimeout.
func (classifier *Classifier) Classify(ctx context.Context, query *QueryClass) (*ClassificationResult, error) {
	s := classifier.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return nil, ErrStoreNotReady
	}

	denotation, err := s.denotation(query.EquivalentTo)
	if err != nil {
		return nil, err
	}

	res := &ClassificationResult{
		Query:      query.Name,
		Expression: fmt.Sprintf("%v", query.EquivalentTo),
	}
	for _, id := range denotation.IDs() {
		res.Members = append(res.Members, s.indivIRIs[id])
	}
	sort.Strings(res.Members)

	if denotation.Len() == 0 {
		// an empty query class signals an inconsistent restriction, report
		// it as a terminal node instead of applying vacuous subset logic
		res.Unsatisfiable = true
		res.Ancestors = []string{ThingIRI}
		return res, nil
	}

	var ancestors, descendants []classRank
	var equivalents []string
	for _, iri := range s.classIRIs {
		if err := checkBound(ctx); err != nil {
			return nil, err
		}
		if iri == ThingIRI {
			// ⊤ is an ancestor of everything, never a descendant and never
			// reported as an equivalent
			continue
		}
		classSet, err := s.namedDenotation(iri)
		if err != nil {
			return nil, err
		}
		rank := classRank{iri: iri, size: classSet.Len()}
		switch {
		case classSet.Equals(denotation):
			equivalents = append(equivalents, iri)
			ancestors = append(ancestors, rank)
			descendants = append(descendants, rank)
		case classSet.IsSubset(denotation):
			descendants = append(descendants, rank)
		case denotation.IsSubset(classSet):
			ancestors = append(ancestors, rank)
		}
	}

	// ancestors closest first: smallest superset first; descendants closest
	// first: largest subset first; lexical order breaks ties
	sort.Slice(ancestors, func(i, j int) bool {
		if ancestors[i].size != ancestors[j].size {
			return ancestors[i].size < ancestors[j].size
		}
		return ancestors[i].iri < ancestors[j].iri
	})
	sort.Slice(descendants, func(i, j int) bool {
		if descendants[i].size != descendants[j].size {
			return descendants[i].size > descendants[j].size
		}
		return descendants[i].iri < descendants[j].iri
	})
	sort.Strings(equivalents)

	for _, rank := range ancestors {
		res.Ancestors = append(res.Ancestors, rank.iri)
	}
	res.Ancestors = append(res.Ancestors, ThingIRI)
	for _, rank := range descendants {
		res.Descendants = append(res.Descendants, rank.iri)
	}
	res.Equivalents = equivalents
	return res, nil
}

// ClassifyAll classifies several query classes concurrently. The passes are
// read-only against a stable store and therefore embarrassingly parallel;
// workers bounds the number of goroutines, a value < 1 uses GOMAXPROCS.
// Results are returned in input order. The first error cancels the
// remaining work.
func (classifier *Classifier) ClassifyAll(ctx context.Context, queries []*QueryClass, workers int) ([]*ClassificationResult, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]*ClassificationResult, len(queries))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, query := range queries {
		i, query := i, query
		group.Go(func() error {
			res, err := classifier.Classify(groupCtx, query)
			if err != nil {
				return fmt.Errorf("query class %s: %w", query.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkBound translates a context deadline or cancellation into the
// classification error surface.
func checkBound(ctx context.Context) error {
	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return ErrClassificationTimeout
		}
		return ctx.Err()
	default:
		return nil
	}
}
