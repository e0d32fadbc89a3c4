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

// Relation is a binary relation over internal ids, stored in both directions
// so that forward and inverse lookups are both map accesses.
// Property edges are kept in one Relation per property; the subclass closure
// uses a Relation as well.
type Relation struct {
	Mapping        map[uint]map[uint]struct{}
	ReverseMapping map[uint]map[uint]struct{}
}

// NewRelation returns a new empty relation with the given capacity hint.
func NewRelation(initialCapacity uint) *Relation {
	return &Relation{
		Mapping:        make(map[uint]map[uint]struct{}, initialCapacity),
		ReverseMapping: make(map[uint]map[uint]struct{}, initialCapacity),
	}
}

func addToRelation(m map[uint]map[uint]struct{}, first, second uint) bool {
	inner, has := m[first]
	if !has {
		inner = make(map[uint]struct{})
		m[first] = inner
	}
	oldLen := len(inner)
	inner[second] = struct{}{}
	return len(inner) != oldLen
}

// Add inserts the pair (c, d), it returns true if the relation changed.
// Both directions are always kept consistent.
func (r *Relation) Add(c, d uint) bool {
	first := addToRelation(r.Mapping, c, d)
	addToRelation(r.ReverseMapping, d, c)
	return first
}

// Contains tests if the pair (c, d) is in the relation.
func (r *Relation) Contains(c, d uint) bool {
	inner, hasInner := r.Mapping[c]
	if !hasInner {
		return false
	}
	_, has := inner[d]
	return has
}

// Succ returns the successors of c, that is all d with (c, d) ∈ r.
// The returned map must not be modified.
func (r *Relation) Succ(c uint) map[uint]struct{} {
	return r.Mapping[c]
}

// Pred returns the predecessors of d, that is all c with (c, d) ∈ r.
// The returned map must not be modified.
func (r *Relation) Pred(d uint) map[uint]struct{} {
	return r.ReverseMapping[d]
}

// SuccCount returns the number of distinct successors of c.
func (r *Relation) SuccCount(c uint) int {
	return len(r.Mapping[c])
}
