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

// IndividualSet is a set of individuals identified by their internal ids.
// It is the value domain of denotations: every class expression evaluates to
// an IndividualSet.
type IndividualSet struct {
	m map[uint]struct{}
}

// NewIndividualSet returns a new empty set with the given capacity hint.
func NewIndividualSet(initialCapacity uint) *IndividualSet {
	return &IndividualSet{m: make(map[uint]struct{}, initialCapacity)}
}

// ContainsID tests if the individual with the given id is in the set.
func (s *IndividualSet) ContainsID(id uint) bool {
	_, has := s.m[id]
	return has
}

// AddID adds an individual id to the set, it returns true if the set changed.
func (s *IndividualSet) AddID(id uint) bool {
	oldLen := len(s.m)
	s.m[id] = struct{}{}
	return oldLen != len(s.m)
}

// Len returns the number of individuals in the set.
func (s *IndividualSet) Len() int {
	return len(s.m)
}

// Union adds all elements of other to s, it returns true if s changed.
func (s *IndividualSet) Union(other *IndividualSet) bool {
	oldLen := len(s.m)
	for v := range other.m {
		s.m[v] = struct{}{}
	}
	return oldLen != len(s.m)
}

// Intersect returns a new set containing the elements present in both s and
// other. The receiver is not changed.
func (s *IndividualSet) Intersect(other *IndividualSet) *IndividualSet {
	small, large := s, other
	if len(large.m) < len(small.m) {
		small, large = large, small
	}
	res := NewIndividualSet(uint(len(small.m)))
	for v := range small.m {
		if _, has := large.m[v]; has {
			res.m[v] = struct{}{}
		}
	}
	return res
}

// IsSubset tests if s ⊆ other.
func (s *IndividualSet) IsSubset(other *IndividualSet) bool {
	if len(s.m) > len(other.m) {
		return false
	}
	for v := range s.m {
		if _, has := other.m[v]; !has {
			return false
		}
	}
	return true
}

// Equals checks if s = other.
func (s *IndividualSet) Equals(other *IndividualSet) bool {
	return len(s.m) == len(other.m) && s.IsSubset(other)
}

// Copy returns a deep copy of s.
func (s *IndividualSet) Copy() *IndividualSet {
	res := NewIndividualSet(uint(len(s.m)))
	for v := range s.m {
		res.m[v] = struct{}{}
	}
	return res
}

// IDs returns the elements of the set in unspecified order.
func (s *IndividualSet) IDs() []uint {
	res := make([]uint, 0, len(s.m))
	for v := range s.m {
		res = append(res, v)
	}
	return res
}
