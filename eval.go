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

import "sort"

// Denotation evaluates a class expression against the current asserted facts
// and returns the individuals it describes, sorted lexically. Evaluation is
// deterministic and never mutates the store.
//
// Referencing an undeclared identifier fails with ErrUnknownEntity,
// structurally malformed expressions fail with ErrInvalidExpression.
func (s *Store) Denotation(expr ClassExpression) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, err := s.denotation(expr)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, set.Len())
	for _, id := range set.IDs() {
		res = append(res, s.indivIRIs[id])
	}
	sort.Strings(res)
	return res, nil
}

// denotation is the evaluator core over internal ids. The caller must hold
// the store lock (either side).
func (s *Store) denotation(expr ClassExpression) (*IndividualSet, error) {
	switch e := expr.(type) {
	case nil:
		return nil, invalidExpression("expression is nil")
	case NamedClass:
		return s.namedDenotation(string(e))
	case *Conjunction:
		return s.conjunctionDenotation(e)
	case *ExistentialRestriction:
		return s.existentialDenotation(e.Property, e.Filler)
	case *InverseExistentialRestriction:
		return s.inverseDenotation(e.Property, e.Filler)
	case *AtLeastRestriction:
		return s.atLeastDenotation(e.Property, e.Min, e.Filler)
	default:
		return nil, invalidExpression("unsupported expression variant %T", expr)
	}
}

// namedDenotation returns the members of a named class: its direct asserted
// members plus the members of every descendant class. For ⊤ this is every
// individual in the store.
func (s *Store) namedDenotation(iri string) (*IndividualSet, error) {
	if iri == ThingIRI {
		res := NewIndividualSet(uint(len(s.indivIRIs)))
		for id := range s.indivIRIs {
			res.AddID(uint(id))
		}
		return res, nil
	}
	id, err := s.classID(iri)
	if err != nil {
		return nil, err
	}
	res := s.members[id].Copy()
	for descendant := range s.subclass.Closure().Pred(id) {
		res.Union(s.members[descendant])
	}
	return res, nil
}

func (s *Store) conjunctionDenotation(conjunction *Conjunction) (*IndividualSet, error) {
	if len(conjunction.Operands) == 0 {
		return nil, invalidExpression("conjunction without operands")
	}
	res, err := s.denotation(conjunction.Operands[0])
	if err != nil {
		return nil, err
	}
	for _, operand := range conjunction.Operands[1:] {
		next, err := s.denotation(operand)
		if err != nil {
			return nil, err
		}
		res = res.Intersect(next)
	}
	return res, nil
}

// existentialDenotation returns all x with an edge (x, p, y), y in the
// filler denotation.
func (s *Store) existentialDenotation(property string, filler ClassExpression) (*IndividualSet, error) {
	propID, err := s.propID(property)
	if err != nil {
		return nil, err
	}
	fillerSet, err := s.denotation(filler)
	if err != nil {
		return nil, err
	}
	res := NewIndividualSet(0)
	for subject, objects := range s.edges[propID].Mapping {
		for object := range objects {
			if fillerSet.ContainsID(object) {
				res.AddID(subject)
				break
			}
		}
	}
	return res, nil
}

// inverseDenotation returns all y with an edge (x, p, y), x in the filler
// denotation: the property traversed backward.
func (s *Store) inverseDenotation(property string, filler ClassExpression) (*IndividualSet, error) {
	propID, err := s.propID(property)
	if err != nil {
		return nil, err
	}
	fillerSet, err := s.denotation(filler)
	if err != nil {
		return nil, err
	}
	res := NewIndividualSet(0)
	for subject, objects := range s.edges[propID].Mapping {
		if !fillerSet.ContainsID(subject) {
			continue
		}
		for object := range objects {
			res.AddID(object)
		}
	}
	return res, nil
}

// atLeastDenotation returns all x with at least min edges (x, p, y_i) to
// distinct y_i in the filler denotation. Duplicate edges to the same object
// cannot occur in the adjacency structure, so counting objects suffices.
func (s *Store) atLeastDenotation(property string, min uint, filler ClassExpression) (*IndividualSet, error) {
	if min == 0 {
		return nil, invalidExpression("at-least restriction with min 0")
	}
	propID, err := s.propID(property)
	if err != nil {
		return nil, err
	}
	fillerSet, err := s.denotation(filler)
	if err != nil {
		return nil, err
	}
	res := NewIndividualSet(0)
	for subject, objects := range s.edges[propID].Mapping {
		var count uint
		for object := range objects {
			if fillerSet.ContainsID(object) {
				count++
				if count >= min {
					res.AddID(subject)
					break
				}
			}
		}
	}
	return res, nil
}
