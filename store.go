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
	"sort"
	"strings"
	"sync"
)

// ClassNode is the read view of a named class: its entity, its direct
// asserted superclasses and its direct asserted members. Superclasses and
// members are identifiers, not object references, inferred facts are not
// included.
type ClassNode struct {
	Entity             *Entity
	DirectSuperclasses []string
	DirectMembers      []string
}

// PropertyEdge is one asserted triple (subject, property, object).
type PropertyEdge struct {
	Subject  string
	Property string
	Object   string
}

// Store holds the asserted facts of the knowledge base: classes, individuals
// and object properties, subclass edges, class memberships and property
// edges. All mutation is additive, no asserted fact is ever retracted.
//
// Identifiers are interned: the public surface speaks IRIs, internally every
// entity of a kind is encoded as a dense uint id. The subclass hierarchy
// lives in a SubclassGraph over class ids, property edges in one Relation
// per property over individual ids.
//
// A store starts out not ready; callers populate it and then call MarkReady
// once, after which classification is allowed. Asserts remain legal after
// that (the knowledge base is monotonic), every successful assert bumps the
// revision counter so that cached classification results can be discarded.
//
// Mutation is serialized by a single-writer lock; classification passes take
// the read side for their whole duration and therefore see a consistent
// point-in-time view.
type Store struct {
	mu sync.RWMutex

	entities map[string]*Entity

	classIDs  map[string]uint
	classIRIs []string
	indivIDs  map[string]uint
	indivIRIs []string
	propIDs   map[string]uint
	propIRIs  []string

	subclass *SubclassGraph
	// direct asserted members per class id
	members []*IndividualSet
	// asserted edges per property id, over individual ids
	edges []*Relation

	ready    bool
	revision uint64
}

// NewStore returns a new empty store containing only the top class ⊤
// (ThingIRI). The store is not ready until MarkReady is called.
func NewStore() *Store {
	s := &Store{
		entities: make(map[string]*Entity),
		classIDs: make(map[string]uint),
		indivIDs: make(map[string]uint),
		propIDs:  make(map[string]uint),
		subclass: NewSubclassGraph(),
	}
	if err := s.DeclareClass(ThingIRI); err != nil {
		// cannot happen on an empty store
		panic(err)
	}
	return s
}

// prefixOf returns the CURIE prefix of an identifier, or "" if it has none.
func prefixOf(iri string) string {
	if i := strings.Index(iri, ":"); i > 0 && !strings.Contains(iri[:i], "/") {
		return iri[:i]
	}
	return ""
}

func (s *Store) declare(iri string, kind EntityKind) (uint, error) {
	if iri == "" {
		return 0, unknownEntity(iri)
	}
	if _, has := s.entities[iri]; has {
		return 0, duplicateEntity(iri)
	}
	s.entities[iri] = &Entity{IRI: iri, Kind: kind, Prefix: prefixOf(iri)}
	var id uint
	switch kind {
	case KindClass:
		id = s.subclass.AddNode()
		s.classIDs[iri] = id
		s.classIRIs = append(s.classIRIs, iri)
		s.members = append(s.members, NewIndividualSet(0))
	case KindIndividual:
		id = uint(len(s.indivIRIs))
		s.indivIDs[iri] = id
		s.indivIRIs = append(s.indivIRIs, iri)
	case KindObjectProperty:
		id = uint(len(s.propIRIs))
		s.propIDs[iri] = id
		s.propIRIs = append(s.propIRIs, iri)
	}
	s.revision++
	return id, nil
}

// DeclareClass adds a new named class to the store.
func (s *Store) DeclareClass(iri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.declare(iri, KindClass)
	if err == nil {
		Metrics().IncStoreAssert("declare_class")
	}
	return err
}

// DeclareIndividual adds a new individual to the store.
func (s *Store) DeclareIndividual(iri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.declare(iri, KindIndividual)
	if err == nil {
		Metrics().IncStoreAssert("declare_individual")
	}
	return err
}

// DeclareProperty adds a new object property to the store.
func (s *Store) DeclareProperty(iri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.declare(iri, KindObjectProperty)
	if err != nil {
		return err
	}
	// edges is indexed by property id, grow it in step
	for uint(len(s.edges)) <= id {
		s.edges = append(s.edges, NewRelation(0))
	}
	Metrics().IncStoreAssert("declare_property")
	return nil
}

func (s *Store) classID(iri string) (uint, error) {
	id, has := s.classIDs[iri]
	if has {
		return id, nil
	}
	if e, declared := s.entities[iri]; declared {
		return 0, wrongKind(iri, KindClass, e.Kind)
	}
	return 0, unknownEntity(iri)
}

func (s *Store) indivID(iri string) (uint, error) {
	id, has := s.indivIDs[iri]
	if has {
		return id, nil
	}
	if e, declared := s.entities[iri]; declared {
		return 0, wrongKind(iri, KindIndividual, e.Kind)
	}
	return 0, unknownEntity(iri)
}

func (s *Store) propID(iri string) (uint, error) {
	id, has := s.propIDs[iri]
	if has {
		return id, nil
	}
	if e, declared := s.entities[iri]; declared {
		return 0, wrongKind(iri, KindObjectProperty, e.Kind)
	}
	return 0, unknownEntity(iri)
}

// AssertSubclass asserts child ⊑ parent. Both classes must be declared.
// Assertions that would introduce a cycle into the subclass graph are
// rejected with ErrCyclicSubclass.
func (s *Store) AssertSubclass(child, parent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	childID, err := s.classID(child)
	if err != nil {
		return err
	}
	parentID, err := s.classID(parent)
	if err != nil {
		return err
	}
	if s.subclass.WouldCycle(childID, parentID) {
		return cyclicSubclass(child, parent)
	}
	if s.subclass.AddEdge(childID, parentID) {
		s.revision++
		Metrics().IncStoreAssert("subclass")
	}
	return nil
}

// AssertMembership asserts that the individual is a direct member of the
// class.
func (s *Store) AssertMembership(individual, class string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	indivID, err := s.indivID(individual)
	if err != nil {
		return err
	}
	classID, err := s.classID(class)
	if err != nil {
		return err
	}
	if s.members[classID].AddID(indivID) {
		s.revision++
		Metrics().IncStoreAssert("membership")
	}
	return nil
}

// AssertPropertyEdge asserts the triple (subject, property, object).
func (s *Store) AssertPropertyEdge(subject, property, object string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	subjectID, err := s.indivID(subject)
	if err != nil {
		return err
	}
	propID, err := s.propID(property)
	if err != nil {
		return err
	}
	objectID, err := s.indivID(object)
	if err != nil {
		return err
	}
	if s.edges[propID].Add(subjectID, objectID) {
		s.revision++
		Metrics().IncStoreAssert("property_edge")
	}
	return nil
}

// MarkReady marks the store as populated. Classification is rejected with
// ErrStoreNotReady before this is called.
func (s *Store) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true
}

// Ready reports whether the store has been marked ready.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Revision returns the mutation counter. It increases with every successful
// declare or assert and never decreases.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Entity looks up any declared entity by identifier.
func (s *Store) Entity(iri string) (*Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, has := s.entities[iri]
	if !has {
		return nil, unknownEntity(iri)
	}
	return e, nil
}

// Class returns the read view of a named class: direct superclasses and
// direct members, both sorted lexically.
func (s *Store) Class(iri string) (*ClassNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, err := s.classID(iri)
	if err != nil {
		return nil, err
	}
	node := &ClassNode{Entity: s.entities[iri]}
	for parent := range s.subclass.Parents(id) {
		node.DirectSuperclasses = append(node.DirectSuperclasses, s.classIRIs[parent])
	}
	for _, member := range s.members[id].IDs() {
		node.DirectMembers = append(node.DirectMembers, s.indivIRIs[member])
	}
	sort.Strings(node.DirectSuperclasses)
	sort.Strings(node.DirectMembers)
	return node, nil
}

// PropertyEdges returns all asserted edges of a property, sorted by subject
// and then object.
func (s *Store) PropertyEdges(property string) ([]PropertyEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, err := s.propID(property)
	if err != nil {
		return nil, err
	}
	var res []PropertyEdge
	for subject, objects := range s.edges[id].Mapping {
		for object := range objects {
			res = append(res, PropertyEdge{
				Subject:  s.indivIRIs[subject],
				Property: property,
				Object:   s.indivIRIs[object],
			})
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Subject != res[j].Subject {
			return res[i].Subject < res[j].Subject
		}
		return res[i].Object < res[j].Object
	})
	return res, nil
}

// Classes returns the identifiers of all named classes, sorted lexically.
func (s *Store) Classes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedStrings(s.classIRIs)
}

// Individuals returns the identifiers of all individuals, sorted lexically.
func (s *Store) Individuals() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedStrings(s.indivIRIs)
}

// Properties returns the identifiers of all object properties, sorted
// lexically.
func (s *Store) Properties() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedStrings(s.propIRIs)
}

// NumClasses returns the number of declared classes including ⊤.
func (s *Store) NumClasses() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint(len(s.classIRIs))
}

// NumIndividuals returns the number of declared individuals.
func (s *Store) NumIndividuals() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint(len(s.indivIRIs))
}

// Ancestors lists the named classes above the given class in the asserted
// hierarchy, closest first: first the direct superclasses, then their
// superclasses and so on, ties within one distance broken lexically. ⊤ is
// always the final entry for every class except ⊤ itself.
func (s *Store) Ancestors(class string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, err := s.classID(class)
	if err != nil {
		return nil, err
	}
	levels := s.levelNames(s.subclass.LevelOrder(id, WalkUp))
	if class == ThingIRI {
		return levels, nil
	}
	// ⊤ goes last even when a direct edge to it is asserted alongside
	// deeper ancestors
	res := make([]string, 0, len(levels)+1)
	for _, name := range levels {
		if name != ThingIRI {
			res = append(res, name)
		}
	}
	return append(res, ThingIRI), nil
}

// Descendants lists the named classes below the given class in the asserted
// hierarchy, closest first, ties within one distance broken lexically.
// For ⊤ every other class is a descendant; classes without an asserted
// parent count as its direct children.
func (s *Store) Descendants(class string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, err := s.classID(class)
	if err != nil {
		return nil, err
	}
	if class != ThingIRI {
		return s.levelNames(s.subclass.LevelOrder(id, WalkDown)), nil
	}
	// every class lives below ⊤: the first level is its asserted direct
	// children together with the parentless classes, deeper classes follow
	// at their BFS distance
	var roots []uint
	for classID := range s.classIRIs {
		cid := uint(classID)
		if cid == id {
			continue
		}
		parents := s.subclass.Parents(cid)
		if _, direct := parents[id]; direct || len(parents) == 0 {
			roots = append(roots, cid)
		}
	}
	return s.levelNames(s.subclass.LevelOrderFrom(roots, WalkDown)), nil
}

// levelNames maps BFS levels of class ids to a flat identifier list, each
// level sorted lexically.
func (s *Store) levelNames(levels [][]uint) []string {
	var res []string
	for _, level := range levels {
		names := make([]string, len(level))
		for i, id := range level {
			names[i] = s.classIRIs[id]
		}
		sort.Strings(names)
		res = append(res, names...)
	}
	return res
}
