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
	"fmt"
	"strings"
)

//// Entities ////

// EntityKind tags an entity as a class, an individual or an object property.
type EntityKind int

const (
	// KindClass marks a named class A ∈ N_C.
	KindClass EntityKind = iota
	// KindIndividual marks an individual a ∈ N_I.
	KindIndividual
	// KindObjectProperty marks an object property r ∈ N_R.
	KindObjectProperty
)

func (kind EntityKind) String() string {
	switch kind {
	case KindClass:
		return "Class"
	case KindIndividual:
		return "Individual"
	case KindObjectProperty:
		return "ObjectProperty"
	default:
		return "Unknown"
	}
}

// Entity is a named element of the knowledge base, identified by an IRI that
// is unique within one store across all kinds.
// The Prefix is the namespace prefix the IRI was registered under, it carries
// no logical meaning.
type Entity struct {
	IRI    string
	Kind   EntityKind
	Prefix string
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s(%s)", e.Kind, e.IRI)
}

// ThingIRI is the identifier of the top class ⊤, present in every store.
// Every named class is a subclass of it and its denotation contains every
// individual.
const ThingIRI = "owl:Thing"

//// Class expressions ////

// ClassExpression is the interface for all class expression definitions.
// Class expressions are defined recursively, this is the general interface.
// The concrete variants are NamedClass, Conjunction, ExistentialRestriction,
// InverseExistentialRestriction and AtLeastRestriction.
type ClassExpression interface {
	String() string
}

// NamedClass refers to a named class by its IRI (or a registered CURIE).
type NamedClass string

// NewNamedClass returns a new NamedClass for the given identifier.
func NewNamedClass(iri string) NamedClass {
	return NamedClass(iri)
}

func (name NamedClass) String() string {
	return string(name)
}

// Conjunction is a class expression of the form C1 ⊓ ... ⊓ Cn.
// A conjunction must have at least one operand, an empty operand list is
// rejected during evaluation.
type Conjunction struct {
	Operands []ClassExpression
}

// NewConjunction returns a new conjunction of the given operands.
func NewConjunction(operands ...ClassExpression) *Conjunction {
	return &Conjunction{Operands: operands}
}

func (conjunction *Conjunction) String() string {
	strs := make([]string, len(conjunction.Operands))
	for i, operand := range conjunction.Operands {
		strs[i] = fmt.Sprintf("%v", operand)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " ⊓ "))
}

// ExistentialRestriction is a class expression of the form ∃ r.C: all
// individuals with at least one r edge to an individual in C.
type ExistentialRestriction struct {
	Property string
	Filler   ClassExpression
}

// NewExistentialRestriction returns a new restriction of the form ∃ r.C.
func NewExistentialRestriction(property string, filler ClassExpression) *ExistentialRestriction {
	return &ExistentialRestriction{Property: property, Filler: filler}
}

func (existential *ExistentialRestriction) String() string {
	return fmt.Sprintf("∃ %s.%v", existential.Property, existential.Filler)
}

// InverseExistentialRestriction is a class expression of the form ∃ r⁻.C:
// all individuals that are the object of an r edge whose subject is in C.
// This is the construct behind "needed ingredient" queries, it traverses a
// property backward.
type InverseExistentialRestriction struct {
	Property string
	Filler   ClassExpression
}

// NewInverseExistentialRestriction returns a new restriction of the form
// ∃ r⁻.C.
func NewInverseExistentialRestriction(property string, filler ClassExpression) *InverseExistentialRestriction {
	return &InverseExistentialRestriction{Property: property, Filler: filler}
}

func (inverse *InverseExistentialRestriction) String() string {
	return fmt.Sprintf("∃ %s⁻.%v", inverse.Property, inverse.Filler)
}

// AtLeastRestriction is a class expression of the form ≥ n r.C: all
// individuals with at least n r edges to distinct individuals in C.
// Duplicate edges to the same object count once. Min must be at least 1.
type AtLeastRestriction struct {
	Property string
	Min      uint
	Filler   ClassExpression
}

// NewAtLeastRestriction returns a new restriction of the form ≥ n r.C.
func NewAtLeastRestriction(property string, min uint, filler ClassExpression) *AtLeastRestriction {
	return &AtLeastRestriction{Property: property, Min: min, Filler: filler}
}

func (atLeast *AtLeastRestriction) String() string {
	return fmt.Sprintf("≥ %d %s.%v", atLeast.Min, atLeast.Property, atLeast.Filler)
}

//// Query classes ////

// QueryClass is a caller-defined named class with an equivalent class
// expression, the unit of classification. It is immutable once constructed;
// ancestors and descendants are assigned by a classification pass, never
// stored on the query class itself.
type QueryClass struct {
	Name         string
	EquivalentTo ClassExpression
}

// NewQueryClass returns a new query class Name ≡ expr.
func NewQueryClass(name string, expr ClassExpression) *QueryClass {
	return &QueryClass{Name: name, EquivalentTo: expr}
}

func (q *QueryClass) String() string {
	return fmt.Sprintf("%s ≡ %v", q.Name, q.EquivalentTo)
}
