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
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// The loader is the concrete form of the ontology load interface: a fact-set
// document in YAML that populates a store. OWL/RDF syntax stays out of
// scope, converting an ontology into this format is an external concern.

// Document is one knowledge base: namespaces, entity declarations and
// asserted facts.
type Document struct {
	Namespaces  map[string]string `yaml:"namespaces"`
	Classes     []ClassDecl       `yaml:"classes"`
	Individuals []IndividualDecl  `yaml:"individuals"`
	Properties  []string          `yaml:"properties"`
	Edges       []EdgeDecl        `yaml:"edges"`
}

// ClassDecl declares one class and its direct superclasses.
type ClassDecl struct {
	ID      string   `yaml:"id"`
	Parents []string `yaml:"parents"`
}

// IndividualDecl declares one individual and the classes it is asserted to
// be a member of.
type IndividualDecl struct {
	ID    string   `yaml:"id"`
	Types []string `yaml:"types"`
}

// EdgeDecl declares one property edge (subject, property, object).
type EdgeDecl struct {
	Subject  string `yaml:"subject"`
	Property string `yaml:"property"`
	Object   string `yaml:"object"`
}

// ParseDocument reads a knowledge base document. Unknown fields are
// rejected.
func ParseDocument(r io.Reader) (*Document, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	doc := new(Document)
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// ParseDocumentFile reads a knowledge base document from a file.
func ParseDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseDocument(f)
}

// Build populates a fresh store from the document and marks it ready. All
// identifier prefixes must be registered in the document's namespace block
// (owl is implicit).
func (doc *Document) Build() (*Store, *NamespaceTable, error) {
	table := NewNamespaceTable()
	for prefix, base := range doc.Namespaces {
		if err := table.Register(prefix, base); err != nil {
			return nil, nil, err
		}
	}
	store := NewStore()

	checkPrefix := func(id string) error {
		if id == "" {
			return fmt.Errorf("%w: empty identifier", ErrInvalidDocument)
		}
		if !table.Known(id) {
			return fmt.Errorf("%w: %q", ErrUnknownPrefix, prefixOf(id))
		}
		return nil
	}

	for _, class := range doc.Classes {
		if err := checkPrefix(class.ID); err != nil {
			return nil, nil, err
		}
		if err := store.DeclareClass(class.ID); err != nil {
			return nil, nil, err
		}
	}
	for _, individual := range doc.Individuals {
		if err := checkPrefix(individual.ID); err != nil {
			return nil, nil, err
		}
		if err := store.DeclareIndividual(individual.ID); err != nil {
			return nil, nil, err
		}
	}
	for _, property := range doc.Properties {
		if err := checkPrefix(property); err != nil {
			return nil, nil, err
		}
		if err := store.DeclareProperty(property); err != nil {
			return nil, nil, err
		}
	}

	// assertion phase, all identifiers are declared now
	for _, class := range doc.Classes {
		for _, parent := range class.Parents {
			if err := store.AssertSubclass(class.ID, parent); err != nil {
				return nil, nil, err
			}
		}
	}
	for _, individual := range doc.Individuals {
		for _, class := range individual.Types {
			if err := store.AssertMembership(individual.ID, class); err != nil {
				return nil, nil, err
			}
		}
	}
	for _, edge := range doc.Edges {
		if err := store.AssertPropertyEdge(edge.Subject, edge.Property, edge.Object); err != nil {
			return nil, nil, err
		}
	}

	store.MarkReady()
	return store, table, nil
}

//// Query documents ////

// QueryDocument is a list of query class definitions.
type QueryDocument struct {
	Queries []QueryDecl `yaml:"queries"`
}

// QueryDecl is one query class definition: a name and an expression tree.
type QueryDecl struct {
	Name       string          `yaml:"name"`
	Expression *ExpressionNode `yaml:"expression"`
}

// ExpressionNode is the YAML form of a class expression. Exactly one field
// must be set per node.
type ExpressionNode struct {
	Class       string             `yaml:"class,omitempty"`
	And         []*ExpressionNode  `yaml:"and,omitempty"`
	Some        *RestrictionNode   `yaml:"some,omitempty"`
	SomeInverse *RestrictionNode   `yaml:"someInverse,omitempty"`
	AtLeast     *CardinalityNode   `yaml:"atLeast,omitempty"`
}

// RestrictionNode is the YAML form of an existential restriction.
type RestrictionNode struct {
	Property string          `yaml:"property"`
	Filler   *ExpressionNode `yaml:"filler"`
}

// CardinalityNode is the YAML form of an at-least restriction.
type CardinalityNode struct {
	Property string          `yaml:"property"`
	Min      uint            `yaml:"min"`
	Filler   *ExpressionNode `yaml:"filler"`
}

// ParseQueryDocument reads a query document. Unknown fields are rejected.
func ParseQueryDocument(r io.Reader) (*QueryDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	doc := new(QueryDocument)
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// ParseQueryDocumentFile reads a query document from a file.
func ParseQueryDocumentFile(path string) (*QueryDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseQueryDocument(f)
}

// Compile turns the node into a class expression.
func (node *ExpressionNode) Compile() (ClassExpression, error) {
	if node == nil {
		return nil, invalidExpression("expression node is nil")
	}
	set := 0
	if node.Class != "" {
		set++
	}
	if node.And != nil {
		set++
	}
	if node.Some != nil {
		set++
	}
	if node.SomeInverse != nil {
		set++
	}
	if node.AtLeast != nil {
		set++
	}
	if set != 1 {
		return nil, invalidExpression("expression node must set exactly one of class, and, some, someInverse, atLeast")
	}
	switch {
	case node.Class != "":
		return NewNamedClass(node.Class), nil
	case node.And != nil:
		operands := make([]ClassExpression, 0, len(node.And))
		for _, operandNode := range node.And {
			operand, err := operandNode.Compile()
			if err != nil {
				return nil, err
			}
			operands = append(operands, operand)
		}
		return NewConjunction(operands...), nil
	case node.Some != nil:
		filler, err := node.Some.Filler.Compile()
		if err != nil {
			return nil, err
		}
		return NewExistentialRestriction(node.Some.Property, filler), nil
	case node.SomeInverse != nil:
		filler, err := node.SomeInverse.Filler.Compile()
		if err != nil {
			return nil, err
		}
		return NewInverseExistentialRestriction(node.SomeInverse.Property, filler), nil
	default:
		filler, err := node.AtLeast.Filler.Compile()
		if err != nil {
			return nil, err
		}
		return NewAtLeastRestriction(node.AtLeast.Property, node.AtLeast.Min, filler), nil
	}
}

// Compile turns the declaration into a query class.
func (decl *QueryDecl) Compile() (*QueryClass, error) {
	if decl.Name == "" {
		return nil, fmt.Errorf("%w: query class without a name", ErrInvalidDocument)
	}
	expr, err := decl.Expression.Compile()
	if err != nil {
		return nil, fmt.Errorf("query class %s: %w", decl.Name, err)
	}
	return NewQueryClass(decl.Name, expr), nil
}
