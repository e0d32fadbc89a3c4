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
)

// Standard error variables. None of these conditions is transient: every
// operation in this package is a deterministic function of the store state,
// so retrying with unchanged inputs reproduces the same error.
var (
	// ErrUnknownEntity is returned when a referenced identifier is absent
	// from the store.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrDuplicateEntity is returned when an identifier is declared twice,
	// possibly with a different kind.
	ErrDuplicateEntity = errors.New("duplicate entity")
	// ErrInvalidExpression is returned for structurally malformed class
	// expressions (empty conjunctions, nil fillers, unknown variants).
	ErrInvalidExpression = errors.New("invalid class expression")
	// ErrCyclicSubclass is returned when asserting a subclass edge that
	// would introduce a cycle into the subclass graph.
	ErrCyclicSubclass = errors.New("subclass assertion would create a cycle")
	// ErrStoreNotReady is returned when classification is attempted before
	// the store has been marked ready.
	ErrStoreNotReady = errors.New("store not ready")
	// ErrClassificationTimeout is returned when a configured classification
	// bound is exceeded.
	ErrClassificationTimeout = errors.New("classification timeout")
	// ErrWrongKind is returned when an identifier resolves to an entity of
	// an unexpected kind, e.g. an individual used as a class.
	ErrWrongKind = errors.New("entity has wrong kind")
	// ErrUnknownPrefix is returned when a CURIE uses a namespace prefix
	// that was never registered.
	ErrUnknownPrefix = errors.New("unknown namespace prefix")
	// ErrInvalidDocument is returned for malformed knowledge base or query
	// documents.
	ErrInvalidDocument = errors.New("invalid document")
)

// unknownEntity wraps ErrUnknownEntity with the offending identifier.
func unknownEntity(iri string) error {
	return fmt.Errorf("%w: %q", ErrUnknownEntity, iri)
}

// duplicateEntity wraps ErrDuplicateEntity with the offending identifier.
func duplicateEntity(iri string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateEntity, iri)
}

// cyclicSubclass wraps ErrCyclicSubclass with the offending edge.
func cyclicSubclass(child, parent string) error {
	return fmt.Errorf("%w: %s ⊑ %s", ErrCyclicSubclass, child, parent)
}

// wrongKind wraps ErrWrongKind with the identifier and the expected kind.
func wrongKind(iri string, want, got EntityKind) error {
	return fmt.Errorf("%w: %q is a %v, expected a %v", ErrWrongKind, iri, got, want)
}

// invalidExpression wraps ErrInvalidExpression with a reason.
func invalidExpression(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidExpression, fmt.Sprintf(format, args...))
}
