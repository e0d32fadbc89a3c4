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
	"regexp"
	"sort"
	"strings"
	"sync"
)

// OWLNamespace is the base IRI of the owl prefix, registered in every table.
const OWLNamespace = "http://www.w3.org/2002/07/owl#"

// Identifiers in this package stay in compact CURIE form ("baall:Char");
// the namespace table resolves them to full IRIs for export and back.

var prefixPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// NamespaceTable maps namespace prefixes to base IRIs.
type NamespaceTable struct {
	mu    sync.RWMutex
	bases map[string]string
}

// NewNamespaceTable returns a table with the owl prefix preregistered.
func NewNamespaceTable() *NamespaceTable {
	return &NamespaceTable{bases: map[string]string{"owl": OWLNamespace}}
}

// Register binds a prefix to a base IRI. Rebinding a prefix to a different
// base is rejected, registering the same binding twice is a no-op.
func (t *NamespaceTable) Register(prefix, base string) error {
	if !prefixPattern.MatchString(prefix) {
		return fmt.Errorf("%w: invalid prefix %q", ErrInvalidDocument, prefix)
	}
	if base == "" {
		return fmt.Errorf("%w: empty base IRI for prefix %q", ErrInvalidDocument, prefix)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, has := t.bases[prefix]; has && existing != base {
		return fmt.Errorf("%w: prefix %q already bound to %q", ErrInvalidDocument, prefix, existing)
	}
	t.bases[prefix] = base
	return nil
}

// Known reports whether the prefix of a CURIE is registered. Identifiers
// without a prefix and full IRIs are always accepted.
func (t *NamespaceTable) Known(id string) bool {
	prefix := prefixOf(id)
	if prefix == "" || strings.Contains(id, "://") {
		return true
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, has := t.bases[prefix]
	return has
}

// Expand resolves a CURIE to a full IRI. Full IRIs pass through unchanged,
// unprefixed names pass through as well.
func (t *NamespaceTable) Expand(id string) (string, error) {
	if strings.Contains(id, "://") {
		return id, nil
	}
	prefix := prefixOf(id)
	if prefix == "" {
		return id, nil
	}
	t.mu.RLock()
	base, has := t.bases[prefix]
	t.mu.RUnlock()
	if !has {
		return "", fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix)
	}
	return base + id[len(prefix)+1:], nil
}

// Abbreviate maps a full IRI back to CURIE form using the longest matching
// base. IRIs under no registered base are returned unchanged.
func (t *NamespaceTable) Abbreviate(iri string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	bestPrefix, bestLen := "", 0
	for prefix, base := range t.bases {
		if strings.HasPrefix(iri, base) && len(base) > bestLen {
			bestPrefix, bestLen = prefix, len(base)
		}
	}
	if bestLen == 0 {
		return iri
	}
	return bestPrefix + ":" + iri[bestLen:]
}

// Prefixes returns the registered prefixes in sorted order.
func (t *NamespaceTable) Prefixes() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make([]string, 0, len(t.bases))
	for prefix := range t.bases {
		res = append(res, prefix)
	}
	sort.Strings(res)
	return res
}

// Base returns the base IRI bound to a prefix.
func (t *NamespaceTable) Base(prefix string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	base, has := t.bases[prefix]
	if !has {
		return "", fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix)
	}
	return base, nil
}
