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

// Package baall is a closed-world class classifier over a static knowledge
// base, built for querying food and medicine ontologies in the style of the
// BAALL ontology.
//
// A Store holds asserted facts: named classes with subclass edges and
// members, individuals and property edges. Class expressions (named class,
// conjunction ⊓, existential restriction ∃ r.C, inverse restriction ∃ r⁻.C
// and at-least restriction ≥ n r.C) evaluate to individual sets via
// Store.Denotation. A Classifier places a query class, a name with an
// equivalent expression, into the named-class hierarchy by comparing
// denotations; a Session caches classification results and lists ancestors
// and descendants of named classes and query classes.
//
// Subsumption here is a deliberate narrowing of description-logic
// subsumption: it is computed over asserted facts only, under a closed-world
// reading. This is adequate for query shapes like "dishes with some
// ingredient in C" or "ingredients needed by dishes in C", it is no general
// OWL-DL reasoner.
//
// Knowledge bases can be built in code or loaded from a YAML fact-set
// document; see Document and the cmd/baall tool.
package baall
