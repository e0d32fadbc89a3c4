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
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used by the session, slog.Default otherwise.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(session *Session) {
		session.logger = logger
	}
}

// WithTimeout bounds every classification pass. A pass exceeding the bound
// fails with ErrClassificationTimeout. Zero means no bound, the default;
// classification work is bounded by store size, not by external resources,
// so most callers need none.
func WithTimeout(timeout time.Duration) SessionOption {
	return func(session *Session) {
		session.timeout = timeout
	}
}

// WithWorkers bounds the goroutines used by DefineAndClassifyAll.
func WithWorkers(workers int) SessionOption {
	return func(session *Session) {
		session.workers = workers
	}
}

// cacheEntry is one cached classification, valid as long as the store
// revision has not moved.
type cacheEntry struct {
	revision   uint64
	expression string
	result     *ClassificationResult
}

// Session orchestrates classification requests over one store. It registers
// query class definitions, caches classification results per query class
// until the store changes, and serves ancestor and descendant listings for
// named classes and query classes alike.
//
// Results are pure functions of the store state, so concurrent sessions or
// concurrent calls on one session are safe; cache writes for the same query
// class are idempotent.
type Session struct {
	store      *Store
	classifier *Classifier
	logger     *slog.Logger
	timeout    time.Duration
	workers    int

	mu      sync.Mutex
	queries map[string]*QueryClass
	cache   map[string]*cacheEntry
}

// NewSession returns a new session over the given store.
func NewSession(store *Store, options ...SessionOption) *Session {
	session := &Session{
		store:      store,
		classifier: NewClassifier(store),
		logger:     slog.Default(),
		queries:    make(map[string]*QueryClass),
		cache:      make(map[string]*cacheEntry),
	}
	for _, option := range options {
		option(session)
	}
	session.logger = session.logger.With("component", "baall.session")
	return session
}

// DefineAndClassify registers the query class name ≡ expr and classifies it.
// The call is atomic from the caller's perspective: on any error neither the
// definition nor the cache changes. Repeating the call with an identical
// expression over an unchanged store serves the cached result.
//
// The name must not collide with an entity declared in the store.
func (session *Session) DefineAndClassify(name string, expr ClassExpression) (*ClassificationResult, error) {
	if _, err := session.store.Entity(name); err == nil {
		return nil, duplicateEntity(name)
	}
	expression := fmt.Sprintf("%v", expr)
	revision := session.store.Revision()

	session.mu.Lock()
	entry, has := session.cache[name]
	session.mu.Unlock()
	if has && entry.revision == revision && entry.expression == expression {
		Metrics().IncCacheLookup(true)
		return entry.result, nil
	}
	Metrics().IncCacheLookup(false)

	query := NewQueryClass(name, expr)
	runID := uuid.NewString()
	session.logger.Debug("classifying query class",
		"query", name, "expression", expression, "run_id", runID)

	done := timeClassification()
	result, err := session.classify(query)
	done(err == nil)
	if err != nil {
		session.logger.Warn("classification failed",
			"query", name, "run_id", runID, "error", err)
		return nil, err
	}

	session.mu.Lock()
	session.queries[name] = query
	session.cache[name] = &cacheEntry{revision: revision, expression: expression, result: result}
	session.mu.Unlock()

	session.logger.Info("classified query class",
		"query", name, "run_id", runID,
		"ancestors", len(result.Ancestors), "descendants", len(result.Descendants),
		"unsatisfiable", result.Unsatisfiable)
	return result, nil
}

// DefineAndClassifyAll registers and classifies several query classes in one
// concurrent batch. On error no definition of the batch is registered.
func (session *Session) DefineAndClassifyAll(queries []*QueryClass) ([]*ClassificationResult, error) {
	for _, query := range queries {
		if _, err := session.store.Entity(query.Name); err == nil {
			return nil, duplicateEntity(query.Name)
		}
	}
	revision := session.store.Revision()
	ctx, cancel := session.boundedContext()
	defer cancel()

	done := timeClassification()
	results, err := session.classifier.ClassifyAll(ctx, queries, session.workers)
	done(err == nil)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	for i, query := range queries {
		session.queries[query.Name] = query
		session.cache[query.Name] = &cacheEntry{
			revision:   revision,
			expression: fmt.Sprintf("%v", query.EquivalentTo),
			result:     results[i],
		}
	}
	session.mu.Unlock()
	return results, nil
}

// Ancestors lists the ancestors of a named class or of a previously defined
// query class, closest first.
func (session *Session) Ancestors(id string) ([]string, error) {
	if result, isQuery, err := session.queryResult(id); isQuery {
		if err != nil {
			return nil, err
		}
		return result.Ancestors, nil
	}
	return session.store.Ancestors(id)
}

// Descendants lists the descendants of a named class or of a previously
// defined query class, closest first.
func (session *Session) Descendants(id string) ([]string, error) {
	if result, isQuery, err := session.queryResult(id); isQuery {
		if err != nil {
			return nil, err
		}
		return result.Descendants, nil
	}
	return session.store.Descendants(id)
}

// queryResult serves the classification of a defined query class,
// reclassifying when the store moved since the cached pass.
func (session *Session) queryResult(id string) (*ClassificationResult, bool, error) {
	session.mu.Lock()
	query, isQuery := session.queries[id]
	entry := session.cache[id]
	session.mu.Unlock()
	if !isQuery {
		return nil, false, nil
	}
	revision := session.store.Revision()
	if entry != nil && entry.revision == revision {
		Metrics().IncCacheLookup(true)
		return entry.result, true, nil
	}
	Metrics().IncCacheLookup(false)
	result, err := session.classify(query)
	if err != nil {
		return nil, true, err
	}
	session.mu.Lock()
	session.cache[id] = &cacheEntry{
		revision:   revision,
		expression: fmt.Sprintf("%v", query.EquivalentTo),
		result:     result,
	}
	session.mu.Unlock()
	return result, true, nil
}

func (session *Session) classify(query *QueryClass) (*ClassificationResult, error) {
	ctx, cancel := session.boundedContext()
	defer cancel()
	return session.classifier.Classify(ctx, query)
}

func (session *Session) boundedContext() (context.Context, context.CancelFunc) {
	if session.timeout > 0 {
		return context.WithTimeout(context.Background(), session.timeout)
	}
	return context.WithCancel(context.Background())
}
