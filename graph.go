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
	"sync"
)

// SubclassGraph is the asserted subclass hierarchy over internal class ids.
// Edges point from child to parent; classes reference parents by id, never
// by object pointer, so the graph itself guarantees no ownership cycles.
//
// Nodes are added with AddNode and identified by dense ids starting at 0.
// The transitive ancestor closure is maintained lazily: it is invalidated by
// every new edge and recomputed on the next closure query.
type SubclassGraph struct {
	parents  []map[uint]struct{}
	children []map[uint]struct{}

	// closureMu guards closure and dirty: the closure is also recomputed
	// during read-only classification passes.
	closureMu sync.Mutex
	closure   *Relation
	dirty     bool
}

// NewSubclassGraph returns a new graph without any nodes.
func NewSubclassGraph() *SubclassGraph {
	return &SubclassGraph{
		parents:  nil,
		children: nil,
		closure:  NewRelation(0),
		dirty:    false,
	}
}

func (g *SubclassGraph) String() string {
	strs := make([]string, len(g.parents))
	for i, s := range g.parents {
		strs[i] = fmt.Sprintf("%d ↦ %s", i, StringUintSet(s))
	}
	return fmt.Sprintf("{ %s }", strings.Join(strs, ",\n"))
}

// NumNodes returns the number of nodes added so far.
func (g *SubclassGraph) NumNodes() uint {
	return uint(len(g.parents))
}

// AddNode adds a new node and returns its id.
func (g *SubclassGraph) AddNode() uint {
	id := uint(len(g.parents))
	g.parents = append(g.parents, make(map[uint]struct{}))
	g.children = append(g.children, make(map[uint]struct{}))
	return id
}

// AddEdge adds a direct subclass edge child ⊑ parent, it returns true if the
// graph changed. The caller must check for cycles first, see WouldCycle.
func (g *SubclassGraph) AddEdge(child, parent uint) bool {
	m := g.parents[child]
	oldLen := len(m)
	m[parent] = struct{}{}
	if oldLen == len(m) {
		return false
	}
	g.children[parent][child] = struct{}{}
	g.closureMu.Lock()
	g.dirty = true
	g.closureMu.Unlock()
	return true
}

// WouldCycle reports whether adding child ⊑ parent would introduce a cycle,
// that is whether child is already an ancestor of parent (or both are the
// same node).
func (g *SubclassGraph) WouldCycle(child, parent uint) bool {
	if child == parent {
		return true
	}
	return g.Closure().Contains(parent, child)
}

// Parents returns the direct asserted parents of a node.
// The returned map must not be modified.
func (g *SubclassGraph) Parents(node uint) map[uint]struct{} {
	return g.parents[node]
}

// Children returns the direct asserted children of a node.
// The returned map must not be modified.
func (g *SubclassGraph) Children(node uint) map[uint]struct{} {
	return g.children[node]
}

// Closure returns the transitive ancestor closure as a Relation: it contains
// (c, d) iff d is a strict ancestor of c. The closure is recomputed here if
// an edge was added since the last call.
func (g *SubclassGraph) Closure() *Relation {
	g.closureMu.Lock()
	defer g.closureMu.Unlock()
	if g.dirty {
		g.recomputeClosure()
		g.dirty = false
	}
	return g.closure
}

// recomputeClosure rebuilds the full ancestor closure with a memoized
// depth-first walk. The graph is acyclic (AddEdge callers enforce this via
// WouldCycle), so the walk terminates without blocking checks.
func (g *SubclassGraph) recomputeClosure() {
	numNodes := uint(len(g.parents))
	closure := NewRelation(numNodes)
	done := make([]bool, numNodes)
	var visit func(node uint)
	visit = func(node uint) {
		if done[node] {
			return
		}
		done[node] = true
		for parent := range g.parents[node] {
			visit(parent)
			closure.Add(node, parent)
			for ancestor := range closure.Mapping[parent] {
				closure.Add(node, ancestor)
			}
		}
	}
	var i uint
	for ; i < numNodes; i++ {
		visit(i)
	}
	g.closure = closure
}

// Ancestors returns all strict ancestors of a node.
// The returned map must not be modified.
func (g *SubclassGraph) Ancestors(node uint) map[uint]struct{} {
	return g.Closure().Succ(node)
}

// Descendants returns all strict descendants of a node.
// The returned map must not be modified.
func (g *SubclassGraph) Descendants(node uint) map[uint]struct{} {
	return g.Closure().Pred(node)
}

// WalkDirection selects the direction of a level-order walk.
type WalkDirection int

const (
	// WalkUp walks from a class toward its ancestors.
	WalkUp WalkDirection = iota
	// WalkDown walks from a class toward its descendants.
	WalkDown
)

// LevelOrder returns the nodes reachable from start, grouped by their BFS
// distance: first all nodes one edge away, then two edges away and so on.
// start itself is not included. A node reachable on several paths appears
// only in its closest level.
func (g *SubclassGraph) LevelOrder(start uint, direction WalkDirection) [][]uint {
	next := g.parents
	if direction == WalkDown {
		next = g.children
	}
	// the graph is acyclic, so the walk can never come back to start
	frontier := make([]uint, 0, len(next[start]))
	for node := range next[start] {
		frontier = append(frontier, node)
	}
	return g.LevelOrderFrom(frontier, direction)
}

// LevelOrderFrom returns BFS levels starting from the given frontier: the
// frontier nodes themselves form the first level, their unvisited successors
// the second and so on. A node reachable on several paths appears only in
// its closest level.
func (g *SubclassGraph) LevelOrderFrom(frontier []uint, direction WalkDirection) [][]uint {
	next := g.parents
	if direction == WalkDown {
		next = g.children
	}
	visited := make(map[uint]struct{}, len(frontier))
	level := make([]uint, 0, len(frontier))
	for _, node := range frontier {
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}
		level = append(level, node)
	}
	var levels [][]uint
	for len(level) > 0 {
		levels = append(levels, level)
		var nextLevel []uint
		for _, node := range level {
			for succ := range next[node] {
				if _, seen := visited[succ]; seen {
					continue
				}
				visited[succ] = struct{}{}
				nextLevel = append(nextLevel, succ)
			}
		}
		level = nextLevel
	}
	return levels
}
