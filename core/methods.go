// Package core: Graph method implementations.
//
// Vertex insertion is O(1) amortized (arena append). Edge insertion is
// O(1) amortized: two list appends plus one set insertion. Queries that
// return slices hand out copies, so callers never alias internal state.

package core

import "fmt"

// AddVertex appends a vertex with the given label and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := len(g.labels)
	g.labels = append(g.labels, label)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return v
}

// HasVertex reports whether v is a valid index.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.has(v)
}

func (g *Graph) has(v int) bool { return v >= 0 && v < len(g.labels) }

// Label returns the label of v.
// Returns ErrVertexNotFound for an invalid index.
func (g *Graph) Label(v int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(v) {
		return "", fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return g.labels[v], nil
}

// AddEdge inserts the directed edge from→to.
// Returns ErrVertexNotFound, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Endpoint validation
	if !g.has(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !g.has(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	// 2) Loop constraint
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	// 3) Multi-edge constraint
	e := Edge{From: from, To: to}
	if _, dup := g.edgeSet[e]; dup && !g.allowMulti {
		return ErrMultiEdgeNotAllowed
	}
	// 4) Store both directions of adjacency
	g.edgeSet[e] = struct{}{}
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
	g.nEdges++

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// Successors returns the heads of edges leaving v, in insertion order.
// Complexity: O(deg⁺(v)).
func (g *Graph) Successors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return append([]int(nil), g.out[v]...), nil
}

// Predecessors returns the tails of edges entering v, in insertion order.
// Complexity: O(deg⁻(v)).
func (g *Graph) Predecessors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return append([]int(nil), g.in[v]...), nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.labels)
}

// EdgeCount returns |E|, counting parallel edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nEdges
}

// Edges returns all edges ordered by tail index, then insertion order.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.nEdges)
	for from, heads := range g.out {
		for _, to := range heads {
			out = append(out, Edge{From: from, To: to})
		}
	}
	return out
}

// Clone returns a deep copy of g including its configuration flags.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		labels:     append([]string(nil), g.labels...),
		out:        make([][]int, len(g.out)),
		in:         make([][]int, len(g.in)),
		edgeSet:    make(map[Edge]struct{}, len(g.edgeSet)),
		nEdges:     g.nEdges,
	}
	for v := range g.out {
		c.out[v] = append([]int(nil), g.out[v]...)
		c.in[v] = append([]int(nil), g.in[v]...)
	}
	for e := range g.edgeSet {
		c.edgeSet[e] = struct{}{}
	}
	return c
}
