// Package core defines the central Graph type used by the automaton
// builder: a directed graph whose vertices live in an arena and are
// addressed by dense integer indices, assigned in insertion order.
//
// Each vertex keeps insertion-ordered successor and predecessor lists,
// so forward and backward traversals are equally cheap and fully
// deterministic. Vertices may carry an optional string label (the
// canonical state ID); the label is metadata only and never used for
// lookup on hot paths.
//
// All methods are guarded by a sync.RWMutex, so graphs may be read from
// several goroutines while no writer is active.
//
// Errors:
//
//	ErrVertexNotFound      - index out of range.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed connection From→To between two vertex indices.
type Edge struct {
	From int
	To   int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithCapacity pre-sizes the vertex arena.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.labels = make([]string, 0, n)
			g.out = make([][]int, 0, n)
			g.in = make([][]int, 0, n)
		}
	}
}

// Graph is a directed graph over an arena of vertices.
//
// out[v] and in[v] hold successor and predecessor indices in the order
// the edges were added. Without WithMultiEdges, edgeSet rejects
// duplicates in O(1).
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	allowMulti bool

	// Storage
	labels  []string
	out     [][]int
	in      [][]int
	edgeSet map[Edge]struct{}
	nEdges  int
}

// NewGraph creates an empty directed Graph.
// By default, no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{edgeSet: make(map[Edge]struct{})}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
