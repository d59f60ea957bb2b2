// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(v int) error

	// FilterNeighbor, if non-nil, is called for each successor before
	// descending. Return false to skip it.
	FilterNeighbor func(v int) bool

	// FullTraversal runs DFS from every unvisited vertex in index order.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no filtering,
// single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit sets the post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithFilterNeighbor restricts which successors are entered.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers all components (forest mode).
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult collects traversal output.
//
//	Order            - post-order finish sequence.
//	Depth            - tree depth of each discovered vertex.
//	Parent           - DFS-tree parent (roots absent).
//	Visited          - discovered vertices.
//	SkippedNeighbors - successors rejected by FilterNeighbor.
type DFSResult struct {
	Order            []int
	Depth            map[int]int
	Parent           map[int]int
	Visited          map[int]bool
	SkippedNeighbors int
}
