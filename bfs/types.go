package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
	ErrGraphNil            = errors.New("bfs: graph is nil")
	// ErrOptionViolation wraps the first rejected option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option adjusts a BFSOptions. Invalid values are remembered and make
// BFS fail with ErrOptionViolation before any vertex is touched.
type Option func(*BFSOptions)

// BFSOptions is the resolved walk configuration. Hooks are never nil
// after DefaultOptions.
type BFSOptions struct {
	Ctx context.Context

	// OnEnqueue and OnDequeue observe queue traffic with the vertex depth.
	OnEnqueue func(v int, depth int)
	OnDequeue func(v int, depth int)

	// OnVisit runs once per vertex in visit order; an error ends the walk.
	OnVisit func(v int, depth int) error

	// MaxDepth bounds the distance from the start vertex; 0 is unbounded.
	MaxDepth int

	// FilterNeighbor vetoes the step curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor int) bool

	// Reverse follows predecessor lists, so the walk finds every vertex
	// that can reach the start vertex.
	Reverse bool

	err error
}

// DefaultOptions walks forward under context.Background with no depth
// bound, no filter and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets OnEnqueue; nil keeps the no-op.
func WithOnEnqueue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets OnDequeue; nil keeps the no-op.
func WithOnDequeue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets OnVisit; nil keeps the no-op.
func WithOnVisit(fn func(v int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the walk to vertices at most d edges away.
// Zero removes the bound; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor sets FilterNeighbor; nil keeps "accept all".
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithReverse traverses edges head→tail, visiting every vertex that has
// a path to the start vertex.
func WithReverse() Option {
	return func(o *BFSOptions) { o.Reverse = true }
}

// BFSResult records the walk. Depth has an entry for every reached
// vertex; Parent lacks one only for the start vertex.
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Visited reports whether v was reached.
func (r *BFSResult) Visited(v int) bool {
	_, ok := r.Depth[v]
	return ok
}

// PathTo lists the BFS-tree path start..dest. In reverse mode the
// path runs against the edge direction.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
