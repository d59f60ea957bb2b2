// Package dfs implements depth-first search (single-source and forest)
// on core.Graph, following successor lists.
//
// The walk uses an explicit stack rather than recursion, so path length
// is bounded by memory, not goroutine stack size.
//
// Complexity:
//
//   - Time:   O(V + E), plus hook and filter overhead.
//   - Memory: O(V) for the stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing (single-source mode).
//   - ctx.Err()                 if ctx is done.
//   - any error returned by OnVisit or OnExit (Order is cleared).
package dfs

import (
	"fmt"

	"github.com/katalvlaran/motifguard/core"
)

// frame is one stack entry: a vertex and the successors still to try.
type frame struct {
	v     int
	depth int
	next  []int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, or over the whole
// graph when WithFullTraversal is given (start is then ignored).
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if !dopts.FullTraversal {
		if err := w.traverse(start); err != nil {
			return res, err
		}
		return res, nil
	}
	for v := 0; v < n; v++ {
		if !res.Visited[v] {
			if err := w.traverse(v); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

// discover marks v and runs the pre-order hook.
func (w *dfsWalker) discover(v, depth int) (frame, error) {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return frame{}, fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}
	succ, err := w.graph.Successors(v)
	if err != nil {
		return frame{}, fmt.Errorf("dfs: Successors(%d): %w", v, err)
	}
	return frame{v: v, depth: depth, next: succ}, nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	top, err := w.discover(root, 0)
	if err != nil {
		w.res.Order = nil
		return err
	}
	stack := []frame{top}
	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := &stack[len(stack)-1]
		if len(f.next) == 0 {
			// post-order
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(f.v); err != nil {
					w.res.Order = nil
					return fmt.Errorf("dfs: OnExit hook for %d: %w", f.v, err)
				}
			}
			w.res.Order = append(w.res.Order, f.v)
			stack = stack[:len(stack)-1]
			continue
		}

		nid := f.next[0]
		f.next = f.next[1:]
		if w.res.Visited[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		w.res.Parent[nid] = f.v
		child, err := w.discover(nid, f.depth+1)
		if err != nil {
			w.res.Order = nil
			return err
		}
		stack = append(stack, child)
	}
	return nil
}
