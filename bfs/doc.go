// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Follow successor lists (forward) or predecessor lists (WithReverse).
//     The reverse walk answers "which vertices can reach start?", which is
//     how the automaton builder finds live states: it walks backward from
//     the terminal state.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - Per-edge filtering via WithFilterNeighbor; MaxDepth limit.
//
// Determinism
//
//	core.Graph keeps adjacency in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	// backward reachability from the terminal
//	res, err := bfs.BFS(g, end, bfs.WithReverse())
//	if err != nil { ... }
//	live := res.Visited(v)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if adjacency lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() on cancellation.
package bfs
