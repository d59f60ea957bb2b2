package automaton

import (
	"fmt"

	"github.com/katalvlaran/motifguard/bfs"
	"github.com/katalvlaran/motifguard/core"
	"github.com/katalvlaran/motifguard/machine"
)

// stateGraph records every symbol edge of ex plus an unconditional edge
// from each state to the terminal, which is appended as the last vertex.
func stateGraph(ex *exploration) (*core.Graph, int, error) {
	n := len(ex.ids)
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges(), core.WithCapacity(n+1))
	for _, id := range ex.ids {
		g.AddVertex(id)
	}
	end := g.AddVertex(machine.EndID)
	for v, arcs := range ex.arcs {
		for _, a := range arcs {
			if err := g.AddEdge(v, a.dest); err != nil {
				return nil, 0, fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		if err := g.AddEdge(v, end); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return g, end, nil
}

// live marks the states with a path to the terminal, terminal included.
func live(g *core.Graph, end int) ([]bool, error) {
	res, err := bfs.BFS(g, end, bfs.WithReverse())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	out := make([]bool, g.VertexCount())
	for v := range out {
		out[v] = res.Visited(v)
	}
	return out, nil
}

// prune assembles the machine from the live subgraph: live states in
// discovery order, then the terminal; within each state only transitions
// to live states, then the end edge.
func prune(ex *exploration) (*machine.Machine, error) {
	g, end, err := stateGraph(ex)
	if err != nil {
		return nil, err
	}
	alive, err := live(g, end)
	if err != nil {
		return nil, err
	}
	return assemble(ex, alive)
}

// assemble keeps the states flagged in alive, renumbered densely in
// discovery order, and drops every transition into a dead state.
func assemble(ex *exploration, alive []bool) (*machine.Machine, error) {
	if !alive[0] {
		return nil, fmt.Errorf("%w: initial state cannot reach %q", ErrInternal, machine.EndID)
	}

	remap := make([]int, len(ex.ids))
	kept := 0
	for v := range ex.ids {
		remap[v] = -1
		if alive[v] {
			remap[v] = kept
			kept++
		}
	}
	endIdx := kept

	m := &machine.Machine{States: make([]machine.State, 0, kept+1)}
	for v, id := range ex.ids {
		if !alive[v] {
			continue
		}
		st := machine.State{ID: id, Trans: make([]machine.Transition, 0, len(ex.arcs[v])+1)}
		for _, a := range ex.arcs[v] {
			if !alive[a.dest] {
				continue
			}
			sym := a.base.String()
			st.Trans = append(st.Trans, machine.Transition{In: sym, Out: sym, Dest: remap[a.dest]})
		}
		st.Trans = append(st.Trans, machine.Transition{Dest: endIdx})
		m.States = append(m.States, st)
	}
	m.States = append(m.States, machine.State{ID: machine.EndID, Trans: []machine.Transition{}})
	return m, nil
}
