package machine

import (
	"fmt"

	"github.com/katalvlaran/motifguard/bfs"
	"github.com/katalvlaran/motifguard/core"
	"github.com/katalvlaran/motifguard/dfs"
)

// Graph returns the state graph of m: one vertex per state (labelled
// with its ID, same index) and one edge per distinct source/destination
// pair.
func (m *Machine) Graph() *core.Graph {
	g := core.NewGraph(core.WithLoops(), core.WithCapacity(len(m.States)))
	for _, s := range m.States {
		g.AddVertex(s.ID)
	}
	for i, s := range m.States {
		for _, t := range s.Trans {
			if !g.HasEdge(i, t.Dest) {
				// endpoints exist and duplicates are filtered, so AddEdge cannot fail
				_ = g.AddEdge(i, t.Dest)
			}
		}
	}
	return g
}

// Accessible returns, per state index, whether it is reachable from the
// initial state.
func (m *Machine) Accessible() ([]bool, error) {
	if len(m.States) == 0 {
		return nil, ErrEmptyMachine
	}
	res, err := dfs.DFS(m.Graph(), m.Start())
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(m.States))
	for v := range res.Visited {
		out[v] = true
	}
	return out, nil
}

// Coaccessible returns, per state index, whether the terminal state is
// reachable from it.
func (m *Machine) Coaccessible() ([]bool, error) {
	if len(m.States) == 0 {
		return nil, ErrEmptyMachine
	}
	res, err := bfs.BFS(m.Graph(), m.End(), bfs.WithReverse())
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(m.States))
	for v := range out {
		out[v] = res.Visited(v)
	}
	return out, nil
}

// Validate checks the layout contract: unique IDs, in-range
// destinations, a terminal "end" state last with no transitions, end
// edges only towards the terminal, and every state both accessible and
// coaccessible. Violations wrap ErrInvalid.
func (m *Machine) Validate() error {
	if len(m.States) == 0 {
		return ErrEmptyMachine
	}
	end := m.End()
	if m.States[end].ID != EndID {
		return fmt.Errorf("%w: last state is %q, want %q", ErrInvalid, m.States[end].ID, EndID)
	}
	if len(m.States[end].Trans) != 0 {
		return fmt.Errorf("%w: terminal state has transitions", ErrInvalid)
	}
	seen := make(map[string]bool, len(m.States))
	for _, s := range m.States {
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate state ID %q", ErrInvalid, s.ID)
		}
		seen[s.ID] = true
		inputs := make(map[string]bool, len(s.Trans))
		for _, t := range s.Trans {
			if t.Dest < 0 || t.Dest >= len(m.States) {
				return fmt.Errorf("%w: state %q: destination %d out of range", ErrInvalid, s.ID, t.Dest)
			}
			if t.IsEnd() {
				if t.Dest != end {
					return fmt.Errorf("%w: state %q: end edge leads to %q", ErrInvalid, s.ID, m.States[t.Dest].ID)
				}
				continue
			}
			if inputs[t.In] {
				return fmt.Errorf("%w: state %q: two transitions on %q", ErrInvalid, s.ID, t.In)
			}
			inputs[t.In] = true
			if t.Dest == end {
				return fmt.Errorf("%w: state %q: symbol edge into terminal", ErrInvalid, s.ID)
			}
		}
	}

	acc, err := m.Accessible()
	if err != nil {
		return err
	}
	coacc, err := m.Coaccessible()
	if err != nil {
		return err
	}
	for i, s := range m.States {
		if !acc[i] {
			return fmt.Errorf("%w: state %q is not accessible", ErrInvalid, s.ID)
		}
		if !coacc[i] {
			return fmt.Errorf("%w: state %q cannot reach %q", ErrInvalid, s.ID, EndID)
		}
	}
	return nil
}
