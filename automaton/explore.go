package automaton

import (
	"github.com/katalvlaran/motifguard/iupac"
	"github.com/katalvlaran/motifguard/progress"
)

// arc is one symbol transition between discovered states.
type arc struct {
	base iupac.Base
	dest int
}

// exploration is the raw reachable state space: state i has canonical
// ID ids[i], BFS depth depth[i] and symbol transitions arcs[i] in
// alphabet order. State 0 is the initial tuple.
type exploration struct {
	ids   []string
	depth []int
	arcs  [][]arc
}

// explore enumerates every tuple reachable from s.Initial() exactly
// once, breadth-first. Indices are assigned on first sight; with a FIFO
// queue this is also dequeue order.
func explore[T comparable](s progress.Stepper[T], onState func(id string, depth int)) *exploration {
	ex := &exploration{}
	index := make(map[T]int)
	var queue []T

	discover := func(t T, depth int) int {
		if i, ok := index[t]; ok {
			return i
		}
		i := len(ex.ids)
		index[t] = i
		id := s.ID(t)
		ex.ids = append(ex.ids, id)
		ex.depth = append(ex.depth, depth)
		ex.arcs = append(ex.arcs, nil)
		queue = append(queue, t)
		onState(id, depth)
		return i
	}

	discover(s.Initial(), 0)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		ci := index[cur]
		arcs := make([]arc, 0, iupac.NumBases)
		for _, b := range iupac.Alphabet {
			next, ok := s.Successor(cur, b)
			if !ok {
				continue
			}
			arcs = append(arcs, arc{base: b, dest: discover(next, ex.depth[ci]+1)})
		}
		ex.arcs[ci] = arcs
	}
	return ex
}
