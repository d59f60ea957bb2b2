package automaton

import (
	"github.com/katalvlaran/motifguard/iupac"
	"github.com/katalvlaran/motifguard/machine"
	"github.com/katalvlaran/motifguard/progress"
)

// Stats summarizes one build.
type Stats struct {
	// Discovered is the number of distinct tuples explored.
	Discovered int
	// Live is the number of non-terminal states kept after pruning.
	Live int
	// Transitions counts retained transitions, end edges included.
	Transitions int
	// Depth is the largest BFS depth of any discovered state.
	Depth int
}

// Build parses motif and compiles its avoidance automaton.
// Configuration errors wrap ErrConfig.
func Build(motif string, opts ...Option) (*machine.Machine, error) {
	m, _, err := BuildWithStats(motif, opts...)
	return m, err
}

// BuildWithStats is Build that also reports exploration statistics.
func BuildWithStats(motif string, opts ...Option) (*machine.Machine, Stats, error) {
	parsed, err := iupac.ParseMotif(motif)
	if err != nil {
		return nil, Stats{}, configErrorf(err)
	}
	return BuildMotif(parsed, opts...)
}

// BuildMotif compiles an already parsed motif.
func BuildMotif(motif iupac.Motif, opts ...Option) (*machine.Machine, Stats, error) {
	cfg := newConfig(opts...)
	enc, err := progress.NewEncoder(motif, cfg.forwardOnly)
	if err != nil {
		return nil, Stats{}, configErrorf(err)
	}

	// The tuple shape is chosen once here.
	var ex *exploration
	if cfg.allowRepeats {
		ex = explore[progress.Tuple](enc, cfg.onState)
	} else {
		ex = explore[progress.RepeatTuple](progress.NewRepeatEncoder(enc), cfg.onState)
	}

	m, err := prune(ex)
	if err != nil {
		return nil, Stats{}, err
	}
	st := Stats{
		Discovered:  len(ex.ids),
		Live:        m.NStates() - 1,
		Transitions: m.NTransitions(),
	}
	for _, d := range ex.depth {
		st.Depth = max(st.Depth, d)
	}
	return m, st, nil
}

// Homopolymer returns the machine that forbids only immediate repeats:
// the match-nothing motif with repeat tracking.
func Homopolymer() *machine.Machine {
	m, _, err := BuildMotif(iupac.Motif{0})
	if err != nil {
		panic(err) // fixed input
	}
	return m
}
