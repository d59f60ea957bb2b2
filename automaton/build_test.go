package automaton_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifguard/automaton"
	"github.com/katalvlaran/motifguard/iupac"
	"github.com/katalvlaran/motifguard/machine"
	"github.com/katalvlaran/motifguard/progress"
)

// edgeList flattens a machine to "from -in-> to" lines for readable diffs.
func edgeList(m *machine.Machine) []string {
	var out []string
	for _, s := range m.States {
		for _, t := range s.Trans {
			in := t.In
			if t.IsEnd() {
				in = "ε"
			}
			out = append(out, s.ID+" -"+in+"-> "+m.States[t.Dest].ID)
		}
	}
	return out
}

func TestBuild_SingleBaseForwardOnly(t *testing.T) {
	m, err := automaton.Build("A", automaton.WithForwardOnly(true), automaton.WithAllowRepeats(true))
	require.NoError(t, err)
	require.Equal(t, 2, m.NStates(), "one state plus terminal")
	assert.Equal(t, []string{
		"start -C-> start",
		"start -G-> start",
		"start -T-> start",
		"start -ε-> end",
	}, edgeList(m))

	assert.True(t, m.Accepts("CCGTTG"))
	assert.False(t, m.Accepts("CCAG"))
}

func TestBuild_ForwardPair(t *testing.T) {
	m, err := automaton.Build("AT", automaton.WithForwardOnly(true), automaton.WithAllowRepeats(true))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"start -A-> f1",
		"start -C-> start",
		"start -G-> start",
		"start -T-> start",
		"start -ε-> end",
		"f1 -A-> f1",
		"f1 -C-> start",
		"f1 -G-> start",
		"f1 -ε-> end",
		// end has no transitions
	}, edgeList(m))
}

func TestBuild_PalindromeBothStrands(t *testing.T) {
	both, err := automaton.Build("AT", automaton.WithAllowRepeats(true))
	require.NoError(t, err)
	fwd, err := automaton.Build("AT", automaton.WithForwardOnly(true), automaton.WithAllowRepeats(true))
	require.NoError(t, err)

	// same shape, the length-1 flag is set on both strands
	assert.Equal(t,
		strings.ReplaceAll(strings.Join(edgeList(fwd), "\n"), "f1", "b1"),
		strings.Join(edgeList(both), "\n"))

	for _, seq := range allSequences(6) {
		require.Equal(t, fwd.Accepts(seq), both.Accepts(seq), "sequence %q", seq)
	}
}

func TestBuild_Homopolymer(t *testing.T) {
	m, err := automaton.Build("-")
	require.NoError(t, err)
	require.Equal(t, 6, m.NStates(), "start, one state per previous base, end")

	for i, id := range []string{"start", "A", "C", "G", "T", "end"} {
		assert.Equal(t, id, m.States[i].ID)
	}
	for _, b := range iupac.Alphabet {
		idx, err := m.Lookup(b.String())
		require.NoError(t, err)
		var ins []string
		for _, tr := range m.States[idx].Trans {
			if tr.IsEnd() {
				continue
			}
			ins = append(ins, tr.In)
			assert.Equal(t, tr.In, m.States[tr.Dest].ID, "transition leads to the state of its base")
		}
		assert.Len(t, ins, 3)
		assert.NotContains(t, ins, b.String())
	}

	if diff := cmp.Diff(edgeList(m), edgeList(automaton.Homopolymer())); diff != "" {
		t.Errorf("Homopolymer differs (-build +homopolymer):\n%s", diff)
	}
}

func TestBuild_ReverseStrandOnlyWhenEnabled(t *testing.T) {
	both, err := automaton.Build("AAC", automaton.WithAllowRepeats(true))
	require.NoError(t, err)
	fwd, err := automaton.Build("AAC", automaton.WithForwardOnly(true), automaton.WithAllowRepeats(true))
	require.NoError(t, err)

	assert.False(t, both.Accepts("CGTTA"), "GTT is the reverse complement")
	assert.True(t, fwd.Accepts("CGTTA"))
	assert.False(t, fwd.Accepts("CAACG"))
}

func TestBuild_TransitionOrder(t *testing.T) {
	m, err := automaton.Build("GAATTC")
	require.NoError(t, err)
	for _, s := range m.States[:m.End()] {
		require.NotEmpty(t, s.Trans)
		last := s.Trans[len(s.Trans)-1]
		require.True(t, last.IsEnd(), "state %s: end edge must be last", s.ID)
		require.Equal(t, m.End(), last.Dest)
		prev := ""
		for _, tr := range s.Trans[:len(s.Trans)-1] {
			require.Equal(t, tr.In, tr.Out, "echo semantics")
			require.Less(t, prev, tr.In, "state %s: alphabet order", s.ID)
			prev = tr.In
		}
	}
}

func TestBuild_ConfigErrors(t *testing.T) {
	cases := map[string]struct {
		motif string
		cause error
	}{
		"empty":    {"", automaton.ErrEmptyMotif},
		"bad code": {"GAZTC", automaton.ErrInvalidCode},
		"too long": {strings.Repeat("N", progress.MaxMotifLen+1), automaton.ErrMotifTooLong},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := automaton.Build(tc.motif)
			require.Nil(t, m)
			require.True(t, errors.Is(err, automaton.ErrConfig), "got %v", err)
			require.True(t, errors.Is(err, tc.cause), "got %v", err)
		})
	}

	_, _, err := automaton.BuildMotif(nil)
	require.True(t, errors.Is(err, automaton.ErrEmptyMotif))
}

func TestBuild_OnStateHook(t *testing.T) {
	var ids []string
	var depths []int
	_, st, err := automaton.BuildWithStats("GGATCC", automaton.WithOnState(func(id string, d int) {
		ids = append(ids, id)
		depths = append(depths, d)
	}))
	require.NoError(t, err)
	require.Len(t, ids, st.Discovered)
	assert.Equal(t, "start", ids[0])
	assert.Equal(t, 0, depths[0])
	for i := 1; i < len(depths); i++ {
		assert.LessOrEqual(t, depths[i-1], depths[i], "breadth-first discovery")
	}
	assert.Equal(t, depths[len(depths)-1], st.Depth)

	assert.Panics(t, func() { automaton.WithOnState(nil) })
}

func TestBuild_Deterministic(t *testing.T) {
	for _, motif := range []string{"GAATTC", "GRCGYC", "CCWGG", "-"} {
		a, err := automaton.Build(motif)
		require.NoError(t, err)
		b, err := automaton.Build(motif)
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: builds differ (-first +second):\n%s", motif, diff)
		}
	}
}
