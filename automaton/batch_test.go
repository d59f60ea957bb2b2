package automaton_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifguard/automaton"
)

func TestBuildAll_KeepsRequestOrder(t *testing.T) {
	motifs := []string{"GAATTC", "GGATCC", "AAGCTT", "CTGCAG", "GATC", "-"}
	reqs := make([]automaton.Request, len(motifs))
	for i, m := range motifs {
		reqs[i] = automaton.Request{Motif: m, Options: []automaton.Option{automaton.WithAllowRepeats(true)}}
	}

	got, err := automaton.BuildAll(context.Background(), reqs, 2)
	require.NoError(t, err)
	require.Len(t, got, len(motifs))
	for i, m := range motifs {
		want, err := automaton.Build(m, automaton.WithAllowRepeats(true))
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "request %d (%s)", i, m)
	}
}

func TestBuildAll_FirstErrorWins(t *testing.T) {
	reqs := []automaton.Request{{Motif: "GATC"}, {Motif: "GA?C"}, {Motif: "CCGG"}}
	got, err := automaton.BuildAll(context.Background(), reqs, 0)
	require.Nil(t, got)
	require.True(t, errors.Is(err, automaton.ErrConfig), "got %v", err)
	assert.Contains(t, err.Error(), "request 1")
}

func TestBuildAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := automaton.BuildAll(ctx, []automaton.Request{{Motif: "GATC"}}, 1)
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestBuildAllWithStats_MatchesSingleBuilds(t *testing.T) {
	reqs := []automaton.Request{
		{Motif: "GAATTC"},
		{Motif: "-"},
		{Motif: "CCWGG", Options: []automaton.Option{automaton.WithForwardOnly(true)}},
	}
	got, err := automaton.BuildAllWithStats(context.Background(), reqs, 0)
	require.NoError(t, err)
	require.Len(t, got, len(reqs))
	for i, r := range reqs {
		m, st, err := automaton.BuildWithStats(r.Motif, r.Options...)
		require.NoError(t, err)
		assert.Equal(t, m, got[i].Machine, "request %d", i)
		assert.Equal(t, st, got[i].Stats, "request %d", i)
	}
	assert.Equal(t, 5, got[1].Stats.Discovered)
	assert.Equal(t, 1, got[1].Stats.Depth)
}
