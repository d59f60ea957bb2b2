package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifguard/core"
	"github.com/katalvlaran/motifguard/dfs"
)

// graphOf builds a graph with n vertices and the given edges.
func graphOf(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for i := 0; i < n; i++ {
		g.AddVertex("")
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	require.True(t, errors.Is(err, dfs.ErrGraphNil))

	_, err = dfs.DFS(core.NewGraph(), 3)
	require.True(t, errors.Is(err, dfs.ErrStartVertexNotFound))
}

func TestDFS_PostOrderAndDepth(t *testing.T) {
	// 0→1→2, 0→3, 2→0 (cycle back), 4 unreachable
	g := graphOf(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 3}, [2]int{2, 0})

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3, 0}, res.Order)
	require.Equal(t, 2, res.Depth[2])
	require.Equal(t, 1, res.Parent[2])
	require.False(t, res.Visited[4])

	full, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3, 0, 4}, full.Order)
}

func TestDFS_HooksAndFilter(t *testing.T) {
	g := graphOf(t, 3, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 1})

	var pre, post []int
	res, err := dfs.DFS(g, 0,
		dfs.WithOnVisit(func(v int) error { pre = append(pre, v); return nil }),
		dfs.WithOnExit(func(v int) error { post = append(post, v); return nil }),
		dfs.WithFilterNeighbor(func(v int) bool { return v != 2 }),
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, pre)
	require.Equal(t, []int{1, 0}, post)
	require.Equal(t, 1, res.SkippedNeighbors)

	boom := errors.New("boom")
	res, err = dfs.DFS(g, 0, dfs.WithOnExit(func(v int) error { return boom }))
	require.True(t, errors.Is(err, boom))
	require.Nil(t, res.Order)
}

func TestDFS_Cancellation(t *testing.T) {
	g := graphOf(t, 3, [2]int{0, 1}, [2]int{1, 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, 0, dfs.WithContext(ctx))
	require.True(t, errors.Is(err, context.Canceled))
}
