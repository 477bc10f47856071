package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphd/builder"
	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/euler"
)

func symbolGraph(t *testing.T, directed bool, con builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(directed)},
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		con,
	)
	require.NoError(t, err)

	return g
}

func edgesGraph(t *testing.T, directed bool, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

// requireValidWalk checks that walk uses every edge of g exactly once.
func requireValidWalk(t *testing.T, g *core.Graph, walk []string) {
	t.Helper()
	require.Len(t, walk, g.Size()+1)

	seen := make(map[string]bool, g.Size())
	for i := 0; i+1 < len(walk); i++ {
		e, err := g.Edge(walk[i], walk[i+1])
		require.NoError(t, err, "step %s→%s", walk[i], walk[i+1])
		require.False(t, seen[e.ID], "edge %s reused", e.ID)
		seen[e.ID] = true
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		g    func(t *testing.T) *core.Graph
		want euler.Class
	}{
		{"empty", func(t *testing.T) *core.Graph { return core.NewGraph() }, euler.Neither},
		{"isolated_vertex", func(t *testing.T) *core.Graph {
			g := core.NewGraph()
			require.NoError(t, g.AddVertex("A"))
			return g
		}, euler.Eulerian},
		{"two_isolated_vertices", func(t *testing.T) *core.Graph {
			g := core.NewGraph()
			require.NoError(t, g.AddVertex("A"))
			require.NoError(t, g.AddVertex("B"))
			return g
		}, euler.Neither},
		{"cycle4", func(t *testing.T) *core.Graph { return symbolGraph(t, false, builder.Cycle(4)) }, euler.Eulerian},
		{"path3", func(t *testing.T) *core.Graph { return symbolGraph(t, false, builder.Path(3)) }, euler.SemiEulerian},
		{"star4", func(t *testing.T) *core.Graph { return symbolGraph(t, false, builder.Star(4)) }, euler.Neither},
		{"k5", func(t *testing.T) *core.Graph { return symbolGraph(t, false, builder.Complete(5)) }, euler.Eulerian},
		{"k4", func(t *testing.T) *core.Graph { return symbolGraph(t, false, builder.Complete(4)) }, euler.Neither},
		{"self_loop_only", func(t *testing.T) *core.Graph {
			return edgesGraph(t, false, [2]string{"A", "A"})
		}, euler.Eulerian},
		{"cycle_plus_isolated_vertex", func(t *testing.T) *core.Graph {
			g := symbolGraph(t, false, builder.Cycle(4))
			require.NoError(t, g.AddVertex("Z"))
			return g
		}, euler.Neither},
		{"path_plus_isolated_vertex", func(t *testing.T) *core.Graph {
			g := symbolGraph(t, false, builder.Path(3))
			require.NoError(t, g.AddVertex("Z"))
			return g
		}, euler.Neither},
		{"loop_plus_isolated_vertex", func(t *testing.T) *core.Graph {
			g := edgesGraph(t, false, [2]string{"A", "A"})
			require.NoError(t, g.AddVertex("B"))
			return g
		}, euler.Neither},
		{"directed_cycle_plus_isolated_vertex", func(t *testing.T) *core.Graph {
			g := symbolGraph(t, true, builder.Cycle(3))
			require.NoError(t, g.AddVertex("Z"))
			return g
		}, euler.Neither},
		{"directed_path_plus_isolated_vertex", func(t *testing.T) *core.Graph {
			g := symbolGraph(t, true, builder.Path(3))
			require.NoError(t, g.AddVertex("Z"))
			return g
		}, euler.Neither},
		{"two_disjoint_triangles", func(t *testing.T) *core.Graph {
			return edgesGraph(t, false,
				[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
				[2]string{"X", "Y"}, [2]string{"Y", "Z"}, [2]string{"Z", "X"})
		}, euler.Neither},
		{"path_with_loop", func(t *testing.T) *core.Graph {
			return edgesGraph(t, false, [2]string{"A", "B"}, [2]string{"B", "B"}, [2]string{"B", "C"})
		}, euler.SemiEulerian},
		{"directed_cycle", func(t *testing.T) *core.Graph { return symbolGraph(t, true, builder.Cycle(3)) }, euler.Eulerian},
		{"directed_path", func(t *testing.T) *core.Graph { return symbolGraph(t, true, builder.Path(4)) }, euler.SemiEulerian},
		{"directed_converging", func(t *testing.T) *core.Graph {
			return edgesGraph(t, true, [2]string{"A", "B"}, [2]string{"C", "B"})
		}, euler.Neither},
		{"directed_complete", func(t *testing.T) *core.Graph { return symbolGraph(t, true, builder.Complete(4)) }, euler.Eulerian},
		{"directed_disjoint_cycles", func(t *testing.T) *core.Graph {
			return edgesGraph(t, true,
				[2]string{"A", "B"}, [2]string{"B", "A"},
				[2]string{"X", "Y"}, [2]string{"Y", "X"})
		}, euler.Neither},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := euler.Classify(tc.g(t))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "got %s", got)
		})
	}
}

func TestClassify_NilGraph(t *testing.T) {
	_, err := euler.Classify(nil)
	require.ErrorIs(t, err, euler.ErrNilGraph)

	_, _, err = euler.Walk(nil)
	require.ErrorIs(t, err, euler.ErrNilGraph)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "Eulerian", euler.Eulerian.String())
	assert.Equal(t, "SemiEulerian", euler.SemiEulerian.String())
	assert.Equal(t, "Neither", euler.Neither.String())
}

func TestWalk_Circuit(t *testing.T) {
	g := symbolGraph(t, false, builder.Cycle(4))

	walk, class, err := euler.Walk(g)
	require.NoError(t, err)
	assert.Equal(t, euler.Eulerian, class)
	assert.Equal(t, []string{"A", "B", "C", "D", "A"}, walk)
	requireValidWalk(t, g, walk)
}

func TestWalk_TrailStartsAtOddVertex(t *testing.T) {
	g := edgesGraph(t, false, [2]string{"B", "C"}, [2]string{"A", "B"})

	walk, class, err := euler.Walk(g)
	require.NoError(t, err)
	assert.Equal(t, euler.SemiEulerian, class)
	assert.Equal(t, []string{"A", "B", "C"}, walk)
}

func TestWalk_SplicesSubtours(t *testing.T) {
	// Bowtie: two triangles sharing C; the walk must splice the second loop in.
	g := edgesGraph(t, false,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"C", "D"}, [2]string{"D", "E"}, [2]string{"E", "C"})

	walk, class, err := euler.Walk(g)
	require.NoError(t, err)
	assert.Equal(t, euler.Eulerian, class)
	assert.Equal(t, walk[0], walk[len(walk)-1])
	requireValidWalk(t, g, walk)
}

func TestWalk_Directed(t *testing.T) {
	// A→B→C→A plus A→D: A has out−in = +1, so the trail runs from A to D.
	g := edgesGraph(t, true,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"}, [2]string{"A", "D"})

	walk, class, err := euler.Walk(g)
	require.NoError(t, err)
	assert.Equal(t, euler.SemiEulerian, class)
	assert.Equal(t, "A", walk[0])
	assert.Equal(t, "D", walk[len(walk)-1])
	requireValidWalk(t, g, walk)
}

func TestWalk_SingleVertexAndLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	walk, class, err := euler.Walk(g)
	require.NoError(t, err)
	assert.Equal(t, euler.Eulerian, class)
	assert.Equal(t, []string{"A"}, walk)

	g = edgesGraph(t, false, [2]string{"A", "A"})
	walk, _, err = euler.Walk(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, walk)
}

func TestWalk_NotEulerian(t *testing.T) {
	_, class, err := euler.Walk(symbolGraph(t, false, builder.Star(4)))
	require.ErrorIs(t, err, euler.ErrNotEulerian)
	assert.Equal(t, euler.Neither, class)
}

func TestWalk_IsolatedVertexBlocksCircuit(t *testing.T) {
	g := symbolGraph(t, false, builder.Cycle(4))
	require.NoError(t, g.AddVertex("Z"))

	walk, class, err := euler.Walk(g)
	require.ErrorIs(t, err, euler.ErrNotEulerian)
	assert.Equal(t, euler.Neither, class)
	assert.Nil(t, walk)
}
