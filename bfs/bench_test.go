package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphd/bfs"
	"github.com/katalvlaran/graphd/builder"
	"github.com/katalvlaran/graphd/core"
)

func benchGraph(b *testing.B, directed bool, con builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(directed)}, nil, con)
	if err != nil {
		b.Fatalf("build: %v", err)
	}

	return g
}

// sweep is one connectivity pass: BFS from start, then a membership check
// over every vertex.
func sweep(b *testing.B, g *core.Graph, start string, vertices []string, dir bfs.Direction) {
	res, err := bfs.BFS(g, start, bfs.WithDirection(dir))
	if err != nil {
		b.Fatalf("bfs: %v", err)
	}
	for _, v := range vertices {
		if _, ok := res.Depth[v]; !ok {
			b.Fatalf("%s unreachable", v)
		}
	}
}

// BenchmarkSweep_DirectedCycle runs the three passes a strong-connectivity
// check needs on a directed ring of 5000 vertices.
func BenchmarkSweep_DirectedCycle(b *testing.B) {
	g := benchGraph(b, true, builder.Cycle(5000))
	vertices := g.Vertices()
	start := vertices[0]

	b.ReportAllocs()
	b.SetBytes(int64(g.Order() + g.Size()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sweep(b, g, start, vertices, bfs.Both)
		sweep(b, g, start, vertices, bfs.Outgoing)
		sweep(b, g, start, vertices, bfs.Incoming)
	}
}

// BenchmarkSweep_UndirectedComplete covers a dense graph where every vertex
// is one hop from the start.
func BenchmarkSweep_UndirectedComplete(b *testing.B) {
	g := benchGraph(b, false, builder.Complete(150))
	vertices := g.Vertices()

	b.ReportAllocs()
	b.SetBytes(int64(g.Order() + g.Size()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sweep(b, g, vertices[0], vertices, bfs.Both)
	}
}

// BenchmarkSweep_DirectedStarIncoming walks a star whose spokes point both
// ways, from a leaf and against edge direction.
func BenchmarkSweep_DirectedStarIncoming(b *testing.B) {
	g := benchGraph(b, true, builder.Star(3000))
	vertices := g.Vertices()
	leaf := vertices[0]
	if leaf == builder.CenterVertexID {
		leaf = vertices[1]
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sweep(b, g, leaf, vertices, bfs.Incoming)
	}
}

// BenchmarkSweep_Path measures the deepest frontier: a path of 10000 vertices.
func BenchmarkSweep_Path(b *testing.B) {
	g := benchGraph(b, false, builder.Path(10000))
	vertices := g.Vertices()
	start := vertices[0]

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sweep(b, g, start, vertices, bfs.Both)
	}
}
