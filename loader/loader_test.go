package loader_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/loader"
)

func weight(w float64) *float64 { return &w }

func TestParseLines_UnweightedSkipsThreeTokenLines(t *testing.T) {
	b, err := loader.ParseLines(strings.NewReader("A B\nC D 5\n"), false)
	require.NoError(t, err)
	assert.Equal(t, []loader.EdgeItem{{From: "A", To: "B"}}, b.Edges)
	assert.Equal(t, []string{"A", "B"}, b.Vertices)
	assert.Equal(t, 1, b.Skipped)
}

func TestParseLines_Weighted(t *testing.T) {
	input := "A B 2.5\n\n  \nB C x\nC D\nD E -1\nE F NaN\nF G 1 2\n"
	b, err := loader.ParseLines(strings.NewReader(input), true)
	require.NoError(t, err)

	require.Len(t, b.Edges, 2)
	assert.Equal(t, 2.5, *b.Edges[0].Weight)
	assert.Equal(t, -1.0, *b.Edges[1].Weight)
	assert.Equal(t, []string{"A", "B", "D", "E"}, b.Vertices)
	// "B C x", "C D", "E F NaN", "F G 1 2"; blank lines are not counted.
	assert.Equal(t, 4, b.Skipped)
}

func TestParseLines_ToleratesSpacingAndCRLF(t *testing.T) {
	b, err := loader.ParseLines(strings.NewReader("  A\tB  \r\nB   C\r\n"), false)
	require.NoError(t, err)
	assert.Equal(t, []loader.EdgeItem{{From: "A", To: "B"}, {From: "B", To: "C"}}, b.Edges)
	assert.Zero(t, b.Skipped)
}

func TestParseLines_LineTooLong(t *testing.T) {
	long := strings.Repeat("x", loader.MaxLineBytes+1) + " y\n"
	_, err := loader.ParseLines(strings.NewReader(long), false)
	require.ErrorIs(t, err, loader.ErrLineTooLong)
}

func TestItems_AppendsMissingEndpoints(t *testing.T) {
	b := loader.Items([]string{"Z", "A"}, []loader.EdgeItem{{From: "A", To: "B"}, {From: "Z", To: "A"}})
	assert.Equal(t, []string{"Z", "A", "B"}, b.Vertices)
	assert.Zero(t, b.Skipped)
}

func TestApply_UnweightedIgnoresWeights(t *testing.T) {
	g := core.NewGraph()
	b := loader.Items([]string{"Q"}, []loader.EdgeItem{
		{From: "A", To: "B", Weight: weight(9)},
		{From: "B", To: "C"},
	})

	res, err := loader.Apply(g, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Q"}, res.Vertices)
	assert.Equal(t, []loader.EdgeItem{{From: "A", To: "B"}, {From: "B", To: "C"}}, res.Edges)

	e, err := g.Edge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultWeight, e.Weight)
}

func TestApply_WeightedReportsWeights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	b, err := loader.ParseLines(strings.NewReader("A B 3\nB A 4\n"), true)
	require.NoError(t, err)

	res, err := loader.Apply(g, b)
	require.NoError(t, err)
	require.Len(t, res.Edges, 2)
	assert.Equal(t, 3.0, *res.Edges[0].Weight)
	assert.Equal(t, 4.0, *res.Edges[1].Weight)
	assert.Equal(t, 2, g.Size())
}

func TestApply_ExistingVerticesAreKept(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	res, err := loader.Apply(g, loader.Items([]string{"A", "B"}, nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Vertices)
	assert.Empty(t, res.Edges)
}

func TestApply_InvalidBatchLeavesGraphUntouched(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	_, err := loader.Apply(g, loader.Items([]string{"A"}, []loader.EdgeItem{{From: "A", To: ""}}))
	require.ErrorIs(t, err, loader.ErrInvalidItem)

	_, err = loader.Apply(g, loader.Items(nil, []loader.EdgeItem{{From: "A", To: "B", Weight: weight(math.Inf(1))}}))
	require.ErrorIs(t, err, loader.ErrInvalidItem)

	_, err = loader.Apply(g, loader.Items([]string{""}, nil))
	require.ErrorIs(t, err, loader.ErrInvalidItem)

	assert.Zero(t, g.Order())
}

func TestApply_NilArguments(t *testing.T) {
	_, err := loader.Apply(nil, &loader.Batch{})
	require.ErrorIs(t, err, loader.ErrNilGraph)

	_, err = loader.Apply(core.NewGraph(), nil)
	require.ErrorIs(t, err, loader.ErrNilBatch)
}
