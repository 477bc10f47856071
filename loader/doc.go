// Package loader turns batch input into graph mutations.
//
// Two sources are supported:
//
//   - Line-based text (ParseLines): one edge per line, whitespace separated.
//     Unweighted graphs expect "FROM TO", weighted graphs "FROM TO WEIGHT" where
//     WEIGHT parses as a finite float64. Lines with the wrong token count or an
//     unparsable weight are skipped and counted in Batch.Skipped; blank lines are
//     ignored without counting.
//   - Structured items (Items): explicit vertex list plus EdgeItem values, as posted
//     by the HTTP API.
//
// Apply validates the whole batch, then registers each newly seen vertex before
// inserting the edges, and reports the resulting vertex set and edge list of the
// graph.
//
// Example:
//
//	b, err := loader.ParseLines(strings.NewReader("A B\nC D 5\n"), false)
//	// b.Edges == [{A B <nil>}], b.Skipped == 1
//	res, err := loader.Apply(g, b)
package loader
