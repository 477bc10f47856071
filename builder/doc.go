// Package builder provides deterministic fixture constructors for core graphs:
// Path, Cycle, Star and Complete, composed through BuildGraph.
//
// Components:
//
//   - Configuration: BuilderOption mutates a builderConfig (ID scheme, RNG, weight function).
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Edge-weight generators (WeightFn), observed only on weighted graphs:
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Deterministic emission order for the same inputs and seed.
//   - Fast-fail on nil option arguments via panics in option constructors.
//   - Constructors return ErrTooFewVertices (wrapped with the method name) and never panic.
//
// The engine, euler and dijkstra tests build their fixtures here, e.g.
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(true)},
//	    []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.Cycle(4),
//	)
package builder
