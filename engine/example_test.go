package engine_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphd/engine"
)

func ExampleGraphEngine() {
	eng := engine.New()
	eng.CreateGraph(false, true)

	res, err := eng.BatchInsertFromText(strings.NewReader("A B 4\nA C 1\nC B 2\nbroken line here\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("loaded:", res.Vertices, "skipped:", res.Skipped)

	p, _ := eng.ShortestPath("A", "B")
	fmt.Println("path:", p.Vertices, p.Weight)

	d, _ := eng.Degree("A")
	fmt.Println(d)

	c, _ := eng.ClassifyEulerian()
	fmt.Println(c)
	// Output:
	// loaded: [A B C] skipped: 1
	// path: [A C B] 3
	// vertex A has degree 2
	// Eulerian
}
