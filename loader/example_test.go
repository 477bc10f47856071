package loader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/loader"
)

func ExampleApply() {
	g := core.NewGraph()
	b, err := loader.ParseLines(strings.NewReader("A B\nC D 5\nB C\n"), false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := loader.Apply(g, b)
	fmt.Println(res.Vertices, len(res.Edges), res.Skipped)
	// Output: [A B C] 2 1
}
