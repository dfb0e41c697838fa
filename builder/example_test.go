package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/builder"
)

// ExampleBuildGraph composes two labelled cycles side by side.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithLabel("ring")},
		builder.Cycle(3),
		builder.Offset(3, builder.Cycle(3)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for e := range g.Edges() {
		fmt.Printf("%s-%s->%s\n", e.Src, e.Label, e.Dst)
	}
	// Output:
	// A-ring->B
	// B-ring->C
	// C-ring->A
	// D-ring->E
	// E-ring->F
	// F-ring->D
}
