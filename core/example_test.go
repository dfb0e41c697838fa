package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph keyed by strings and add three people:
	g := core.New[string]()
	_ = g.AddNodes(
		core.NodeEntry[string]{Key: "ann", Attrs: core.Attrs{"age": 31}},
		core.NodeEntry[string]{Key: "bob", Attrs: core.Attrs{"age": 27}},
		core.NodeEntry[string]{Key: "cat"},
	)

	// 2) Edges are identified by (src, dst, label):
	_ = g.AddEdge("ann", "bob", "follows", nil)
	_ = g.AddEdge("ann", "bob", "likes", nil)
	_ = g.AddEdge("bob", "cat", "follows", nil)

	// 3) Inspect:
	fmt.Println("nodes:", g.Keys())
	fmt.Println("edges:", g.EdgeCount())
	in, out, _ := g.Degree("bob")
	fmt.Println("bob in/out:", in, out)

	// 4) Unknown endpoints are rejected:
	err := g.AddEdge("ann", "dan", "", nil)
	fmt.Println(err != nil)

	// Output:
	// nodes: [ann bob cat]
	// edges: 3
	// bob in/out: 2 1
	// true
}

// ExampleGraph_NewSubgraph keeps adults and the edges between them.
func ExampleGraph_NewSubgraph() {
	g := core.New[string]()
	_ = g.AddNodes(
		core.NodeEntry[string]{Key: "ann", Attrs: core.Attrs{"age": 31}},
		core.NodeEntry[string]{Key: "bob", Attrs: core.Attrs{"age": 27}},
		core.NodeEntry[string]{Key: "kid", Attrs: core.Attrs{"age": 9}},
	)
	_ = g.AddEdge("ann", "bob", "", nil)
	_ = g.AddEdge("bob", "kid", "", nil)

	adults := g.NewSubgraph(func(_ string, a core.Attrs) bool {
		return core.GetOr(a, "age", 0) >= 18
	}, nil)

	for e := range adults.Edges() {
		fmt.Println(e.Src, "->", e.Dst)
	}

	// Output:
	// ann -> bob
}

// ExampleGraph_UpdateNodes doubles an attribute on every node.
func ExampleGraph_UpdateNodes() {
	g := core.New[int]()
	_ = g.AddNodes(core.NodeEntry[int]{Key: 1, Attrs: core.Attrs{"v": 1.5}}, core.NodeEntry[int]{Key: 2, Attrs: core.Attrs{"v": 4.0}})

	_ = g.UpdateNodes(func(_ int, a core.Attrs) (core.Attrs, error) {
		a["v"] = core.GetOr(a, "v", 0.0) * 2
		return a, nil
	})

	for k, a := range g.Nodes() {
		fmt.Println(k, a["v"])
	}

	// Output:
	// 1 3
	// 2 8
}
