package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/bfs"
	"github.com/katalvlaran/lvgraph/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	g := core.New[string]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = g.AddNode(fmt.Sprintf("%d_%d", i, j), nil)
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// connect to right neighbor
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), "", nil)
			}
			// connect to down neighbor
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), "", nil)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleBFS_shortestPath finds the fewest-hop route between two stations.
func ExampleBFS_shortestPath() {
	g := core.New[string]()
	for _, s := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddNode(s, nil)
	}
	_ = g.AddEdge("A", "B", "", nil)
	_ = g.AddEdge("B", "C", "", nil)
	_ = g.AddEdge("C", "E", "", nil)
	_ = g.AddEdge("A", "D", "", nil)
	_ = g.AddEdge("D", "E", "", nil)

	res, _ := bfs.BFS(g, "A")
	path, _ := res.PathTo("E")
	fmt.Println(path, res.Depth["E"])
	// Output:
	// [A D E] 2
}
