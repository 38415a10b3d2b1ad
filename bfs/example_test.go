package bfs_test

import (
	"fmt"

	"github.com/isokolov/algokit/bfs"
	"github.com/isokolov/algokit/core"
)

// ExampleBFS traverses a small square-with-tail network.
func ExampleBFS() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "A"}, {"B", "D"},
		{"C", "A"}, {"C", "D"},
		{"D", "B"}, {"D", "C"}, {"D", "E"},
		{"E", "D"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, _ := bfs.BFS(g, "A")
	fmt.Println(res.Order)
	fmt.Println(res.Depth["E"])
	// Output:
	// [A B C D E]
	// 3
}

// ExampleShortestPath finds the fewest-edge route between two vertices.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("C", "D")

	path, _ := bfs.ShortestPath(g, "A", "D")
	fmt.Println(path)
	// Output:
	// [A C D]
}
