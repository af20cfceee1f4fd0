// File: dense/example_test.go
package dense_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densegraph/dense"
)

////////////////////////////////////////////////////////////////////////////////
// Example: building a graph
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates the full build-and-render cycle on a square.
// Scenario:
//
//	    A───B
//	    │   │
//	    C───D
//
//   - Four vertices inserted in one batch, four edges.
//   - ToReadable lists vertices in insertion order, neighbors in slot order.
//
// Complexity: O(V²) for the rendering
func ExampleNew() {
	g, _ := dense.New[string]()
	_ = g.AddVertices("A", "B", "C", "D")
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")

	fmt.Print(g.ToReadable())
	fmt.Printf("%d vertices, %d edges\n", g.VertexCount(), g.EdgeCount())

	// Output:
	// A: [B, C]
	// B: [A, D]
	// C: [A, D]
	// D: [B, C]
	// 4 vertices, 4 edges
}

////////////////////////////////////////////////////////////////////////////////
// Example: RemoveVertex
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_RemoveVertex demonstrates vertex retirement on the same square.
// Scenario:
//
//   - Removing A retires its two incident edges.
//   - Survivors shift down one slot; the B–D and C–D edges are untouched.
//
// Complexity: O(C²) for the matrix collapse
func ExampleGraph_RemoveVertex() {
	g, _ := dense.New[string]()
	_ = g.AddVertices("A", "B", "C", "D")
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")

	_ = g.RemoveVertex("A")

	fmt.Print(g.ToReadable())
	fmt.Printf("%d vertices, %d edges\n", g.VertexCount(), g.EdgeCount())

	// Output:
	// B: [D]
	// C: [D]
	// D: [B, C]
	// 3 vertices, 2 edges
}

////////////////////////////////////////////////////////////////////////////////
// Example: queries
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_Neighbors demonstrates adjacency queries on a path of ints.
// Scenario:
//
//   - Path 1–2–3: the middle vertex sees both ends.
//   - Queries never fail; an absent key yields zero values.
//
// Complexity: O(V) per query
func ExampleGraph_Neighbors() {
	g, _ := dense.New[int]()
	_ = g.AddVertices(1, 2, 3)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	fmt.Println("neighbors of 2:", g.Neighbors(2))
	fmt.Println("degree of 2:", g.Degree(2))
	fmt.Println("degree of 9:", g.Degree(9))

	// Output:
	// neighbors of 2: [1 3]
	// degree of 2: 2
	// degree of 9: 0
}

////////////////////////////////////////////////////////////////////////////////
// Example: failure semantics
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_AddEdge demonstrates sentinel-based failure handling.
// Scenario:
//
//   - Edges require both endpoints to exist; the verdict is a sentinel
//     matched with errors.Is, and the graph stays untouched.
//
// Complexity: O(V)
func ExampleGraph_AddEdge() {
	g, _ := dense.New[string](dense.WithCapacity(2))
	_ = g.AddVertices("A", "B")

	err := g.AddEdge("A", "Z")
	fmt.Println("missing endpoint:", errors.Is(err, dense.ErrVertexNotFound))
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// missing endpoint: true
	// edges: 0
}
