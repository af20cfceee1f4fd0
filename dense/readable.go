// Human-readable rendering of the adjacency structure.
package dense

import (
	"fmt"
	"strings"
)

// ToReadable renders one line per vertex in insertion order, each listing
// the vertex followed by its neighbors in slot order:
//
//	A: [B, D]
//	B: [A, C]
//
// Vertices without neighbors render an empty bracket pair; an empty graph
// renders an empty string. Self-loops follow the Neighbors rule and are
// not listed.
// Complexity: O(V²).
func (g *Graph[T]) ToReadable() string {
	var b strings.Builder
	var i, j int
	var first bool
	n := len(g.verts)
	for i = 0; i < n; i++ { // one line per vertex, insertion order
		fmt.Fprintf(&b, "%v: [", g.verts[i])
		first = true
		for j = 0; j < n; j++ { // neighbors in slot order
			if j == i || !g.hasEdgeAt(i, j) {
				continue
			}
			if !first {
				b.WriteString(", ") // separate neighbors with comma
			}
			fmt.Fprintf(&b, "%v", g.verts[j])
			first = false
		}
		b.WriteString("]\n") // close the neighbor list
	}

	return b.String()
}

// String implements fmt.Stringer via ToReadable.
func (g *Graph[T]) String() string {
	return g.ToReadable()
}
