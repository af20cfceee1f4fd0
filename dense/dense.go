// Graph construction, counters, and the private slot/cell helpers shared
// by the vertex and edge method files.
package dense

import (
	"fmt"

	"github.com/katalvlaran/densegraph/matrix"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// New constructs an empty Graph.
// Stage 1 (Validate): apply Options to defaults, surface any recorded violation.
// Stage 2 (Prepare): allocate the capacity×capacity adjacency matrix and the
// vertex sequence.
// Stage 3 (Finalize): return the graph or ErrOptionViolation.
// Complexity: O(C²) time and memory for the matrix allocation.
func New[T constraints.Ordered](opts ...Option) (*Graph[T], error) {
	// Apply functional options over defaults
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	// Surface deferred option violations
	if o.err != nil {
		return nil, o.err
	}

	// Allocate adjacency storage once; never resized afterwards
	mat, err := matrix.NewDense(o.Capacity, o.Capacity)
	if err != nil {
		return nil, fmt.Errorf("dense: allocate adjacency storage: %w", err)
	}

	return &Graph[T]{
		verts:      make([]T, 0, o.Capacity),
		mat:        mat,
		edgeCount:  0,
		capacity:   o.Capacity,
		allowLoops: o.AllowLoops,
	}, nil
}

// Capacity returns the fixed vertex budget set at construction.
// Complexity: O(1).
func (g *Graph[T]) Capacity() int {
	return g.capacity // budget never changes after New
}

// Looped reports whether self-loop edges are permitted.
// Complexity: O(1).
func (g *Graph[T]) Looped() bool {
	return g.allowLoops // policy never changes after New
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph[T]) VertexCount() int {
	return len(g.verts) // sequence length is the live count
}

// EdgeCount returns the current number of distinct undirected edges.
// A self-loop counts as one edge.
// Complexity: O(1).
func (g *Graph[T]) EdgeCount() int {
	return g.edgeCount // maintained by every edge-touching mutation
}

// Clear removes every vertex and edge while keeping capacity and loop
// policy, so the graph is reusable without reallocation.
// Complexity: O(C²) for the matrix reset.
func (g *Graph[T]) Clear() {
	g.mat.Clear()         // drop all adjacency flags
	g.verts = g.verts[:0] // retire the vertex sequence, keep its storage
	g.edgeCount = 0       // no edges remain
}

// indexOf resolves a vertex key to its matrix slot, or -1 when absent.
// Complexity: O(V) linear scan of the insertion sequence.
func (g *Graph[T]) indexOf(v T) int {
	return slices.Index(g.verts, v)
}

// cellAt reads one adjacency cell by slot pair. Both slots must already be
// resolved against the live sequence; a bounds failure here means internal
// state corruption, not caller error.
func (g *Graph[T]) cellAt(i, j int) bool {
	v, err := g.mat.At(i, j)
	if err != nil {
		panic(fmt.Sprintf("cellAt: adjacency read (%d,%d): %v", i, j, err))
	}

	return v
}

// setCell writes one adjacency cell by slot pair, with the same
// resolved-slots contract as cellAt.
func (g *Graph[T]) setCell(i, j int, v bool) {
	if err := g.mat.Set(i, j, v); err != nil {
		panic(fmt.Sprintf("setCell: adjacency write (%d,%d): %v", i, j, err))
	}
}

// hasEdgeAt reports edge presence between two resolved slots, reading the
// cell pair symmetrically: either orientation set counts as connected.
func (g *Graph[T]) hasEdgeAt(i, j int) bool {
	return g.cellAt(i, j) || g.cellAt(j, i)
}
