package dense

import (
	"github.com/katalvlaran/densegraph/matrix"
	"golang.org/x/exp/constraints"
)

// Graph is a fixed-capacity undirected graph over ordered vertex keys,
// backed by a capacity×capacity boolean adjacency matrix.
//
// A vertex occupies the matrix slot equal to its position in the insertion
// sequence; removing a vertex compacts both the sequence and the matrix so
// slots stay contiguous. The zero value is not usable; construct with New.
type Graph[T constraints.Ordered] struct {
	// verts holds the vertex keys in insertion order;
	// the position of a key is its matrix slot.
	verts []T

	// mat is the capacity×capacity adjacency flag storage.
	mat *matrix.Dense

	// edgeCount tracks distinct undirected edges (a self-loop counts once).
	edgeCount int

	// capacity is the fixed vertex budget set at construction.
	capacity int

	// allowLoops records whether self-loop edges are permitted.
	allowLoops bool
}

// Edge is one undirected edge reported by Edges or IncidentEdges.
// Endpoints appear in slot order: From occupies the lower matrix slot of
// the pair (From == To for a self-loop).
type Edge[T constraints.Ordered] struct {
	// From is the endpoint at the lower matrix slot.
	From T

	// To is the endpoint at the higher matrix slot.
	To T
}
