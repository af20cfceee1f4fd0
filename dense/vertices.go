// Vertex lifecycle: insertion, batch insertion, membership, removal, and
// deterministic enumeration.
//
// Determinism:
//   - Vertices() returns keys in insertion order; a removal compacts the
//     sequence, so survivors keep their relative order.
package dense

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// AddVertex inserts a new vertex into the first free matrix slot.
// Returns ErrVertexExists when v is already present, ErrGraphFull when the
// fixed capacity is exhausted; the graph is unchanged on failure.
// Complexity: O(V) for the duplicate scan.
func (g *Graph[T]) AddVertex(v T) error {
	// Reject duplicates before touching capacity
	if g.indexOf(v) >= 0 {
		return ErrVertexExists
	}
	// Reject when every slot is taken
	if len(g.verts) == g.capacity {
		return ErrGraphFull
	}

	// Claim the next slot; its matrix row and column are already false
	// (zeroed at allocation, re-blanked by every RemoveVertex and Clear).
	g.verts = append(g.verts, v)

	return nil
}

// AddVertices inserts a batch of vertices as a single mutation: the whole
// batch is validated first, and either every key is added or none is.
// Returns ErrVertexExists when any key is already present or repeated
// within the batch, ErrGraphFull when the batch does not fit; the graph is
// unchanged on failure. An empty batch is a no-op.
// Complexity: O(n·V) validation over batch size n.
func (g *Graph[T]) AddVertices(vs ...T) error {
	// Stage 1 (Validate): capacity for the whole batch
	if len(g.verts)+len(vs) > g.capacity {
		return fmt.Errorf("dense: batch of %d does not fit: %w", len(vs), ErrGraphFull)
	}
	// Stage 1 (Validate): no key may collide with the graph or the batch itself
	seen := make(map[T]struct{}, len(vs))
	var v T
	for _, v = range vs {
		if g.indexOf(v) >= 0 {
			return fmt.Errorf("dense: add %v: %w", v, ErrVertexExists)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("dense: add %v twice: %w", v, ErrVertexExists)
		}
		seen[v] = struct{}{}
	}

	// Stage 2 (Execute): append every key; slots claimed here are clean
	g.verts = append(g.verts, vs...)

	return nil
}

// HasVertex reports whether v is present.
// Complexity: O(V).
func (g *Graph[T]) HasVertex(v T) bool {
	return g.indexOf(v) >= 0
}

// RemoveVertex deletes a vertex together with all its incident edges
// (including a self-loop, which retires as one edge).
// Surviving vertices shift down one slot to keep the sequence and the
// matrix compact; edges between survivors are preserved.
// Returns ErrVertexNotFound when v is absent; the graph is then unchanged.
// Complexity: O(C²) for the matrix collapse, C the fixed capacity.
func (g *Graph[T]) RemoveVertex(v T) error {
	// Stage 1 (Validate): resolve the slot
	s := g.indexOf(v)
	if s < 0 {
		return ErrVertexNotFound
	}

	// Stage 2 (Prepare): count edges that die with the slot, before the
	// collapse destroys their cells
	var retired, j int
	n := len(g.verts)
	for j = 0; j < n; j++ {
		if j == s {
			if g.cellAt(s, s) { // self-loop retires as one edge
				retired++
			}
			continue
		}
		if g.hasEdgeAt(s, j) {
			retired++
		}
	}

	// Stage 3 (Execute): collapse row s and column s; survivors shift down
	if err := g.mat.RemoveRowCol(s); err != nil {
		panic(fmt.Sprintf("RemoveVertex: collapse slot %d: %v", s, err))
	}
	g.verts = slices.Delete(g.verts, s, s+1)

	// Stage 4 (Finalize): account for the retired edges
	g.edgeCount -= retired

	return nil
}

// Vertices returns a snapshot of all vertex keys in insertion order.
// The returned slice is owned by the caller and never aliases graph state.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []T {
	return slices.Clone(g.verts)
}
