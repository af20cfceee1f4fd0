// Edge lifecycle and adjacency queries.
//
// Every write is symmetric (both (a,b) and (b,a) cells change together) and
// every read is symmetric (either cell set counts as connected), so the
// matrix may never disagree with itself about a pair.
package dense

// defaultReserve sizes neighbor and incident-edge snapshots ahead of the scan.
const defaultReserve = 8

// AddEdge inserts an undirected edge between two present vertices.
// Returns ErrVertexNotFound when either endpoint is absent,
// ErrLoopNotAllowed for a == b on a graph built without WithLoops, and
// ErrEdgeExists when the pair is already connected; the graph is unchanged
// on failure.
// Complexity: O(V) slot resolution; the cell writes are O(1).
func (g *Graph[T]) AddEdge(a, b T) error {
	// Stage 1 (Validate): resolve both endpoints
	sa, sb := g.indexOf(a), g.indexOf(b)
	if sa < 0 || sb < 0 {
		return ErrVertexNotFound
	}
	// Stage 1 (Validate): loop policy
	if sa == sb && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	// Stage 1 (Validate): at most one edge per pair
	if g.hasEdgeAt(sa, sb) {
		return ErrEdgeExists
	}

	// Stage 2 (Execute): raise both orientations (one diagonal cell for loops)
	g.setCell(sa, sb, true)
	g.setCell(sb, sa, true)
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge between two present vertices.
// Returns ErrVertexNotFound when either endpoint is absent and
// ErrEdgeNotFound when the pair is not connected; the graph is unchanged
// on failure.
// Complexity: O(V) slot resolution; the cell writes are O(1).
func (g *Graph[T]) RemoveEdge(a, b T) error {
	// Stage 1 (Validate): resolve both endpoints
	sa, sb := g.indexOf(a), g.indexOf(b)
	if sa < 0 || sb < 0 {
		return ErrVertexNotFound
	}
	// Stage 1 (Validate): the edge must exist
	if !g.hasEdgeAt(sa, sb) {
		return ErrEdgeNotFound
	}

	// Stage 2 (Execute): lower both orientations
	g.setCell(sa, sb, false)
	g.setCell(sb, sa, false)
	g.edgeCount--

	return nil
}

// HasEdge reports whether a and b are connected, reading the cell pair
// symmetrically. Absent endpoints yield false, never an error.
// Complexity: O(V) slot resolution.
func (g *Graph[T]) HasEdge(a, b T) bool {
	sa, sb := g.indexOf(a), g.indexOf(b)
	if sa < 0 || sb < 0 {
		return false
	}

	return g.hasEdgeAt(sa, sb)
}

// Neighbors returns a snapshot of every vertex connected to v, in slot
// (insertion) order. The vertex itself never appears, even when a
// self-loop exists. Returns nil when v is absent.
// Complexity: O(V).
func (g *Graph[T]) Neighbors(v T) []T {
	s := g.indexOf(v)
	if s < 0 {
		return nil
	}

	result := make([]T, 0, defaultReserve)
	var j int
	n := len(g.verts)
	for j = 0; j < n; j++ {
		if j == s { // a loop is not a neighbor
			continue
		}
		if g.hasEdgeAt(s, j) {
			result = append(result, g.verts[j])
		}
	}

	return result
}

// Degree returns the number of distinct neighbors of v. A self-loop does
// not contribute. Absent vertices have degree 0.
// Complexity: O(V).
func (g *Graph[T]) Degree(v T) int {
	s := g.indexOf(v)
	if s < 0 {
		return 0
	}

	var deg, j int
	n := len(g.verts)
	for j = 0; j < n; j++ {
		if j != s && g.hasEdgeAt(s, j) {
			deg++
		}
	}

	return deg
}

// Edges returns a snapshot of every edge, ordered by ascending slot pair
// (i, j) with i ≤ j. Endpoints appear in slot order; a self-loop shows as
// From == To.
// Complexity: O(V²).
func (g *Graph[T]) Edges() []Edge[T] {
	out := make([]Edge[T], 0, g.edgeCount)
	var i, j int
	n := len(g.verts)
	for i = 0; i < n; i++ {
		if g.cellAt(i, i) { // self-loop at slot i
			out = append(out, Edge[T]{From: g.verts[i], To: g.verts[i]})
		}
		for j = i + 1; j < n; j++ {
			if g.hasEdgeAt(i, j) {
				out = append(out, Edge[T]{From: g.verts[i], To: g.verts[j]})
			}
		}
	}

	return out
}

// IncidentEdges returns a snapshot of every edge touching v, ordered by
// the other endpoint's slot ascending, with each edge's endpoints in slot
// order. A self-loop appears once. Returns nil when v is absent.
// Complexity: O(V).
func (g *Graph[T]) IncidentEdges(v T) []Edge[T] {
	s := g.indexOf(v)
	if s < 0 {
		return nil
	}

	out := make([]Edge[T], 0, defaultReserve)
	var j int
	n := len(g.verts)
	for j = 0; j < n; j++ {
		if j == s {
			if g.cellAt(s, s) { // the loop belongs to its own vertex once
				out = append(out, Edge[T]{From: v, To: v})
			}
			continue
		}
		if !g.hasEdgeAt(s, j) {
			continue
		}
		if s < j {
			out = append(out, Edge[T]{From: v, To: g.verts[j]})
		} else {
			out = append(out, Edge[T]{From: g.verts[j], To: v})
		}
	}

	return out
}
