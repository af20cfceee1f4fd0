// Package dense implements Graph[T], a fixed-capacity undirected graph
// over ordered vertex keys, stored as a boolean adjacency matrix.
//
// What
//
//	Graph[T] keeps up to C vertices (C fixed at construction, default 10)
//	and one boolean cell per vertex pair. Vertices are generic ordered keys
//	(ints, strings, ...); each occupies a matrix slot in insertion order.
//	Mutations: AddVertex, AddVertices, RemoveVertex, AddEdge, RemoveEdge,
//	Clear. Queries: HasVertex, HasEdge, Neighbors, Degree, Vertices, Edges,
//	IncidentEdges, VertexCount, EdgeCount, Capacity, Looped, ToReadable.
//
// Why
//
//	When the vertex population is small and bounded but connectivity is
//	thick, a matrix beats adjacency lists: edge presence is one cell read,
//	memory is a single flat allocation that never grows, and iteration
//	order is fully deterministic.
//
// Edge semantics
//
//	Edges are undirected: AddEdge(a, b) raises both (a,b) and (b,a) cells,
//	and HasEdge reads them symmetrically (either cell set counts). An edge
//	between a pair exists at most once. Self-loops are rejected unless the
//	graph was built WithLoops(); a loop is a single edge on the diagonal,
//	excluded from Neighbors and Degree, visible through Edges and
//	IncidentEdges.
//
// Failure semantics
//
//	Every rejected mutation returns a sentinel error and leaves the graph
//	exactly as it was, with no partial writes. Queries never fail: asking
//	about an absent vertex yields false, nil, or 0.
//
// Complexity
//
//	HasVertex / AddVertex            O(V)
//	AddEdge / RemoveEdge / HasEdge   O(V)  (slot resolution; cell ops are O(1))
//	Neighbors / Degree               O(V)
//	RemoveVertex / Clear             O(C²) (matrix collapse / reset)
//	Edges / ToReadable               O(V²)
//	VertexCount / EdgeCount / ...    O(1)
//
// Options
//
//	WithCapacity(n) – fix the vertex budget to n (> 0); default DefaultCapacity.
//	WithLoops()     – permit self-loop edges.
//
// Errors
//
//	ErrOptionViolation – invalid Option supplied to New
//	ErrGraphFull       – vertex budget exhausted
//	ErrVertexExists    – duplicate vertex insertion
//	ErrVertexNotFound  – mutation names an absent vertex
//	ErrEdgeExists      – duplicate edge insertion
//	ErrEdgeNotFound    – removal of an absent edge
//	ErrLoopNotAllowed  – self-loop without WithLoops()
//
// Graph performs no synchronization; callers that share one value across
// goroutines must serialize access themselves.
package dense
