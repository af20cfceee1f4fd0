// Package densegraph is a compact in-memory toolkit for undirected graphs
// backed by a fixed-capacity boolean adjacency matrix.
//
// 🚀 What is densegraph?
//
//	A small, focused library for the dense end of the graph spectrum:
//		• Generic vertices: any ordered key type (ints, strings, ...) via Go generics
//		• Matrix storage: one boolean cell per vertex pair, flat row-major backing
//		• Constant-time edge queries: HasEdge, Degree counting over a single row
//		• Predictable memory: capacity is fixed at construction, never reallocated
//		• Honest failure modes: sentinel errors for every rejected mutation
//
// ✨ Why choose densegraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - No partial mutations – a rejected operation leaves the graph untouched
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – insertion order drives iteration, snapshots never alias
//
// Under the hood, everything is organized under two subpackages:
//
//	dense/  – Graph[T]: vertices, edges, queries, rendering
//	matrix/ – Dense: the boolean matrix kernel (bounds-checked cells, row/col collapse)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	fits in a 10×10 matrix with four true cell pairs.
//
// Dense matrices shine when the vertex count is small and bounded but the
// edge set is thick; for sparse or unbounded graphs reach for an adjacency
// list instead.
//
//	go get github.com/katalvlaran/densegraph
package densegraph
