package dense

import "errors"

var (
	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dense: invalid option supplied")
	// ErrGraphFull indicates the fixed vertex capacity is exhausted.
	ErrGraphFull = errors.New("dense: vertex capacity exhausted")
	// ErrVertexExists indicates an insertion of an already-present vertex.
	ErrVertexExists = errors.New("dense: vertex already exists")
	// ErrVertexNotFound indicates a mutation naming a vertex that is not in the graph.
	ErrVertexNotFound = errors.New("dense: vertex not found")
	// ErrEdgeExists indicates an insertion of an already-present edge.
	ErrEdgeExists = errors.New("dense: edge already exists")
	// ErrEdgeNotFound indicates a removal of an edge that is not in the graph.
	ErrEdgeNotFound = errors.New("dense: edge not found")
	// ErrLoopNotAllowed indicates a self-loop edge on a graph built without WithLoops.
	ErrLoopNotAllowed = errors.New("dense: self-loops not allowed")
)
