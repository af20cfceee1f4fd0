// Package matrix provides the boolean matrix kernel behind dense graph
// storage: a fixed-size, row-major grid of adjacency flags.
//
// What
//
//	Dense is a rows×cols matrix of bool values held in one flat slice.
//	It offers bounds-checked cell access (At, Set), deep copies (Clone),
//	bulk reset (Clear), and RemoveRowCol, a compacting collapse of row k
//	and column k that shifts all higher rows and columns down by one so
//	the surviving cells keep their pairwise meaning.
//
// Why
//
//	An undirected graph over at most C vertices needs exactly C×C flags.
//	A flat backing slice keeps the whole matrix in one allocation and one
//	cache-friendly stripe per row; collapsing a row/column pair is two
//	copy passes over that slice, no per-cell bookkeeping.
//
// Complexity
//
//	At / Set           O(1)
//	Clone / Clear      O(rows·cols)
//	RemoveRowCol       O(rows·cols)
//	String             O(rows·cols)
//
// Errors
//
//	ErrInvalidDimensions – construction with rows or cols ≤ 0
//	ErrIndexOutOfBounds  – cell access outside [0,rows)×[0,cols)
//
// Dense performs no synchronization; callers that share a value across
// goroutines must serialize access themselves.
package matrix
