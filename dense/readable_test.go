// Package dense_test contains unit tests for the human-readable rendering.
package dense_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/dense"
	"github.com/stretchr/testify/require"
)

// TestToReadableLayout checks the exact line-per-vertex format.
func TestToReadableLayout(t *testing.T) {
	g := quad(t) // A,B,C,D with edges A–B, B–C, A–D

	expected := "A: [B, D]\n" +
		"B: [A, C]\n" +
		"C: [B]\n" +
		"D: [A]\n"
	require.Equal(t, expected, g.ToReadable()) // insertion-ordered lines, slot-ordered neighbors
}

// TestToReadableEmptyGraph ensures a vertex-free graph renders nothing.
func TestToReadableEmptyGraph(t *testing.T) {
	g, err := dense.New[string]()
	require.NoError(t, err)

	require.Equal(t, "", g.ToReadable()) // no vertices, no lines
}

// TestToReadableIsolatedVertex ensures lonely vertices render empty brackets.
func TestToReadableIsolatedVertex(t *testing.T) {
	g, err := dense.New[string]()
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("X"))

	require.Equal(t, "X: []\n", g.ToReadable()) // empty neighbor list
}

// TestToReadableIntVertices ensures non-string keys render through their
// default formatting.
func TestToReadableIntVertices(t *testing.T) {
	g, err := dense.New[int]()
	require.NoError(t, err)
	require.NoError(t, g.AddVertices(10, 20))
	require.NoError(t, g.AddEdge(10, 20))

	require.Equal(t, "10: [20]\n20: [10]\n", g.ToReadable()) // %v formatting of int keys
}

// TestToReadableLoopHidden ensures a self-loop follows the Neighbors rule
// and stays out of the rendering.
func TestToReadableLoopHidden(t *testing.T) {
	g, err := dense.New[string](dense.WithLoops())
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddEdge("A", "A"))

	require.Equal(t, "A: []\n", g.ToReadable()) // the loop is not a neighbor
}

// TestStringMatchesToReadable ensures the Stringer just delegates.
func TestStringMatchesToReadable(t *testing.T) {
	g := quad(t)

	require.Equal(t, g.ToReadable(), g.String()) // identical output
}
