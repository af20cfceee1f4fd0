// File: matrix/example_test.go
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/matrix"
)

////////////////////////////////////////////////////////////////////////////////
// Example: String
////////////////////////////////////////////////////////////////////////////////

// ExampleDense_String demonstrates the 0/1 rendering of a boolean matrix.
// Scenario:
//
//   - 2×2 matrix with the main diagonal raised.
//
// Complexity: O(r·c)
func ExampleDense_String() {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, true)
	_ = m.Set(1, 1, true)

	fmt.Print(m)

	// Output:
	// [1, 0]
	// [0, 1]
}

////////////////////////////////////////////////////////////////////////////////
// Example: RemoveRowCol
////////////////////////////////////////////////////////////////////////////////

// ExampleDense_RemoveRowCol demonstrates collapsing one slot of a symmetric
// adjacency pattern.
// Scenario:
//
//   - Slots A=0, B=1, C=2 form a triangle: every pair is flagged both ways.
//   - Collapsing slot B removes its row and column; C shifts into slot 1.
//   - The surviving A–C pair lands at cells (0,1)/(1,0), the tail goes blank.
//
// Complexity: O(r·c)
func ExampleDense_RemoveRowCol() {
	m, _ := matrix.NewDense(3, 3)
	for _, cell := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {0, 2}, {2, 0}} {
		_ = m.Set(cell[0], cell[1], true)
	}
	fmt.Print(m)

	_ = m.RemoveRowCol(1)
	fmt.Println("after:")
	fmt.Print(m)

	// Output:
	// [0, 1, 1]
	// [1, 0, 1]
	// [1, 1, 0]
	// after:
	// [0, 1, 0]
	// [1, 0, 0]
	// [0, 0, 0]
}
