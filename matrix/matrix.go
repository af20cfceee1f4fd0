// Dense is a concrete, row-major boolean matrix, storing cells in a flat
// slice for performance and cache friendliness. It backs adjacency storage
// where each cell records the presence of one vertex pair.
package matrix

// Dense is a row-major matrix of bool values.
// r is rows, c is columns, and data holds r*c cells in row-major order.
type Dense struct {
	r, c int    // number of rows and columns
	data []bool // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to false.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]bool, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the cell at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Stage 3 (Finalize): return value or wrapped error.
// Complexity: O(1).
func (m *Dense) At(row, col int) (bool, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return false, err
	}

	// Return stored cell
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Stage 3 (Finalize): return error or nil.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v bool) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]bool, len(m.data))
	// Copy all cells into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Clear resets every cell to false, keeping dimensions and backing storage.
// Complexity: O(r*c).
func (m *Dense) Clear() {
	var i int
	for i = range m.data { // sweep the flat slice once
		m.data[i] = false
	}
}

// RemoveRowCol collapses row k and column k in place: every row above k
// shifts down one slot, every column right of k shifts left one slot, and
// the freed last row and last column are reset to false. Dimensions are
// unchanged, so the same backing storage keeps serving a shrunken active
// region. Cell (i,j) with i,j ≠ k ends up at (i',j') where i' = i-1 for
// i > k (else i), j' = j-1 for j > k (else j).
//
// Stage 1 (Validate): ensure 0 ≤ k < r and 0 ≤ k < c.
// Stage 2 (Execute): shift rows, blank the tail row, shift columns per row.
// Stage 3 (Finalize): return error or nil.
// Complexity: O(r*c) via two sequential copy passes.
func (m *Dense) RemoveRowCol(k int) error {
	// Validate k against both dimensions
	if k < 0 || k >= m.r || k >= m.c {
		return denseErrorf("RemoveRowCol", k, k, ErrIndexOutOfBounds)
	}

	// Shift rows k+1..r-1 down into k..r-2 (forward copy, overlap-safe)
	copy(m.data[k*m.c:], m.data[(k+1)*m.c:])

	// Blank the freed last row
	var j int
	last := (m.r - 1) * m.c
	for j = last; j < last+m.c; j++ {
		m.data[j] = false
	}

	// Within each row, shift columns k+1..c-1 left into k..c-2
	var i int
	var row []bool
	for i = 0; i < m.r; i++ {
		row = m.data[i*m.c : (i+1)*m.c] // current row window
		copy(row[k:], row[k+1:])        // collapse column k
		row[m.c-1] = false              // blank the freed last column
	}

	return nil
}

// String implements fmt.Stringer for easy debugging, rendering true as 1
// and false as 0.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			if m.data[i*m.c+j] {
				s += "1"
			} else {
				s += "0"
			}
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
