// Package matrix error definitions.
//
// All sentinel errors are package-level and comparable via errors.Is.
// Methods wrap them with call context (method name and indices) so a
// failure pinpoints the offending cell without losing the sentinel.
package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
