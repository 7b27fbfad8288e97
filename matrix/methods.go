// SPDX-License-Identifier: MIT

// Package matrix: element access and O(1) accessors.
// Checked point access returns sentinels; raw linear access trades safety
// for performance and has NO error path by contract.
package matrix

import (
	"fmt"
	"strings"
)

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Size returns the number of live elements. It equals rows*cols when both
// dimensions are nonzero, else max(rows, cols) (degenerate rule).
// Complexity: O(1).
func (m *Matrix[T]) Size() int {
	return len(m.data)
}

// Cap returns the allocated slot count of the backing buffer (>= Size).
// Complexity: O(1).
func (m *Matrix[T]) Cap() int {
	return cap(m.data)
}

// Dims returns the (rows, cols) pair.
// Complexity: O(1).
func (m *Matrix[T]) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// IsSquare reports whether the row and column counts are equal.
// Complexity: O(1).
func (m *Matrix[T]) IsSquare() bool {
	return m.rows == m.cols
}

// IsEmpty reports whether the matrix holds no live elements.
// Complexity: O(1).
func (m *Matrix[T]) IsEmpty() bool {
	return len(m.data) == 0
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute and return the linear offset.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, accessErrorf(method, row, col, err)
	}

	// Row-major addressing.
	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat buffer.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the flat buffer.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Ptr returns a pointer to the element at (row, col), allowing in-place
// assignment through the returned reference. The pointer is invalidated by
// any operation that reallocates, resizes, clears or swaps the buffer.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Ptr(row, col int) (*T, error) {
	idx, err := m.indexOf("Ptr", row, col)
	if err != nil {
		return nil, err
	}

	return &m.data[idx], nil
}

// Data returns the live row-major range of the backing buffer, borrowed,
// not copied. This is the unchecked linear-access surface: indexing it is
// as fast and as unprotected as indexing any slice, and callers must
// pre-validate offsets themselves. Writes are visible in the matrix.
// The slice is invalidated by any reallocating or size-changing operation.
// Complexity: O(1).
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Front returns the first live element. Calling Front on an empty matrix is
// a programmer error and panics.
// Complexity: O(1).
func (m *Matrix[T]) Front() T {
	return m.data[0]
}

// Back returns the last live element. Calling Back on an empty matrix is a
// programmer error and panics.
// Complexity: O(1).
func (m *Matrix[T]) Back() T {
	return m.data[len(m.data)-1]
}

// Flatten returns an independent copy of all live elements in row-major
// order. The matrix is not mutated and the result does not alias its buffer.
// Complexity: O(n) time and memory.
func (m *Matrix[T]) Flatten() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r·c) for string construction.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		b.WriteByte('[')
		for j = 0; j < m.cols; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%v", m.data[i*m.cols+j])
			if j < m.cols-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
