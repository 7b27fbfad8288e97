// SPDX-License-Identifier: MIT
// Package matrix: YAML codec for nested-sequence fixtures.
//
// Purpose:
//   - Let matrices be written and read as the natural nested sequence of
//     rows (the same representation FromRows consumes), so declarative
//     fixtures and config snippets can carry matrix literals.
//
// Design:
//   - Decoding routes through FromRows: ragged input fails with
//     ErrDimensionMismatch, identical to direct construction.
//   - Encoding emits a [][]T view of the live grid. A degenerate shape
//     (zero rows or columns with live elements) has no faithful nested
//     representation and is rejected with ErrBadShape.
//   - This is an in-memory codec only; the package does no I/O.

package matrix

import "gopkg.in/yaml.v3"

// Operation name constants for unified error wrapping.
const (
	opMarshalYAML   = "MarshalYAML"
	opUnmarshalYAML = "UnmarshalYAML"
)

// MarshalYAML implements yaml.Marshaler, emitting the matrix as a sequence
// of row sequences in row-major order.
// Errors: ErrBadShape for degenerate shapes holding live elements.
// Complexity: O(r·c) time and memory.
func (m *Matrix[T]) MarshalYAML() (interface{}, error) {
	if m == nil || len(m.data) == 0 {
		return [][]T{}, nil // empty matrix encodes as an empty sequence
	}
	if m.rows == 0 || m.cols == 0 {
		// Live elements without a (rows × cols) grid cannot round-trip.
		return nil, matrixErrorf(opMarshalYAML, ErrBadShape)
	}

	rows := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		rows[i] = row
	}

	return rows, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, decoding a sequence of row
// sequences and rebuilding the matrix through the FromRows validation path.
// Errors: ErrDimensionMismatch for ragged rows, plus yaml decode errors.
// Complexity: O(r·c) time and memory.
func (m *Matrix[T]) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]T
	if err := value.Decode(&rows); err != nil {
		return matrixErrorf(opUnmarshalYAML, err)
	}

	built, err := FromRows(rows)
	if err != nil {
		return matrixErrorf(opUnmarshalYAML, err)
	}
	*m = *built

	return nil
}
