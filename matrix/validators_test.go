// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the shared validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil ensures the nil guard fires only on nil references.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix) // nil rejected

	m := mustNew[int](t, 1, 1)
	require.NoError(t, matrix.ValidateNotNil(m)) // live reference accepted
}

// TestValidateShape ensures negative dimensions are rejected and zero ones
// are accepted.
func TestValidateShape(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateShape(-1, 2), matrix.ErrBadShape) // negative rows
	require.ErrorIs(t, matrix.ValidateShape(2, -1), matrix.ErrBadShape) // negative cols

	require.NoError(t, matrix.ValidateShape(0, 0)) // empty shape is legal
	require.NoError(t, matrix.ValidateShape(0, 5)) // degenerate shape is legal
	require.NoError(t, matrix.ValidateShape(3, 4)) // ordinary shape
}

// TestValidateSameShape ensures the shape guard compares dimensions across
// element types.
func TestValidateSameShape(t *testing.T) {
	a := mustNew[int](t, 2, 3)
	b := mustNew[float64](t, 2, 3) // different element type, same shape
	c := mustNew[int](t, 3, 2)

	require.NoError(t, matrix.ValidateSameShape(a, b))                              // shapes agree
	require.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch) // shapes differ
}

// TestValidateIndex ensures the index guard covers all four edges.
func TestValidateIndex(t *testing.T) {
	m := mustNew[int](t, 2, 3)

	require.NoError(t, matrix.ValidateIndex(m, 0, 0)) // first cell
	require.NoError(t, matrix.ValidateIndex(m, 1, 2)) // last cell

	require.ErrorIs(t, matrix.ValidateIndex(m, -1, 0), matrix.ErrOutOfRange) // row underflow
	require.ErrorIs(t, matrix.ValidateIndex(m, 2, 0), matrix.ErrOutOfRange)  // row overflow
	require.ErrorIs(t, matrix.ValidateIndex(m, 0, -1), matrix.ErrOutOfRange) // col underflow
	require.ErrorIs(t, matrix.ValidateIndex(m, 0, 3), matrix.ErrOutOfRange)  // col overflow
}

// TestValidateNonEmpty ensures empty containers are flagged.
func TestValidateNonEmpty(t *testing.T) {
	empty := mustNew[int](t, 0, 0)
	require.ErrorIs(t, matrix.ValidateNonEmpty(empty), matrix.ErrEmptyOperand) // no live cells

	filled := mustNew[int](t, 1, 1)
	require.NoError(t, matrix.ValidateNonEmpty(filled)) // one live cell suffices
}
