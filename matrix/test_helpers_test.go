// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for the matrix package test suite.
// Helpers fail the calling test immediately on any construction error so
// individual tests stay focused on the behavior under test.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/stretchr/testify/require"
)

// errAllocRefused is the cause returned by the failing test allocator.
var errAllocRefused = errors.New("test allocator: refused")

// mustNew builds a zero-valued rows×cols matrix or aborts the test.
func mustNew[T any](t *testing.T, rows, cols int) *matrix.Matrix[T] {
	t.Helper()

	m, err := matrix.New[T](rows, cols) // construct with default options
	require.NoError(t, err)             // construction must succeed

	return m
}

// mustFromRows builds a matrix from nested rows or aborts the test.
func mustFromRows[T any](t *testing.T, rows [][]T) *matrix.Matrix[T] {
	t.Helper()

	m, err := matrix.FromRows(rows) // nested-sequence construction
	require.NoError(t, err)         // construction must succeed

	return m
}

// failingAllocator returns an allocation policy that refuses every request
// of at least threshold slots, for deterministic ErrAllocation testing.
func failingAllocator[T any](threshold int) matrix.Allocator[T] {
	return func(n int) ([]T, error) {
		if n >= threshold {
			return nil, errAllocRefused // simulate exhaustion
		}

		return make([]T, n), nil
	}
}

// fillSequential writes 1..n into the live range in row-major order.
func fillSequential(m *matrix.Matrix[int]) {
	data := m.Data() // raw linear access
	for i := range data {
		data[i] = i + 1
	}
}
