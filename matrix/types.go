// SPDX-License-Identifier: MIT

// Package matrix: domain types for the generic container.
// This file intentionally contains ONLY the container type, the allocator
// policy type, and the shared element-count rule. Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package matrix

// Allocator is the pluggable buffer allocation policy. It must return a
// zero-valued slice of length n (and capacity >= n), or a non-nil error when
// the request cannot be satisfied; the container surfaces such failures as
// ErrAllocation. Alloc(0) must return an empty (possibly nil) slice.
//
// The default policy is a plain make. Tests inject failing allocators to
// exercise allocation-failure paths deterministically.
type Allocator[T any] func(n int) ([]T, error)

// defaultAllocator allocates via make; it never fails.
func defaultAllocator[T any](n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}

	return make([]T, n), nil
}

// Matrix is a row-major two-dimensional container over one flat buffer.
//
// Storage model:
//   - data[:len(data)] is the live range in row-major order
//     (index = row*cols + col); len(data) is the element count.
//   - cap(data) is the capacity; slots past the live range are allocated
//     headroom holding zero values.
//   - the element count is rows*cols when both are nonzero, else
//     max(rows, cols) — the degenerate "vector-like" rule.
//
// A Matrix exclusively owns its buffer: no two instances alias the same
// backing storage (Clone deep-copies, Move and Swap transfer ownership).
// All methods are single-goroutine; see the package doc.
type Matrix[T any] struct {
	rows int // row count
	cols int // column count

	data  []T          // flat backing storage: len = size, cap = capacity
	alloc Allocator[T] // buffer allocation policy (never nil once built)
}

// elemCount applies the element-count rule to a shape: rows*cols when both
// dimensions are nonzero, otherwise max(rows, cols).
// Complexity: O(1).
func elemCount(rows, cols int) int {
	if rows != 0 && cols != 0 {
		return rows * cols
	}
	if rows > cols {
		return rows
	}

	return cols
}
