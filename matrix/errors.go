// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (nil allocators, dereferencing an
// empty matrix's Front/Back, raw Data indexing).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the outer
// boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index -> dimension mismatch -> operand emptiness
// -> zero divisor -> allocation failure.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns). Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set/Ptr) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (elementwise arithmetic on unequal shapes) or a ragged inner
	// row during nested-sequence construction.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyOperand signals a scalar multiply/divide attempted on an
	// empty matrix.
	ErrEmptyOperand = errors.New("matrix: empty operand")

	// ErrDivideByZero signals scalar division by a value equal to zero.
	ErrDivideByZero = errors.New("matrix: scalar divisor is zero")

	// ErrAllocation indicates that the configured allocator could not
	// satisfy a requested buffer size.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was
	// passed into an operation.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps an underlying error with the given operation tag.
// Sentinels stay matchable through errors.Is after wrapping.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// accessErrorf wraps an access error with method context and the offending
// indices, mirroring the indexer call site (e.g. "Matrix.At(3,0): ...").
func accessErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
