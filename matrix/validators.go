// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/index checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no
//    nil check in ValidateSameShape — callers must ensure non-nil first).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: *Matrix[T] value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T any](m *Matrix[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateShape – Ensures a requested (rows, cols) shape is representable.
//
// Inputs: row and column counts. Zero is legal (degenerate rule applies);
// negative counts are not.
// Returns: nil or wrapped ErrBadShape.
// Complexity: O(1).
// AI-Hints: Constructors and Reserve must call this before any allocation.
func ValidateShape(rows, cols int) error {
	// Reject negative dimensions explicitly.
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// The two element types may differ; only the shapes are compared.
// Inputs: Two *Matrix values.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub/Hadamard kernels and compatibility guards.
func ValidateSameShape[L, R any](a *Matrix[L], b *Matrix[R]) error {
	// Execute comparisons
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex – Ensures (row, col) addresses a live cell of m.
//
// Implementation: Assumes m is not nil (caller must ensure).
// Inputs: *Matrix value and a point position.
// Return: nil or plain ErrOutOfRange (indexers add their own context).
// Complexity: O(1).
func ValidateIndex[T any](m *Matrix[T], row, col int) error {
	// Validate row index.
	if row < 0 || row >= m.rows {
		return ErrOutOfRange
	}
	// Validate column index.
	if col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// ValidateNonEmpty – Ensures m holds at least one live element.
//
// Implementation: Assumes m is not nil (caller must ensure).
// Return: nil or wrapped ErrEmptyOperand.
// Complexity: O(1).
// AI-Hints: Scalar broadcast kernels must call this before allocating.
func ValidateNonEmpty[T any](m *Matrix[T]) error {
	if len(m.data) == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyOperand)
	}

	return nil
}
