// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Thin, intention-revealing aliases over the canonical constructors and
//     kernels, for API discoverability. No logic lives here: every facade
//     delegates in one line, so behavior and error contracts stay identical.
//
// Determinism & Policy:
//   - Facades inherit the determinism and sentinel-error discipline of the
//     functions they delegate to.
//
// AI-Hints:
//   - Prefer the canonical names in library code; facades exist for
//     readability at application call sites.

package matrix

import "github.com/katalvlaran/lvlmat/numcap"

// Zeros returns a new zero-valued rows×cols matrix.
// It is a thin alias of New with an intention-revealing name.
// Complexity: O(r·c).
func Zeros[T any](rows, cols int, opts ...Option[T]) (*Matrix[T], error) {
	return New(rows, cols, opts...)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func ZerosLike[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New[T](m.rows, m.cols)
}

// FilledLike returns a new matrix with the same shape as m, every live slot
// copied from fill.
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func FilledLike[T any](m *Matrix[T], fill T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("FilledLike", err)
	}

	return NewFilled(m.rows, m.cols, fill)
}

// Sum is an alias for Add: elementwise a + b.
// Complexity: O(r·c).
func Sum[T numcap.Addable](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: elementwise a − b.
// Complexity: O(r·c).
func Diff[T numcap.Subtractable](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Hadamard is an alias for Mul: elementwise product a ⊙ b.
// Complexity: O(r·c).
func Hadamard[T numcap.Multiplicable](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// Quotient is an alias for Div: elementwise quotient a / b.
// Complexity: O(r·c).
func Quotient[T numcap.Divisible](a, b *Matrix[T]) (*Matrix[T], error) { return Div(a, b) }

// ScaleBy is an alias for MulScalar: every element times alpha.
// Complexity: O(r·c).
func ScaleBy[T numcap.Multiplicable](m *Matrix[T], alpha T) (*Matrix[T], error) {
	return MulScalar(m, alpha)
}
