// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Whole-matrix comparison: equality and lexicographic ordering over the
//     flat row-major element sequences.
//   - Scalar comparison masks: elementwise predicate maps producing a fresh
//     Matrix[bool] of the operand's shape.
//
// Design:
//   - Equality requires only `comparable`; ordering requires numcap.Ordered.
//     The constraint is the compile-time capability gate, as in ops_arith.go.
//   - Ordering treats each matrix as the flat ordered sequence of its live
//     elements; shapes do not participate beyond determining that sequence.
//   - Derived operators are defined, not re-implemented:
//     Greater(a,b) = Less(b,a); LessEqual = !Less(b,a); GreaterEqual = !Less(a,b);
//     NotEqual = !Equal.
//
// Determinism & Performance:
//   - Single forward scans with early exit on the first deciding element.
//   - Masks allocate exactly one output; O(r·c) time, O(1) extra space for
//     the whole-matrix predicates.

package matrix

import "github.com/katalvlaran/lvlmat/numcap"

// Operation name constants for unified error wrapping.
const (
	opEqScalar = "EqScalar"
	opNeScalar = "NeScalar"
	opLtScalar = "LtScalar"
	opGtScalar = "GtScalar"
	opLeScalar = "LeScalar"
	opGeScalar = "GeScalar"
)

// Equal reports whether a and b have identical dimensions and elementwise
// equal content. The scan short-circuits on the first mismatch. Nil operands
// compare equal only to other nil operands.
// Complexity: O(r·c) worst case, O(1) on shape mismatch.
func Equal[T comparable](a, b *Matrix[T]) bool {
	// Nil handling keeps the predicate total: no error path, no panic.
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Dimensions first: cheap rejection before any element is read.
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false // short-circuit on first mismatch
		}
	}

	return true
}

// NotEqual is the negation of Equal.
// Complexity: O(r·c) worst case.
func NotEqual[T comparable](a, b *Matrix[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a precedes b in lexicographic order over their flat
// row-major element sequences: the first unequal pair decides; if one
// sequence is a strict prefix of the other, the shorter one is less.
// Nil operands rank as empty sequences.
// Complexity: O(min(n,m)).
func Less[T numcap.Ordered](a, b *Matrix[T]) bool {
	var as, bs []T
	if a != nil {
		as = a.data
	}
	if b != nil {
		bs = b.data
	}

	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		if as[i] < bs[i] {
			return true
		}
		if bs[i] < as[i] {
			return false
		}
	}

	// All shared positions equal: the shorter sequence precedes.
	return len(as) < len(bs)
}

// Greater reports whether a follows b: Greater(a,b) = Less(b,a).
// Complexity: O(min(n,m)).
func Greater[T numcap.Ordered](a, b *Matrix[T]) bool {
	return Less(b, a)
}

// LessEqual is the negation of the strict opposite: !Less(b,a).
// Complexity: O(min(n,m)).
func LessEqual[T numcap.Ordered](a, b *Matrix[T]) bool {
	return !Less(b, a)
}

// GreaterEqual is the negation of the strict opposite: !Less(a,b).
// Complexity: O(min(n,m)).
func GreaterEqual[T numcap.Ordered](a, b *Matrix[T]) bool {
	return !Less(a, b)
}

// maskOf runs one elementwise predicate pass into a fresh boolean matrix of
// m's shape. Shared by every scalar comparison below.
// Complexity: O(r·c).
func maskOf[T any](tag string, m *Matrix[T], pred func(T) bool) (*Matrix[bool], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := newResult[bool](m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = pred(v)
	}

	return out, nil
}

// EqScalar returns a boolean matrix of m's dimensions where each cell
// reports element == scalar. This is an elementwise predicate map, not a
// whole-matrix comparison.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func EqScalar[T comparable](m *Matrix[T], scalar T) (*Matrix[bool], error) {
	return maskOf(opEqScalar, m, func(v T) bool { return v == scalar })
}

// NeScalar returns the elementwise mask of element != scalar.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func NeScalar[T comparable](m *Matrix[T], scalar T) (*Matrix[bool], error) {
	return maskOf(opNeScalar, m, func(v T) bool { return v != scalar })
}

// LtScalar returns the elementwise mask of element < scalar.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func LtScalar[T numcap.Ordered](m *Matrix[T], scalar T) (*Matrix[bool], error) {
	return maskOf(opLtScalar, m, func(v T) bool { return v < scalar })
}

// GtScalar returns the elementwise mask of element > scalar.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func GtScalar[T numcap.Ordered](m *Matrix[T], scalar T) (*Matrix[bool], error) {
	return maskOf(opGtScalar, m, func(v T) bool { return v > scalar })
}

// LeScalar returns the elementwise mask of element <= scalar.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func LeScalar[T numcap.Ordered](m *Matrix[T], scalar T) (*Matrix[bool], error) {
	return maskOf(opLeScalar, m, func(v T) bool { return v <= scalar })
}

// GeScalar returns the elementwise mask of element >= scalar.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func GeScalar[T numcap.Ordered](m *Matrix[T], scalar T) (*Matrix[bool], error) {
	return maskOf(opGeScalar, m, func(v T) bool { return v >= scalar })
}
