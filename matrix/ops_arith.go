// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the elementwise (Hadamard-style) arithmetic surface: matrix ⊕
//     matrix, cross-type matrix ⊕ matrix, and matrix ⊕ scalar broadcast.
//   - Gate every instantiation at compile time through numcap constraints:
//     an unsupported element type makes the call site fail to compile, never
//     a runtime error.
//
// Design:
//   - Operations are package-level generic functions, not methods: Go
//     methods cannot introduce extra constraints, and the constraint IS the
//     capability gate.
//   - Each operation validates fail-fast, allocates exactly one fresh result
//     and runs a single deterministic flat loop in source (row-major) order.
//     Operands are never mutated and results never alias operand buffers.
//   - Cross-type (*With) kernels convert both operands to the caller-chosen
//     result type before applying the operator; all three types must satisfy
//     numcap.Number so the conversions are legal for every instantiation.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 loop order over the row-major buffers.
//   - No hidden allocations beyond the output matrix; O(r·c) time and space.
//
// AI-Hints:
//   - Integer Div/DivWith/DivScalar truncate toward zero (Go's native `/`);
//     this is a numeric-semantics contract, not a platform accident.
//   - A zero element inside Div's right operand panics exactly like the bare
//     operator would; only the SCALAR divisor is checked (ErrDivideByZero).

package matrix

import "github.com/katalvlaran/lvlmat/numcap"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opAddWith   = "AddWith"
	opSubWith   = "SubWith"
	opMulWith   = "MulWith"
	opDivWith   = "DivWith"
	opMulScalar = "MulScalar"
	opDivScalar = "DivScalar"
)

// newResult allocates a fresh zero-valued result container for a validated
// shape. Results always use the default allocation policy: they are
// independent new values, not derived storage.
// Complexity: O(n).
func newResult[T any](rows, cols int) *Matrix[T] {
	return &Matrix[T]{
		rows:  rows,
		cols:  cols,
		data:  make([]T, elemCount(rows, cols)),
		alloc: defaultAllocator[T],
	}
}

// validatePair runs the shared nil/shape guard sequence for binary kernels.
// Complexity: O(1).
func validatePair[L, R any](tag string, a *Matrix[L], b *Matrix[R]) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Add returns a new matrix containing the elementwise sum a + b.
// Available only for element types satisfying numcap.Addable (numbers,
// complex, strings — strings concatenate).
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate the result.
// Stage 3 (Execute): one flat pass in row-major order.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Add[T numcap.Addable](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validatePair(opAdd, a, b); err != nil {
		return nil, err
	}

	out := newResult[T](a.rows, a.cols)
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out, nil
}

// Sub returns a new matrix containing the elementwise difference a - b.
// Available only for element types satisfying numcap.Subtractable.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Sub[T numcap.Subtractable](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validatePair(opSub, a, b); err != nil {
		return nil, err
	}

	out := newResult[T](a.rows, a.cols)
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}

	return out, nil
}

// Mul returns a new matrix containing the elementwise (Hadamard) product
// a ⊙ b. This is NOT the algebraic matrix product — the container performs
// no linear algebra. Available only for numcap.Multiplicable element types.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Mul[T numcap.Multiplicable](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validatePair(opMul, a, b); err != nil {
		return nil, err
	}

	out := newResult[T](a.rows, a.cols)
	for i := range a.data {
		out.data[i] = a.data[i] * b.data[i]
	}

	return out, nil
}

// Div returns a new matrix containing the elementwise quotient a / b.
// Available only for numcap.Divisible element types. Integer instantiations
// truncate toward zero. A zero element in b panics exactly as the bare
// operator would — only scalar division checks its divisor.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Div[T numcap.Divisible](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validatePair(opDiv, a, b); err != nil {
		return nil, err
	}

	out := newResult[T](a.rows, a.cols)
	for i := range a.data {
		out.data[i] = a.data[i] / b.data[i]
	}

	return out, nil
}

// AddWith returns the elementwise sum of matrices with differing element
// types: each pair is converted to the declared result type Out before the
// operator is applied. Call sites name Out explicitly:
//
//	sum, err := matrix.AddWith[float64](ints, floats)
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func AddWith[Out, L, R numcap.Number](a *Matrix[L], b *Matrix[R]) (*Matrix[Out], error) {
	if err := validatePair(opAddWith, a, b); err != nil {
		return nil, err
	}

	out := newResult[Out](a.rows, a.cols)
	for i := range a.data {
		out.data[i] = Out(a.data[i]) + Out(b.data[i])
	}

	return out, nil
}

// SubWith is the cross-type form of Sub; see AddWith for the conversion
// contract.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func SubWith[Out, L, R numcap.Number](a *Matrix[L], b *Matrix[R]) (*Matrix[Out], error) {
	if err := validatePair(opSubWith, a, b); err != nil {
		return nil, err
	}

	out := newResult[Out](a.rows, a.cols)
	for i := range a.data {
		out.data[i] = Out(a.data[i]) - Out(b.data[i])
	}

	return out, nil
}

// MulWith is the cross-type form of Mul (Hadamard); see AddWith for the
// conversion contract.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func MulWith[Out, L, R numcap.Number](a *Matrix[L], b *Matrix[R]) (*Matrix[Out], error) {
	if err := validatePair(opMulWith, a, b); err != nil {
		return nil, err
	}

	out := newResult[Out](a.rows, a.cols)
	for i := range a.data {
		out.data[i] = Out(a.data[i]) * Out(b.data[i])
	}

	return out, nil
}

// DivWith is the cross-type form of Div; operands convert to Out before
// dividing, so the truncation semantics are those of Out.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func DivWith[Out, L, R numcap.Number](a *Matrix[L], b *Matrix[R]) (*Matrix[Out], error) {
	if err := validatePair(opDivWith, a, b); err != nil {
		return nil, err
	}

	out := newResult[Out](a.rows, a.cols)
	for i := range a.data {
		out.data[i] = Out(a.data[i]) / Out(b.data[i])
	}

	return out, nil
}

// MulScalar returns a new matrix with every element multiplied by scalar.
// Stage 1 (Validate): nil-check, then reject empty operands.
// Stage 2 (Execute): one flat broadcast pass.
// Errors: ErrNilMatrix, ErrEmptyOperand.
// Complexity: O(r·c) time and memory.
func MulScalar[T numcap.Multiplicable](m *Matrix[T], scalar T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}

	out := newResult[T](m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] * scalar
	}

	return out, nil
}

// DivScalar returns a new matrix with every element divided by scalar.
// Stage 1 (Validate): nil-check, reject empty operands, reject a divisor
// equal to the zero value of T.
// Stage 2 (Execute): one flat broadcast pass. Integer instantiations
// truncate toward zero.
// Errors: ErrNilMatrix, ErrEmptyOperand, ErrDivideByZero.
// Complexity: O(r·c) time and memory.
func DivScalar[T numcap.Divisible](m *Matrix[T], scalar T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	var zero T
	if scalar == zero {
		return nil, matrixErrorf(opDivScalar, ErrDivideByZero)
	}

	out := newResult[T](m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] / scalar
	}

	return out, nil
}

// MulScalarWith is the cross-type scalar broadcast: elements and the scalar
// convert to Out before multiplying.
// Errors: ErrNilMatrix, ErrEmptyOperand.
// Complexity: O(r·c) time and memory.
func MulScalarWith[Out, L, S numcap.Number](m *Matrix[L], scalar S) (*Matrix[Out], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}

	s := Out(scalar) // convert once, outside the loop
	out := newResult[Out](m.rows, m.cols)
	for i := range m.data {
		out.data[i] = Out(m.data[i]) * s
	}

	return out, nil
}

// DivScalarWith is the cross-type scalar division: elements and the scalar
// convert to Out before dividing. The zero check runs on the CONVERTED
// divisor, since that is the value actually divided by.
// Errors: ErrNilMatrix, ErrEmptyOperand, ErrDivideByZero.
// Complexity: O(r·c) time and memory.
func DivScalarWith[Out, L, S numcap.Number](m *Matrix[L], scalar S) (*Matrix[Out], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	s := Out(scalar)
	var zero Out
	if s == zero {
		return nil, matrixErrorf(opDivScalar, ErrDivideByZero)
	}

	out := newResult[Out](m.rows, m.cols)
	for i := range m.data {
		out.data[i] = Out(m.data[i]) / s
	}

	return out, nil
}
