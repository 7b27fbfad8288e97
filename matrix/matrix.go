// SPDX-License-Identifier: MIT

// Package matrix: construction and lifecycle of the generic container.
// Dense row-major storage in a single flat buffer; explicit size/capacity
// model; ownership transfer via Move/Swap; growth via Reserve.
package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opNewFilled = "NewFilled"
	opFromRows  = "FromRows"
	opCopyFrom  = "CopyFrom"
	opMoveFrom  = "MoveFrom"
	opReserve   = "Reserve"
)

// allocationErrorf surfaces an allocator failure as ErrAllocation while
// keeping the policy's own message as plain context.
func allocationErrorf(n int, cause error) error {
	return fmt.Errorf("allocate %d slots: %w: %v", n, ErrAllocation, cause)
}

// New returns a rows×cols matrix with every live slot holding the zero
// value of T.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Prepare): resolve options; compute element count and capacity.
// Stage 3 (Execute): allocate the backing buffer through the policy.
// Stage 4 (Finalize): return the container or a wrapped sentinel.
//
// Behavior highlights:
//   - The element count follows the degenerate rule: rows*cols when both
//     dimensions are nonzero, otherwise max(rows, cols). New(0, 5) holds
//     five zero values.
//   - Capacity equals the element count unless WithMinCapacity raises it.
//
// Errors: ErrBadShape, ErrAllocation.
// Complexity: O(n) time and memory for n live slots.
func New[T any](rows, cols int, opts ...Option[T]) (*Matrix[T], error) {
	// Stage 1: validate the requested shape before touching the allocator.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	// Stage 2: resolve options and sizes.
	o := gatherOptions(opts...)
	n := elemCount(rows, cols)
	capacity := n
	if o.minCap > capacity {
		capacity = o.minCap
	}

	// Stage 3: allocate through the policy; surface failures as ErrAllocation.
	buf, err := o.alloc(capacity)
	if err != nil {
		return nil, matrixErrorf(opNew, allocationErrorf(capacity, err))
	}

	// Stage 4: live range is the first n slots; the rest is headroom.
	return &Matrix[T]{rows: rows, cols: cols, data: buf[:n], alloc: o.alloc}, nil
}

// NewFilled returns a rows×cols matrix with every live slot copied from fill.
// Same validation, sizing and allocation as New; one extra O(n) fill pass.
//
// Errors: ErrBadShape, ErrAllocation.
// Complexity: O(n) time and memory.
func NewFilled[T any](rows, cols int, fill T, opts ...Option[T]) (*Matrix[T], error) {
	m, err := New(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opNewFilled, err)
	}

	// Copy the fill value into every live slot.
	for i := range m.data {
		m.data[i] = fill
	}

	return m, nil
}

// FromRows builds a matrix from a nested sequence of rows: the outer length
// becomes the row count, the first inner length the column count.
// Stage 1 (Validate): every inner row must match the column count; the
// operation fails before a single element is written.
// Stage 2 (Prepare): allocate via New (degenerate rule applies).
// Stage 3 (Execute): copy rows front-to-back; the destination offset
// advances by the actual column count per row.
//
// The input slices are not retained; the matrix owns an independent buffer.
//
// Errors: ErrDimensionMismatch (ragged input), ErrAllocation.
// Complexity: O(r·c) time and memory.
func FromRows[T any](rows [][]T, opts ...Option[T]) (*Matrix[T], error) {
	// Stage 1: derive the shape and reject ragged input up front.
	r := len(rows)
	var c int
	if r > 0 {
		c = len(rows[0])
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, ErrDimensionMismatch)
		}
	}

	// Stage 2: allocate the container.
	m, err := New(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	// Stage 3: pack rows in row-major order, advancing by the column count.
	offset := 0
	for i := 0; i < r; i++ {
		copy(m.data[offset:offset+c], rows[i])
		offset += c
	}

	return m, nil
}

// Clone returns a deep copy of m. The copy owns a fresh buffer sized exactly
// to the live range: growth headroom is intentionally NOT carried over, so
// the clone's capacity equals its size.
// Complexity: O(n) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}

	out := &Matrix[T]{rows: m.rows, cols: m.cols, alloc: m.alloc}
	if len(m.data) > 0 {
		out.data = make([]T, len(m.data)) // capacity collapses to size
		copy(out.data, m.data)
	}

	return out
}

// Move transfers buffer ownership out of m into a returned instance and
// resets m to the default state (zero shape, zero size, zero capacity, nil
// buffer). The returned matrix holds exactly the data m held; m is never
// left aliasing or double-owning the buffer. Move never fails.
// Complexity: O(1).
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: m.data, alloc: m.alloc}

	// Reset the source to the default state.
	m.rows, m.cols, m.data = 0, 0, nil

	return out
}

// CopyFrom replaces m's contents with a deep copy of other (the assignment
// form of Clone). Self-assignment is detected by identity and is a no-op.
// The new buffer is sized exactly to other's live range.
//
// Errors: ErrNilMatrix, ErrAllocation.
// Complexity: O(n) time and memory.
func (m *Matrix[T]) CopyFrom(other *Matrix[T]) error {
	// Self-assignment must not destroy the buffer mid-copy.
	if m == other {
		return nil
	}
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}

	// Allocate the replacement buffer through m's policy.
	m.ensureAllocator()
	buf, err := m.alloc(len(other.data))
	if err != nil {
		return matrixErrorf(opCopyFrom, allocationErrorf(len(other.data), err))
	}
	copy(buf, other.data)

	// Commit only after the copy fully succeeded.
	m.rows, m.cols, m.data = other.rows, other.cols, buf[:len(other.data)]

	return nil
}

// MoveFrom transfers other's buffer into m and resets other to the default
// state (the assignment form of Move). Self-assignment is a no-op.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func (m *Matrix[T]) MoveFrom(other *Matrix[T]) error {
	if m == other {
		return nil
	}
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opMoveFrom, err)
	}

	// Take ownership wholesale, then reset the source.
	m.rows, m.cols, m.data = other.rows, other.cols, other.data
	if other.alloc != nil {
		m.alloc = other.alloc
	}
	other.rows, other.cols, other.data = 0, 0, nil

	return nil
}

// Reserve re-targets the matrix at a new shape, growing capacity when the
// new element count exceeds the current one.
//
// Behavior highlights:
//   - The new capacity follows the degenerate rule on (newRows, newCols).
//   - Fits current capacity ⇒ no reallocation: only the logical shape (and
//     live count) change, reinterpreting the existing flat storage. The
//     positional (row, column) meaning of elements is NOT preserved across
//     a pure shape change.
//   - Exceeds current capacity ⇒ a fresh buffer is allocated and every
//     previously live value is relocated front-packed in its prior
//     row-major order; slots past them hold zero values. An element's
//     (row, column) address is NOT preserved when growing — only the set
//     and flat order of prior values is. This is a documented contract of
//     the container, not an accident.
//   - Either way, all previously issued cursors are invalidated.
//
// Errors: ErrBadShape, ErrAllocation.
// Complexity: O(n) on growth, O(|Δsize|) otherwise.
func (m *Matrix[T]) Reserve(newRows, newCols int) error {
	if err := ValidateShape(newRows, newCols); err != nil {
		return matrixErrorf(opReserve, err)
	}

	newCount := elemCount(newRows, newCols)
	var zero T

	// In-place path: the requested element count fits the current buffer.
	if newCount <= cap(m.data) {
		live := len(m.data)
		if newCount < live {
			// Shrink: zero the abandoned tail so no stale references linger.
			for i := newCount; i < live; i++ {
				m.data[i] = zero
			}
			m.data = m.data[:newCount]
		} else if newCount > live {
			// Extend into headroom; headroom slots always hold zero values,
			// and we keep that invariant true for the newly exposed range.
			m.data = m.data[:newCount]
			for i := live; i < newCount; i++ {
				m.data[i] = zero
			}
		}
		m.rows, m.cols = newRows, newCols

		return nil
	}

	// Growth path: allocate, front-pack prior values, swap buffers.
	m.ensureAllocator()
	buf, err := m.alloc(newCount)
	if err != nil {
		return matrixErrorf(opReserve, allocationErrorf(newCount, err))
	}
	copy(buf, m.data) // prior row-major order, packed at the front

	m.data = buf[:newCount]
	m.rows, m.cols = newRows, newCols

	return nil
}

// Clear zeroes every live slot (releasing any contained references to the
// collector), truncates the live range to zero and resets the shape.
// Capacity and the underlying buffer are left untouched.
// Complexity: O(n).
func (m *Matrix[T]) Clear() {
	var zero T
	for i := range m.data {
		m.data[i] = zero
	}

	m.data = m.data[:0]
	m.rows, m.cols = 0, 0
}

// Swap exchanges buffer ownership and every dimension field between m and
// other in constant time. No allocation, no element copies.
// Complexity: O(1).
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	m.rows, other.rows = other.rows, m.rows
	m.cols, other.cols = other.cols, m.cols
	m.data, other.data = other.data, m.data
	m.alloc, other.alloc = other.alloc, m.alloc
}

// ensureAllocator backfills the default policy so the zero Matrix value is
// usable without construction.
func (m *Matrix[T]) ensureAllocator() {
	if m.alloc == nil {
		m.alloc = defaultAllocator[T]
	}
}
