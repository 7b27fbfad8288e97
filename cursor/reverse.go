// SPDX-License-Identifier: MIT
// Package cursor: reverse adaptation of the forward primitive.

package cursor

// Reverse walks a buffer back-to-front by wrapping a forward Cursor.
// It follows the classic base-cursor convention: a Reverse built from a
// forward end cursor dereferences the LAST element, and advancing a Reverse
// moves its base one position backward. This keeps the adaptation purely
// mechanical: Reverse adds no traversal logic of its own.
type Reverse[T any] struct {
	base Cursor[T] // forward cursor one position past the element we read
}

// NewReverse wraps a forward cursor into a reverse one.
// Complexity: O(1).
func NewReverse[T any](base Cursor[T]) Reverse[T] {
	return Reverse[T]{base: base}
}

// Base returns the underlying forward cursor.
// Complexity: O(1).
func (r Reverse[T]) Base() Cursor[T] {
	return r.base
}

// Value returns the element one position before the base cursor.
// Panics if that position is not dereferenceable.
// Complexity: O(1).
func (r Reverse[T]) Value() T {
	return r.base.Prev().Value()
}

// Ref returns a pointer to the element one position before the base cursor.
// Complexity: O(1).
func (r Reverse[T]) Ref() *T {
	return r.base.Prev().Ref()
}

// Next returns a reverse cursor advanced one step (backward in the buffer).
// Complexity: O(1).
func (r Reverse[T]) Next() Reverse[T] {
	r.base = r.base.Prev()

	return r
}

// Prev returns a reverse cursor moved one step toward the buffer's end.
// Complexity: O(1).
func (r Reverse[T]) Prev() Reverse[T] {
	r.base = r.base.Next()

	return r
}

// Advance returns a reverse cursor moved by delta reverse steps.
// Complexity: O(1).
func (r Reverse[T]) Advance(delta int) Reverse[T] {
	r.base = r.base.Advance(-delta)

	return r
}

// Distance reports how many reverse steps separate r from other.
// Complexity: O(1).
func (r Reverse[T]) Distance(other Reverse[T]) int {
	return r.base.pos - other.base.pos
}

// Equal reports whether two reverse cursors from the same buffer sit at the
// same position. Complexity: O(1).
func (r Reverse[T]) Equal(other Reverse[T]) bool {
	return r.base.Equal(other.base)
}

// Valid reports whether the reverse cursor may be dereferenced, i.e. its
// base offset is inside (0, len(buf)]. Complexity: O(1).
func (r Reverse[T]) Valid() bool {
	return r.base.pos > 0 && r.base.pos <= len(r.base.buf)
}
