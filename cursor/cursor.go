// SPDX-License-Identifier: MIT

// Package cursor provides position-bearing cursors over flat buffers.
//
// Purpose:
//   - Turn a raw slice + offset into a bidirectional, random-access cursor
//     with dereference, distance arithmetic and equality.
//   - Provide a mechanical reverse adaptation built from the same forward
//     primitive, so containers never implement traversal themselves.
//
// Design:
//   - Cursor is a small value type (slice header + offset); copying is cheap
//     and movement methods return a new value rather than mutating in place.
//   - A cursor borrows the buffer without taking ownership. Any operation on
//     the owning container that reallocates, resizes, clears or swaps the
//     buffer invalidates every previously issued cursor.
//   - Equality and distance compare offsets only; comparing cursors taken
//     from different buffers is a programmer error.
//
// Determinism & Performance:
//   - All methods are O(1), allocation-free and pure.
//   - Dereferencing an out-of-range position panics (programmer error, same
//     policy as indexing a slice directly).
package cursor

// Cursor is a forward cursor over a flat buffer. The half-open convention
// matches slices: a begin cursor sits at offset 0, an end cursor at
// offset len(buf), and the end cursor must not be dereferenced.
type Cursor[T any] struct {
	buf []T // borrowed backing storage
	pos int // current offset into buf
}

// New returns a cursor over buf positioned at offset pos.
// Complexity: O(1).
func New[T any](buf []T, pos int) Cursor[T] {
	return Cursor[T]{buf: buf, pos: pos}
}

// Value returns the element under the cursor.
// Panics if the cursor is not dereferenceable (see Valid).
// Complexity: O(1).
func (c Cursor[T]) Value() T {
	return c.buf[c.pos]
}

// Ref returns a pointer to the element under the cursor, allowing in-place
// assignment through the cursor. Panics if the cursor is not dereferenceable.
// Complexity: O(1).
func (c Cursor[T]) Ref() *T {
	return &c.buf[c.pos]
}

// Next returns a cursor advanced one position forward.
// Complexity: O(1).
func (c Cursor[T]) Next() Cursor[T] {
	c.pos++

	return c
}

// Prev returns a cursor moved one position backward.
// Complexity: O(1).
func (c Cursor[T]) Prev() Cursor[T] {
	c.pos--

	return c
}

// Advance returns a cursor moved by delta positions (negative moves back).
// Complexity: O(1).
func (c Cursor[T]) Advance(delta int) Cursor[T] {
	c.pos += delta

	return c
}

// Pos reports the cursor's offset into the underlying buffer.
// Complexity: O(1).
func (c Cursor[T]) Pos() int {
	return c.pos
}

// Distance reports how many forward steps separate c from other
// (other.Pos() - c.Pos()). Both cursors must come from the same buffer.
// Complexity: O(1).
func (c Cursor[T]) Distance(other Cursor[T]) int {
	return other.pos - c.pos
}

// Equal reports whether two cursors from the same buffer sit at the same
// offset. Complexity: O(1).
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.pos == other.pos
}

// Valid reports whether the cursor may be dereferenced, i.e. its offset is
// inside [0, len(buf)). An end cursor is well-formed but not Valid.
// Complexity: O(1).
func (c Cursor[T]) Valid() bool {
	return c.pos >= 0 && c.pos < len(c.buf)
}
