// SPDX-License-Identifier: MIT

// Package matrix: cursor glue. The container never implements traversal
// itself — it only constructs cursor values bound to the live range.
package matrix

import "github.com/katalvlaran/lvlmat/cursor"

// Begin returns a forward cursor at the first live element (offset 0).
// Iterate with:
//
//	for c := m.Begin(); !c.Equal(m.End()); c = c.Next() { ... }
//
// Every cursor borrows the buffer without taking ownership; any operation
// that reallocates, resizes, clears or swaps the buffer invalidates all
// previously issued cursors. Calling Begin again yields a fresh cursor.
// Complexity: O(1).
func (m *Matrix[T]) Begin() cursor.Cursor[T] {
	return cursor.New(m.data, 0)
}

// End returns the forward past-the-end cursor (offset Size()). It must not
// be dereferenced.
// Complexity: O(1).
func (m *Matrix[T]) End() cursor.Cursor[T] {
	return cursor.New(m.data, len(m.data))
}

// RBegin returns a reverse cursor at the last live element: the reverse
// adaptation of End.
// Complexity: O(1).
func (m *Matrix[T]) RBegin() cursor.Reverse[T] {
	return cursor.NewReverse(m.End())
}

// REnd returns the reverse past-the-end cursor: the reverse adaptation of
// Begin. It must not be dereferenced.
// Complexity: O(1).
func (m *Matrix[T]) REnd() cursor.Reverse[T] {
	return cursor.NewReverse(m.Begin())
}
