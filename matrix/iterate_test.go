// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the cursor glue: forward and
// reverse traversal over the live range.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestForwardTraversal walks Begin→End and expects the row-major sequence.
func TestForwardTraversal(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}}) // 2×2 matrix

	var got []int
	for c := m.Begin(); !c.Equal(m.End()); c = c.Next() { // canonical loop
		got = append(got, c.Value()) // collect in visit order
	}

	require.Equal(t, []int{1, 2, 3, 4}, got)            // row-major order
	require.Equal(t, 4, m.Begin().Distance(m.End()))    // distance = size
}

// TestReverseTraversal walks RBegin→REnd and expects the reversed sequence.
func TestReverseTraversal(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}}) // 2×2 matrix

	var got []int
	for r := m.RBegin(); !r.Equal(m.REnd()); r = r.Next() { // reverse loop
		got = append(got, r.Value()) // collect back-to-front
	}

	require.Equal(t, []int{4, 3, 2, 1}, got)          // reversed row-major
	require.Equal(t, 4, m.RBegin().Distance(m.REnd())) // distance = size
}

// TestCursorWriteThrough ensures assignment through a cursor reference is
// visible in the matrix.
func TestCursorWriteThrough(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}}) // 1×2 matrix

	*m.Begin().Ref() = 10 // write through the forward cursor
	*m.RBegin().Ref() = 20 // write through the reverse cursor (last element)

	require.Equal(t, []int{10, 20}, m.Flatten()) // both writes landed
}

// TestFreshCursorsRestart ensures calling Begin again yields a cursor at
// the first element regardless of prior traversals.
func TestFreshCursorsRestart(t *testing.T) {
	m := mustFromRows(t, [][]int{{5, 6}}) // 1×2 matrix

	c := m.Begin().Next().Next()   // exhaust the range
	require.True(t, c.Equal(m.End())) // at the end cursor

	require.Equal(t, 5, m.Begin().Value()) // a fresh cursor restarts
}

// TestEmptyMatrixCursors ensures an empty matrix's begin and end coincide.
func TestEmptyMatrixCursors(t *testing.T) {
	m := mustNew[int](t, 0, 0) // no live elements

	require.True(t, m.Begin().Equal(m.End()))   // empty forward range
	require.True(t, m.RBegin().Equal(m.REnd())) // empty reverse range
	require.False(t, m.Begin().Valid())         // nothing to dereference
}
