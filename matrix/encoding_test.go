// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the YAML nested-sequence
// codec.
package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestYAMLRoundTrip ensures a matrix encodes as nested rows and decodes
// back to an equal matrix.
func TestYAMLRoundTrip(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}) // 2×3 matrix

	blob, err := yaml.Marshal(m) // encode as nested sequences
	require.NoError(t, err)

	var back matrix.Matrix[int]                     // decode target
	require.NoError(t, yaml.Unmarshal(blob, &back)) // decode succeeds

	require.True(t, matrix.Equal(m, &back))             // same shape and content
	require.Empty(t, cmp.Diff(m.Flatten(), back.Flatten())) // flat snapshots agree
}

// TestYAMLDecodeLiteral decodes a hand-written document through the
// FromRows validation path.
func TestYAMLDecodeLiteral(t *testing.T) {
	doc := "- [1.5, 2.5]\n- [3.5, 4.5]\n" // 2×2 float document

	var m matrix.Matrix[float64]
	require.NoError(t, yaml.Unmarshal([]byte(doc), &m)) // decode succeeds

	require.Equal(t, 2, m.Rows()) // outer length = rows
	require.Equal(t, 2, m.Cols()) // inner length = cols
	require.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, m.Flatten())
}

// TestYAMLDecodeRaggedRejected ensures a ragged document fails with
// ErrDimensionMismatch, identical to direct construction.
func TestYAMLDecodeRaggedRejected(t *testing.T) {
	doc := "- [1, 2]\n- [3]\n" // second row too short

	var m matrix.Matrix[int]
	err := yaml.Unmarshal([]byte(doc), &m)               // decode attempt
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // sentinel survives yaml
}

// TestYAMLEmptyMatrix ensures the empty matrix round-trips as an empty
// sequence.
func TestYAMLEmptyMatrix(t *testing.T) {
	m := mustNew[int](t, 0, 0) // empty matrix

	blob, err := yaml.Marshal(m) // encode
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(blob)) // empty sequence document

	var back matrix.Matrix[int]
	require.NoError(t, yaml.Unmarshal(blob, &back)) // decode succeeds
	require.True(t, back.IsEmpty())                 // still empty
}

// TestYAMLDegenerateShapeRejected ensures a degenerate shape with live
// elements cannot be encoded.
func TestYAMLDegenerateShapeRejected(t *testing.T) {
	m := mustNew[int](t, 0, 5) // five live values, no grid shape

	_, err := yaml.Marshal(m)                   // encode attempt
	require.Error(t, err)                       // yaml wraps the failure
	require.Contains(t, err.Error(), "invalid shape") // rooted in ErrBadShape
}
