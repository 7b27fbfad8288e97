// Package lvlmat is your in-memory building block for dense, row-major,
// generic 2-D containers — from raw storage control to elementwise math
// with compile-time type gating.
//
// 🚀 What is lvlmat?
//
//	A modern, value-semantic, generics-first library that brings together:
//		• Matrix[T]: a growable two-dimensional array over one flat buffer
//		• Explicit capacity control: Reserve, Clear, Swap, Move
//		• Checked point access + raw linear access for hot loops
//		• Elementwise arithmetic: Add, Sub, Mul (Hadamard), Div + scalar forms
//		• Cross-type arithmetic: AddWith, SubWith, MulWith, DivWith
//		• Comparisons: equality, lexicographic ordering, scalar predicate masks
//		• Cursors: forward & reverse traversal over the live range
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, in-code docs, strict validation
//   - Pure Go – no cgo, generics do the heavy lifting
//   - Extensible – pluggable allocation policy for deterministic failure tests
//
// Under the hood, everything is organized under three subpackages:
//
//	cursor/ — position-bearing cursors over flat buffers (forward + reverse)
//	matrix/ — the Matrix[T] container, arithmetic and comparison operations
//	numcap/ — numeric capability constraints gating generic instantiations
//
// Quick ASCII example:
//
//	    ┌ 1 2 3 ┐
//	    └ 4 5 6 ┘
//
//	is a 2×3 Matrix[int] stored as the flat buffer [1 2 3 4 5 6].
//
// Dive into the package docs and runnable examples for usage patterns, the
// capacity model, and the full operation surface.
//
//	go get github.com/katalvlaran/lvlmat/matrix
package lvlmat
