// Package matrix provides Matrix[T] — a value-semantic, contiguously stored,
// row-major two-dimensional container generic over its element type.
//
// The matrix package provides:
//
//   - One flat backing buffer per matrix with an explicit size/capacity
//     model: Reserve grows capacity, Clear keeps it, Swap and Move transfer
//     buffer ownership in O(1).
//   - Checked point access (At/Set/Ptr) returning sentinel errors, plus raw
//     linear access (Data) for performance-critical loops.
//   - Elementwise arithmetic (Add, Sub, Mul, Div — Hadamard style, never
//     algebraic matrix products) and scalar broadcast forms, gated at
//     compile time by the numcap capability constraints.
//   - Cross-type arithmetic (AddWith, SubWith, MulWith, DivWith) promoting
//     both operands to a caller-chosen result type.
//   - Whole-matrix equality and lexicographic ordering, and scalar
//     comparison masks producing Matrix[bool].
//   - Forward and reverse cursors over the live range via the cursor
//     package.
//
// Matrices are single-goroutine values: no internal locking, no background
// work. Concurrent mutation of one instance requires external
// synchronization. Everything either completes or fails synchronously with
// one of the package sentinel errors.
//
// See the examples in this package for usage patterns.
package matrix
