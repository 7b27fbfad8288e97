// SPDX-License-Identifier: MIT

// Package numcap defines the numeric capability constraints used to gate
// generic arithmetic instantiations at compile time.
//
// Purpose:
//   - Provide a single, canonical source of truth for "does type T support
//     operator X" questions, expressed as Go type-set interfaces.
//   - Keep operation signatures in matrix/ short and intention-revealing:
//     Add requires Addable, Div requires Divisible, ordering requires Ordered.
//
// Design:
//   - Each capability is a pure type set; there are no methods and no runtime
//     representation. An unsupported element type is rejected by the compiler
//     at the call site, never by a runtime error.
//   - Cross-type capability ("T op with U") has no direct interface form in
//     Go. It is expressed by constraining every operand AND the declared
//     result type to Number on the *With functions in matrix/; the shared
//     conversion target is what makes the mixed instantiation legal.
//
// Determinism & Performance:
//   - Constraints are compile-time only; zero runtime cost by construction.
//
// AI-Hints:
//   - Use Number when a kernel converts between element types (conversions
//     between real numeric types are always valid; complex types are not
//     convertible from real ones and are deliberately excluded).
//   - Use Addable (not Number) for concatenation-style kernels: strings
//     support + in Go and the container does not forbid them.
package numcap

// Signed is the set of built-in signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of built-in unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of all built-in integer types.
// Division over Integer truncates toward zero (Go's native `/` semantics).
type Integer interface {
	Signed | Unsigned
}

// Float is the set of built-in floating-point types.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of built-in complex types.
type Complex interface {
	~complex64 | ~complex128
}

// Number is the set of real numeric types: every pair of Number types is
// mutually convertible, which is exactly what the cross-type (*With)
// kernels rely on. Complex is excluded on purpose: real→complex is not a
// permitted conversion for non-constant values.
type Number interface {
	Integer | Float
}

// Ordered is the set of types supporting <, <=, >, >= with a total order
// per the language spec. Used by lexicographic comparison and by the
// ordering predicate masks.
type Ordered interface {
	Integer | Float | ~string
}

// Addable is the capability gate for operator +.
// Strings are included: + concatenates, and elementwise concatenation is a
// legitimate use of the container.
type Addable interface {
	Number | Complex | ~string
}

// Subtractable is the capability gate for operator -.
type Subtractable interface {
	Number | Complex
}

// Multiplicable is the capability gate for operator *.
type Multiplicable interface {
	Number | Complex
}

// Divisible is the capability gate for operator /.
// Integer instantiations inherit truncating division; a zero divisor in an
// elementwise kernel panics exactly as the bare operator would.
type Divisible interface {
	Number | Complex
}
