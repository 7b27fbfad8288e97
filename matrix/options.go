// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for container construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The allocation policy is injectable so tests can simulate ErrAllocation
//     deterministically; production code normally keeps the default make.
//   - Only constructors and Reserve route buffers through the allocator.
//     Result matrices of arithmetic/comparison operations always use the
//     default policy: they are independent fresh values, not derived storage.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinCapacity is the minimum slot count requested at construction
	// beyond what the shape itself requires. Zero means "allocate exactly
	// the element count".
	DefaultMinCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAllocatorNil = "matrix: WithAllocator: allocator must be non-nil"
	panicCapacityNeg  = "matrix: WithMinCapacity: capacity must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal construction options. Safe to apply repeatedly
// (idempotent). Constructors MUST panic only on nonsensical values
// (programmer error).
type Option[T any] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option[T]` and internally resolve them via gatherOptions.
type Options[T any] struct {
	alloc  Allocator[T] // buffer allocation policy
	minCap int          // minimum capacity in slots; DefaultMinCapacity
}

// ---------- Constructors (WithX) ----------

// WithAllocator injects the buffer allocation policy used by constructors
// and Reserve.
// Implementation:
//   - Stage 1: validate the allocator is non-nil.
//   - Stage 2: return a setter that writes it into Options.
//
// Errors:
//   - Panics with a stable message when alloc is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The allocator contract is documented on the Allocator type: length-n,
//     zero-valued slice or a non-nil error.
//
// AI-Hints:
//   - Inject a failing allocator in tests to pin ErrAllocation paths.
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	if alloc == nil {
		panic(panicAllocatorNil)
	}

	// Assign validated allocator
	return func(o *Options[T]) { o.alloc = alloc }
}

// WithMinCapacity reserves at least n slots of capacity at construction,
// independent of the requested shape.
// Implementation:
//   - Stage 1: validate n >= 0.
//   - Stage 2: return a setter that records the floor.
//
// Behavior highlights:
//   - Effective capacity is max(element count, n); the live range is never
//     extended by this option.
//
// Errors:
//   - Panics with a stable message when n is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use when a matrix will be regrown soon after construction to avoid a
//     second allocation.
func WithMinCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic(panicCapacityNeg)
	}

	return func(o *Options[T]) { o.minCap = n }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants. This is the canonical internal entry for all
// constructors.
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: backfill the default allocator if none was injected.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions[T any](user ...Option[T]) Options[T] {
	o := Options[T]{
		alloc:  nil, // resolved below; nil means "use default make"
		minCap: DefaultMinCapacity,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	// Backfill the default policy exactly once, in one place.
	if o.alloc == nil {
		o.alloc = defaultAllocator[T]
	}

	return o
}
