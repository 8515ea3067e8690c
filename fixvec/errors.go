// SPDX-License-Identifier: MIT
// Package fixvec: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the fixvec
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions; a
// failed operation mutates nothing.

package fixvec

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "fixvec: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential (an index, a count, a capacity), wrap
// with fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still
// match via errors.Is.

var (
	// ErrCapacityExceeded is returned when an operation would grow the live
	// range past the fixed capacity. The capacity never grows; there is no
	// reallocation path to fall back to.
	ErrCapacityExceeded = errors.New("fixvec: capacity exceeded")

	// ErrBadCapacity is returned by constructors for a negative capacity.
	ErrBadCapacity = errors.New("fixvec: negative capacity")

	// ErrOutOfRange indicates an index or count outside the valid bounds.
	// Public indexers (At/Set/Ptr) MUST return this, not panic.
	ErrOutOfRange = errors.New("fixvec: index out of range")

	// ErrBadRange indicates an inverted or out-of-bounds [first, last) pair.
	ErrBadRange = errors.New("fixvec: invalid range")

	// ErrEmpty is returned by Front/Back/PopBack on a vector with no live
	// elements.
	ErrEmpty = errors.New("fixvec: vector is empty")

	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("fixvec: nil receiver")

	// ErrOptionViolation is returned by New when a construction option was
	// given invalid parameters (e.g. a negative count).
	ErrOptionViolation = errors.New("fixvec: invalid option supplied")
)
