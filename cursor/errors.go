// SPDX-License-Identifier: MIT
// Package cursor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cursor
// package. Constructors MUST return these sentinels and tests MUST check them
// via errors.Is. Once a cursor exists, movement never errors: it reports
// exhaustion through the Valid/Next bool discipline instead.

package cursor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cursor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential (e.g. naming the absent primitive), wrap
// with fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still
// use errors.Is to match.

var (
	// ErrMissingPrimitive is returned when a claimed capability is not backed
	// by the primitive method set it requires (e.g. RandomAccess without Jump).
	// New MUST return this before any cursor instance exists; the wrapped
	// message names the first absent primitive.
	ErrMissingPrimitive = errors.New("cursor: capability not backed by primitive")

	// ErrUnknownCapability indicates a Capability value outside the declared
	// enum range (neither SinglePass, Forward, Bidirectional, RandomAccess
	// nor Contiguous).
	ErrUnknownCapability = errors.New("cursor: unknown capability")

	// ErrBadRange indicates that the [first, last) bounds handed to New are
	// inverted. Detectable only on measuring cores; non-measuring bounds are
	// taken on trust.
	ErrBadRange = errors.New("cursor: invalid bounds")

	// ErrNoBackward is returned by Advance when a negative step is requested
	// on a position type that defines neither Prev nor Jump.
	ErrNoBackward = errors.New("cursor: cannot move backward")
)
