// SPDX-License-Identifier: MIT
// Package cursor: primitive vocabulary and capability detection.
// A concrete position type ("core") supplies a handful of primitive methods;
// everything else — bounded iteration, seeking, reversal, comparison — is
// synthesized from them. This file declares the primitives, the composite
// constraints a core must meet per capability tier, and the structural probes
// (Detect, Validate) the checked constructor runs before any cursor exists.

package cursor

import "fmt"

// Position is the contract every core must satisfy: value semantics, one
// forward step, and equality against another position of the same sequence.
//
// Positions are immutable values. Next returns a new position and leaves the
// receiver untouched, so any position a caller holds on to stays meaningful
// (on multipass cores). Comparing positions taken from different sequences
// is undefined.
type Position[C any] interface {
	// Next returns the position one step forward. Stepping past the end of
	// the sequence is the caller's to avoid: bounded adaptors (Iter) guard
	// it, raw cores trust you.
	Next() C

	// Equal reports whether both positions denote the same place in the
	// same sequence.
	Equal(other C) bool
}

// Reader exposes the element a position denotes.
type Reader[T any] interface {
	// Value returns the current element. Undefined at one-past-the-end.
	Value() T
}

// Backward is the optional step-back primitive.
type Backward[C any] interface {
	// Prev returns the position one step backward.
	Prev() C
}

// Jumper is the optional arbitrary-offset primitive; n may be negative.
// Implementations MUST be O(1) — this method is what licenses a RandomAccess
// claim, and the synthesizer never simulates it with walks.
type Jumper[C any] interface {
	Jump(n int) C
}

// Measurer is the optional position-subtraction primitive.
// Implementations MUST be O(1); it licenses relational synthesis (Compare,
// Pos, Len) exactly because the answer is cheap.
type Measurer[C any] interface {
	// Distance returns how many forward steps lead from the receiver to
	// `to`; negative when `to` precedes the receiver.
	Distance(to C) int
}

// Addresser is the optional raw-address primitive, the mark of contiguous
// storage.
type Addresser[T any] interface {
	// Addr returns the address of the current element. The pointer aliases
	// the underlying storage, so writes through it are visible to the
	// sequence owner.
	Addr() *T
}

// Core is the self-referential constraint a cursor type must satisfy to be
// usable at all: C is its own successor type, so movement stays in the
// concrete domain with no boxing on the hot path.
//
//	type runeCur struct{ ... }
//	func (c runeCur) Next() runeCur      { ... }
//	func (c runeCur) Equal(o runeCur) bool { ... }
//	func (c runeCur) Value() rune        { ... }
//
// runeCur now satisfies Core[runeCur, rune] and can be handed to New,
// NewSinglePass or NewForward.
type Core[C, T any] interface {
	Position[C]
	Reader[T]
}

// BidiCore is Core plus the explicit step-back primitive. Satisfying it
// unlocks NewBidirectional and the Reverse adaptor.
type BidiCore[C, T any] interface {
	Core[C, T]
	Backward[C]
}

// RandomCore is Core plus O(1) jumps and distances. Prev is deliberately not
// required: a signed Jump stands in for it, and the synthesizer derives
// backward movement from Jump(-1).
type RandomCore[C, T any] interface {
	Core[C, T]
	Jumper[C]
	Measurer[C]
}

// ContigCore is RandomCore plus the raw-address primitive.
type ContigCore[C, T any] interface {
	RandomCore[C, T]
	Addresser[T]
}

// Detect returns the strongest capability the primitive method set of C can
// back. The probe is structural only, so Detect never returns SinglePass:
// whether positions share consumable state is invisible to a method-set
// check, and a single-pass core must claim SinglePass itself.
//
// The element type cannot be inferred from the probe value, so call sites
// name it: Detect[rune](cur). Complexity: O(1), a fixed set of assertions.
func Detect[T any, C Core[C, T]](probe C) Capability {
	a := any(probe)
	_, jump := a.(Jumper[C])
	_, dist := a.(Measurer[C])
	if jump && dist {
		if _, addr := a.(Addresser[T]); addr {
			return Contiguous
		}

		return RandomAccess
	}
	if _, back := a.(Backward[C]); back || jump {
		return Bidirectional
	}

	return Forward
}

// Validate checks that claim is a known capability and that the primitive
// method set of C backs it. A claim weaker than what the methods support is
// fine (a downgrade is always honest); a claim stronger than the method set
// returns ErrMissingPrimitive wrapped with the name of the first absent
// primitive. Nothing is constructed before this check passes.
func Validate[T any, C Core[C, T]](claim Capability, probe C) error {
	if !claim.known() {
		return fmt.Errorf("capability %d: %w", uint8(claim), ErrUnknownCapability)
	}

	// Core[C, T] already guarantees Next/Equal/Value, which is all that
	// SinglePass and Forward require.
	a := any(probe)
	_, back := a.(Backward[C])
	_, jump := a.(Jumper[C])
	_, dist := a.(Measurer[C])
	_, addr := a.(Addresser[T])

	if claim.AtLeast(Bidirectional) && !back && !jump {
		return fmt.Errorf("%s requires Prev or Jump: %w", claim, ErrMissingPrimitive)
	}
	if claim.AtLeast(RandomAccess) {
		if !jump {
			return fmt.Errorf("%s requires Jump: %w", claim, ErrMissingPrimitive)
		}
		if !dist {
			return fmt.Errorf("%s requires Distance: %w", claim, ErrMissingPrimitive)
		}
	}
	if claim.AtLeast(Contiguous) && !addr {
		return fmt.Errorf("%s requires Addr: %w", claim, ErrMissingPrimitive)
	}

	return nil
}
