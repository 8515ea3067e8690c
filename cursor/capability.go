// SPDX-License-Identifier: MIT
// Package cursor: traversal capability tags.
// A Capability is a claim about how a position type may be moved. Claims are
// strictly ordered; every tier's derived surface is a superset of the weaker
// tier's. Claiming more than the primitive method set supports is rejected at
// construction (see Validate), never discovered mid-iteration.

package cursor

// Capability ranks the traversal strength of a position type, weakest first.
//
// The rank decides which operations New is allowed to synthesize and which
// synthesis strategy it picks (O(1) jumps vs. counted walks). It never
// changes after construction.
type Capability uint8

const (
	// SinglePass allows one forward sweep; positions may share consumable
	// state, so revisiting an old position is undefined.
	SinglePass Capability = iota

	// Forward allows unlimited forward sweeps; positions are independent
	// values and an old position stays dereferenceable.
	Forward

	// Bidirectional additionally allows stepping backward (Prev, or a
	// signed Jump standing in for it).
	Bidirectional

	// RandomAccess additionally allows O(1) movement by arbitrary offsets
	// (Jump) and O(1) position subtraction (Distance).
	RandomAccess

	// Contiguous additionally guarantees elements are adjacent in memory,
	// so a real element address (Addr) exists at every valid position.
	Contiguous
)

// String returns the capability's canonical name.
func (c Capability) String() string {
	switch c {
	case SinglePass:
		return "SinglePass"
	case Forward:
		return "Forward"
	case Bidirectional:
		return "Bidirectional"
	case RandomAccess:
		return "RandomAccess"
	case Contiguous:
		return "Contiguous"
	default:
		return "Unknown"
	}
}

// AtLeast reports whether c grants everything want grants.
// Capability tiers are totally ordered, so this is a plain rank comparison.
func (c Capability) AtLeast(want Capability) bool { return c >= want }

// known reports whether c is one of the declared enum values.
func (c Capability) known() bool { return c <= Contiguous }
