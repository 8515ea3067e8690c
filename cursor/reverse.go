// SPDX-License-Identifier: MIT
// Package cursor: reversing adaptors.
// Reversed and ReversedRandom wrap a core and flip its direction: forward
// movement becomes backward movement and dereference reads one step before
// the wrapped position, so reversing a [first, last) pair yields exactly the
// same elements back to front. Two adaptor types exist because each is itself
// a core whose method set must honestly mirror its base: a single type would
// structurally advertise Jump over bases that cannot back it.
//
// Reversal caps at RandomAccess. A reversed walk over contiguous storage
// runs against the address order, so no reversed core offers Addr — Detect
// reports that structurally, with no special casing.

package cursor

// Reversed adapts any bidirectional core to backward traversal.
//
// The wrapped position is one past the element Value returns: reversing the
// end position of a range dereferences its final element, and reversing its
// first position marks the reversed end. Walking outside the wrapped range
// is governed by the base core's own bounds behavior, as for any raw core.
type Reversed[T any, C BidiCore[C, T]] struct {
	base C
}

// Reverse wraps c for backward traversal.
func Reverse[T any, C BidiCore[C, T]](c C) Reversed[T, C] {
	return Reversed[T, C]{base: c}
}

// ReverseRange flips a [first, last) pair into the pair that traverses the
// same elements backward.
func ReverseRange[T any, C BidiCore[C, T]](first, last C) (rfirst, rlast Reversed[T, C]) {
	return Reverse[T](last), Reverse[T](first)
}

// Next moves one step backward through the base sequence.
func (r Reversed[T, C]) Next() Reversed[T, C] { return Reversed[T, C]{base: r.base.Prev()} }

// Prev moves one step forward through the base sequence.
func (r Reversed[T, C]) Prev() Reversed[T, C] { return Reversed[T, C]{base: r.base.Next()} }

// Equal reports whether both reversed positions wrap the same base position.
func (r Reversed[T, C]) Equal(other Reversed[T, C]) bool { return r.base.Equal(other.base) }

// Value returns the element one base step before the wrapped position.
func (r Reversed[T, C]) Value() T { return r.base.Prev().Value() }

// Base returns the wrapped position. Double reversal is the identity:
// Reverse(Reverse(c)).Base().Base() is c again.
func (r Reversed[T, C]) Base() C { return r.base }

// ReversedRandom adapts a random-access core, keeping jumps and distances
// O(1) by negating them.
type ReversedRandom[T any, C RandomCore[C, T]] struct {
	base C
}

// ReverseRandom wraps c for backward traversal with random access intact.
func ReverseRandom[T any, C RandomCore[C, T]](c C) ReversedRandom[T, C] {
	return ReversedRandom[T, C]{base: c}
}

// ReverseRandomRange flips a [first, last) pair, keeping random access.
func ReverseRandomRange[T any, C RandomCore[C, T]](first, last C) (rfirst, rlast ReversedRandom[T, C]) {
	return ReverseRandom[T](last), ReverseRandom[T](first)
}

// Next moves one step backward through the base sequence.
func (r ReversedRandom[T, C]) Next() ReversedRandom[T, C] {
	return ReversedRandom[T, C]{base: r.base.Jump(-1)}
}

// Prev moves one step forward through the base sequence.
func (r ReversedRandom[T, C]) Prev() ReversedRandom[T, C] {
	return ReversedRandom[T, C]{base: r.base.Jump(1)}
}

// Jump moves n reversed steps, which is -n base steps. Complexity: O(1).
func (r ReversedRandom[T, C]) Jump(n int) ReversedRandom[T, C] {
	return ReversedRandom[T, C]{base: r.base.Jump(-n)}
}

// Equal reports whether both reversed positions wrap the same base position.
func (r ReversedRandom[T, C]) Equal(other ReversedRandom[T, C]) bool {
	return r.base.Equal(other.base)
}

// Value returns the element one base step before the wrapped position.
func (r ReversedRandom[T, C]) Value() T { return r.base.Jump(-1).Value() }

// Distance returns the reversed-order distance, the negated base distance.
// Complexity: O(1).
func (r ReversedRandom[T, C]) Distance(to ReversedRandom[T, C]) int {
	return -r.base.Distance(to.base)
}

// Base returns the wrapped position.
func (r ReversedRandom[T, C]) Base() C { return r.base }

// Reversed adaptors must land exactly one tier under their base: never
// contiguous, and never weaker than the base's movement set.
var (
	_ BidiCore[Reversed[int, SlicePos[int]], int]         = Reversed[int, SlicePos[int]]{}
	_ RandomCore[ReversedRandom[int, SlicePos[int]], int] = ReversedRandom[int, SlicePos[int]]{}
)
