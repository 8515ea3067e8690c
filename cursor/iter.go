// SPDX-License-Identifier: MIT
// Package cursor: the bounded iterator adaptor.
// Iter wraps a [first, last) pair of core positions and synthesizes the full
// conventional traversal surface from the core's primitives. Which operations
// are offered is decided by the claimed Capability; how they are carried out
// is decided by a dispatch table resolved once at construction. Movement never
// errors: exhaustion and unsupported operations report through bool results,
// so the loop shape stays the familiar
//
//	for it.SeekFirst(); it.Valid(); it.Next() {
//		use(it.Value())
//	}

package cursor

import "iter"

// Iter is a bounded cursor over [first, last).
//
// The zero value is not usable; construct via New or one of the typed
// constructors. Iter is not safe for concurrent use. A single-pass claim
// additionally means positions share consumable state, so every walk —
// including read-only views like Seq — consumes the underlying sequence.
type Iter[T any, C Core[C, T]] struct {
	cur, first, last C
	claim            Capability

	// Dispatch table, resolved once at construction from the core's
	// structural primitives. A nil slot means the primitive is absent and
	// dependent operations degrade (counted walks) or are withheld.
	prev func(C) C
	jump func(C, int) C
	dist func(C, C) int
	addr func(C) *T
}

// New builds a bounded cursor over [first, last) under the given capability
// claim. The claim is verified against the core's primitive method set before
// any cursor exists (see Validate); on measuring cores, inverted bounds are
// rejected with ErrBadRange. Claiming less than the core supports is allowed
// and caps the offered surface at the claim.
func New[T any, C Core[C, T]](claim Capability, first, last C) (*Iter[T, C], error) {
	if err := Validate[T](claim, first); err != nil {
		return nil, err
	}

	it := &Iter[T, C]{cur: first, first: first, last: last, claim: claim}
	it.resolve()
	if it.dist != nil && it.dist(first, last) < 0 {
		return nil, ErrBadRange
	}

	return it, nil
}

// NewSinglePass builds a one-sweep cursor: forward movement only, no rewind,
// and walks may consume shared state.
func NewSinglePass[T any, C Core[C, T]](first, last C) (*Iter[T, C], error) {
	return New[T, C](SinglePass, first, last)
}

// NewForward builds a multipass forward cursor. The constraint is the same
// as for NewSinglePass; claiming Forward is the caller's promise that
// positions are independent values.
func NewForward[T any, C Core[C, T]](first, last C) (*Iter[T, C], error) {
	return New[T, C](Forward, first, last)
}

// NewBidirectional builds a cursor that can also step backward. Missing Prev
// is a compile error here, not a construction error.
func NewBidirectional[T any, C BidiCore[C, T]](first, last C) (*Iter[T, C], error) {
	return New[T, C](Bidirectional, first, last)
}

// NewRandomAccess builds a cursor with O(1) seeking, offsets and ordering.
// Missing Jump or Distance is a compile error here.
func NewRandomAccess[T any, C RandomCore[C, T]](first, last C) (*Iter[T, C], error) {
	return New[T, C](RandomAccess, first, last)
}

// NewContiguous builds a random-access cursor whose Ref returns real element
// addresses. Missing Addr is a compile error here.
func NewContiguous[T any, C ContigCore[C, T]](first, last C) (*Iter[T, C], error) {
	return New[T, C](Contiguous, first, last)
}

// resolve fills the dispatch table from the core's structural method set.
// The table records what the core CAN do; the claim decides in each method
// what the cursor MAY offer. Backward movement prefers the dedicated Prev
// primitive and falls back to a signed Jump.
func (it *Iter[T, C]) resolve() {
	a := any(it.first)
	if _, ok := a.(Backward[C]); ok {
		it.prev = func(c C) C { return any(c).(Backward[C]).Prev() }
	}
	if _, ok := a.(Jumper[C]); ok {
		it.jump = func(c C, n int) C { return any(c).(Jumper[C]).Jump(n) }
		if it.prev == nil {
			it.prev = func(c C) C { return any(c).(Jumper[C]).Jump(-1) }
		}
	}
	if _, ok := a.(Measurer[C]); ok {
		it.dist = func(from, to C) int { return any(from).(Measurer[C]).Distance(to) }
	}
	if _, ok := a.(Addresser[T]); ok {
		it.addr = func(c C) *T { return any(c).(Addresser[T]).Addr() }
	}
}

// Valid reports whether the cursor denotes an element (has not reached the
// end of its range). Complexity: O(1).
func (it *Iter[T, C]) Valid() bool { return !it.cur.Equal(it.last) }

// Value returns the current element, or the zero value when the cursor is
// exhausted. Complexity: O(1).
func (it *Iter[T, C]) Value() T {
	if !it.Valid() {
		var zero T
		return zero
	}

	return it.cur.Value()
}

// Ref returns a pointer to the current element, or nil when exhausted.
//
// Under a Contiguous claim the pointer aliases the underlying storage and
// writes through it are visible to the sequence owner. Under every weaker
// claim Ref returns the address of a private copy that lives until the next
// movement — enough for method calls on the element, nothing more.
func (it *Iter[T, C]) Ref() *T {
	if !it.Valid() {
		return nil
	}
	if it.claim.AtLeast(Contiguous) && it.addr != nil {
		return it.addr(it.cur)
	}

	v := it.cur.Value()
	return &v
}

// Next advances one step and reports whether the cursor still denotes an
// element. Calling Next on an exhausted cursor is a safe no-op returning
// false. Complexity: O(1).
func (it *Iter[T, C]) Next() bool {
	if !it.Valid() {
		return false
	}
	it.cur = it.cur.Next()

	return it.Valid()
}

// Prev steps one position backward and reports whether it moved. Stepping
// back from the end position lands on the final element, which is what makes
//
//	for it.SeekLast(); it.Valid(); ...
//
// loops work. Prev at the first position refuses and returns false. Offered
// from Bidirectional up; weaker claims always report false.
func (it *Iter[T, C]) Prev() bool {
	if it.prev == nil || !it.claim.AtLeast(Bidirectional) {
		return false
	}
	if it.cur.Equal(it.first) {
		return false
	}
	it.cur = it.prev(it.cur)

	return true
}

// SeekFirst rewinds to the start of the range and reports whether an element
// is there. Offered from Forward up: a single-pass cursor has no rewind, so
// the call leaves it untouched and returns false.
func (it *Iter[T, C]) SeekFirst() bool {
	if !it.claim.AtLeast(Forward) {
		return false
	}
	it.cur = it.first

	return it.Valid()
}

// SeekLast positions the cursor on the final element. On an empty range it
// refuses and returns false. Offered from Bidirectional up.
// Complexity: O(1).
func (it *Iter[T, C]) SeekLast() bool {
	if it.prev == nil || !it.claim.AtLeast(Bidirectional) {
		return false
	}
	if it.first.Equal(it.last) {
		return false
	}
	it.cur = it.prev(it.last)

	return true
}

// Seek positions the cursor at offset i from the start of the range and
// reports whether the resulting position denotes an element. i == Len()
// parks the cursor at the end (Valid becomes false) and also returns false;
// any i outside [0, Len()] refuses without moving.
//
// Offered from Forward up. Complexity: O(1) with Jump and Distance, O(i)
// counted walk otherwise.
func (it *Iter[T, C]) Seek(i int) bool {
	if i < 0 || !it.claim.AtLeast(Forward) {
		return false
	}
	if it.jump != nil && it.dist != nil {
		if n := it.dist(it.first, it.last); i > n {
			return false
		}
		it.cur = it.jump(it.first, i)

		return it.Valid()
	}

	// Counted walk, bounded by the end position so an oversized i cannot
	// run off the sequence. The cursor moves only once the target is known
	// to be reachable.
	probe, k := it.first, i
	for k > 0 && !probe.Equal(it.last) {
		probe = probe.Next()
		k--
	}
	if k > 0 {
		return false
	}
	it.cur = probe

	return it.Valid()
}

// Advance moves the cursor n steps (n may be negative) and reports whether
// the resulting position denotes an element. Moving exactly to the end parks
// the cursor there and returns false; a target outside [0, Len()] refuses
// without moving. Backward movement is offered from Bidirectional up.
//
// On multipass claims the move is all-or-nothing. Under a SinglePass claim a
// forward probe necessarily consumes shared state, so a refused oversized
// advance still exhausts the sequence.
//
// Complexity: O(1) with Jump and Distance, O(|n|) counted walk otherwise.
func (it *Iter[T, C]) Advance(n int) bool {
	switch {
	case n == 0:
		return it.Valid()
	case n < 0 && !it.claim.AtLeast(Bidirectional):
		return false
	}

	if it.jump != nil && it.dist != nil {
		// 1. Compute the absolute target index.
		idx := it.dist(it.first, it.cur) + n
		// 2. Refuse anything outside [0, len].
		if idx < 0 || idx > it.dist(it.first, it.last) {
			return false
		}
		// 3. One O(1) jump.
		it.cur = it.jump(it.cur, n)

		return it.Valid()
	}

	probe := it.cur
	if n > 0 {
		for ; n > 0 && !probe.Equal(it.last); n-- {
			probe = probe.Next()
		}
	} else {
		for ; n < 0 && !probe.Equal(it.first); n++ {
			probe = it.prev(probe)
		}
	}
	if n != 0 {
		return false
	}
	it.cur = probe

	return it.Valid()
}

// At returns the element n steps away from the current position without
// moving the cursor. Negative offsets are served when backward movement is
// available. Out-of-range offsets report false.
//
// Offered from Forward up. Complexity: O(1) with Jump and Distance, O(|n|)
// probing walk otherwise.
func (it *Iter[T, C]) At(n int) (T, bool) {
	var zero T
	if !it.claim.AtLeast(Forward) {
		return zero, false
	}

	if it.jump != nil && it.dist != nil {
		idx := it.dist(it.first, it.cur) + n
		if idx < 0 || idx >= it.dist(it.first, it.last) {
			return zero, false
		}

		return it.jump(it.cur, n).Value(), true
	}

	probe := it.cur
	if n >= 0 {
		for ; n > 0 && !probe.Equal(it.last); n-- {
			probe = probe.Next()
		}
		if n > 0 || probe.Equal(it.last) {
			return zero, false
		}
	} else {
		if it.prev == nil || !it.claim.AtLeast(Bidirectional) {
			return zero, false
		}
		for ; n < 0 && !probe.Equal(it.first); n++ {
			probe = it.prev(probe)
		}
		if n < 0 {
			return zero, false
		}
	}

	return probe.Value(), true
}

// Pos returns the current offset from the start of the range, or -1 when it
// cannot be known: measuring cores answer in O(1), multipass cores count a
// walk in O(pos), and a single-pass cursor without Distance cannot afford
// the walk at all.
func (it *Iter[T, C]) Pos() int {
	if it.dist != nil {
		return it.dist(it.first, it.cur)
	}
	if !it.claim.AtLeast(Forward) {
		return -1
	}

	n := 0
	for c := it.first; !c.Equal(it.cur); c = c.Next() {
		n++
	}

	return n
}

// Len returns the total number of elements in the range, or -1 when it
// cannot be known. Same strategy ladder as Pos; the walk costs O(len).
func (it *Iter[T, C]) Len() int {
	if it.dist != nil {
		return it.dist(it.first, it.last)
	}
	if !it.claim.AtLeast(Forward) {
		return -1
	}

	n := 0
	for c := it.first; !c.Equal(it.last); c = c.Next() {
		n++
	}

	return n
}

// Equal reports whether both cursors denote the same position. Only
// meaningful for cursors over the same sequence; a nil argument is unequal
// to everything. Complexity: O(1).
func (it *Iter[T, C]) Equal(other *Iter[T, C]) bool {
	if other == nil {
		return false
	}

	return it.cur.Equal(other.cur)
}

// Compare orders two cursors over the same sequence: -1 when the receiver
// precedes other, 0 when equal, +1 when it follows. Ordering is synthesized
// from the measuring primitive; cores without Distance report ok == false.
// Complexity: O(1).
func (it *Iter[T, C]) Compare(other *Iter[T, C]) (int, bool) {
	if other == nil || it.dist == nil {
		return 0, false
	}
	switch d := it.dist(it.cur, other.cur); {
	case d > 0:
		return -1, true
	case d < 0:
		return 1, true
	default:
		return 0, true
	}
}

// Clone returns an independent cursor at the same position. Meaningful from
// Forward up; under a SinglePass claim the clone shares consumable state
// with the original, which is exactly what that claim warns about.
func (it *Iter[T, C]) Clone() *Iter[T, C] {
	cp := *it
	return &cp
}

// Position hands back the raw core at the current position, for callers that
// want to leave the bounded world.
func (it *Iter[T, C]) Position() C { return it.cur }

// Capability returns the claim the cursor was constructed under.
func (it *Iter[T, C]) Capability() Capability { return it.claim }

// Seq yields the remaining elements [current, end) as a Go 1.23 push
// sequence. The cursor itself is not advanced; under a SinglePass claim the
// walk still consumes the shared state the positions point into.
func (it *Iter[T, C]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := it.cur; !c.Equal(it.last); c = c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// All yields the whole range [first, last) with 0-based offsets, regardless
// of the current position. Offered from Forward up (it needs a rewind); a
// single-pass cursor yields nothing.
func (it *Iter[T, C]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if !it.claim.AtLeast(Forward) {
			return
		}
		i := 0
		for c := it.first; !c.Equal(it.last); c = c.Next() {
			if !yield(i, c.Value()) {
				return
			}
			i++
		}
	}
}
