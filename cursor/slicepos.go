// SPDX-License-Identifier: MIT
// Package cursor: the reference slice core.
// SlicePos is the canonical ContigCore implementation: a slice and an index,
// moved by value. It is what fixvec hands out, what the conformance checks
// compile against, and the worked example for anyone writing their own core.

package cursor

// SlicePos denotes one position inside a slice. The zero value denotes
// position 0 of a nil slice, which is a valid empty range.
//
// All movement is by value: methods return fresh positions and never mutate
// the receiver. Dereferencing an out-of-range position is caught by Go's own
// bounds check, matching the raw-core contract that bounds are the caller's
// business until an adaptor adds them.
type SlicePos[T any] struct {
	s []T
	i int
}

// SliceRange returns the [first, last) position pair spanning s.
func SliceRange[T any](s []T) (first, last SlicePos[T]) {
	return SlicePos[T]{s: s}, SlicePos[T]{s: s, i: len(s)}
}

// SliceIter wraps s in a fully privileged bounded cursor.
func SliceIter[T any](s []T) *Iter[T, SlicePos[T]] {
	first, last := SliceRange(s)
	it, _ := NewContiguous[T](first, last) // cannot fail: SlicePos backs every primitive
	return it
}

// Next returns the position one element forward.
func (p SlicePos[T]) Next() SlicePos[T] { return SlicePos[T]{s: p.s, i: p.i + 1} }

// Prev returns the position one element backward.
func (p SlicePos[T]) Prev() SlicePos[T] { return SlicePos[T]{s: p.s, i: p.i - 1} }

// Jump returns the position n elements away; n may be negative.
// Complexity: O(1).
func (p SlicePos[T]) Jump(n int) SlicePos[T] { return SlicePos[T]{s: p.s, i: p.i + n} }

// Equal reports whether both positions denote the same index. Positions of
// different slices compare by index alone; mixing them is the usual
// cross-sequence undefined territory.
func (p SlicePos[T]) Equal(other SlicePos[T]) bool { return p.i == other.i }

// Value returns the element at the position.
func (p SlicePos[T]) Value() T { return p.s[p.i] }

// Distance returns to.Index() - p.Index(). Complexity: O(1).
func (p SlicePos[T]) Distance(to SlicePos[T]) int { return to.i - p.i }

// Addr returns the address of the element at the position. The pointer
// aliases the slice's backing array.
func (p SlicePos[T]) Addr() *T { return &p.s[p.i] }

// Index returns the raw slice index the position denotes.
func (p SlicePos[T]) Index() int { return p.i }

// SlicePos must back the full primitive vocabulary.
var _ ContigCore[SlicePos[int], int] = SlicePos[int]{}
