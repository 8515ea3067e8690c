// SPDX-License-Identifier: MIT
// Package cursor: capability tier contracts.
// Five nested interfaces mirror the five capability tags, so the type system
// itself shows that strengthening a capability only ever ADDS operations.
// Code that needs, say, backward movement asks for BidirectionalIterator and
// compiles against nothing weaker.
//
// Iter carries every method structurally regardless of its claim (Go has no
// per-instance method sets); the claim keeps the behavior honest — an
// operation outside the claimed tier reports false instead of acting. Which
// tier a given cursor rightfully belongs to is decided at construction, not
// at interface assignment.

package cursor

import "iter"

// Iterator is the single-pass surface: the one loop every capability can
// serve.
//
//	for ; it.Valid(); it.Next() {
//		use(it.Value())
//	}
type Iterator[T any] interface {
	// Valid reports whether the cursor denotes an element.
	Valid() bool
	// Value returns the current element; zero value when exhausted.
	Value() T
	// Next advances one step and reports whether an element remains.
	Next() bool
	// Seq yields the remaining elements as a range-for sequence.
	Seq() iter.Seq[T]
}

// ForwardIterator adds the rewind that separates multipass from single-pass.
type ForwardIterator[T any] interface {
	Iterator[T]
	// SeekFirst rewinds to the start and reports whether an element is there.
	SeekFirst() bool
}

// BidirectionalIterator adds backward movement.
type BidirectionalIterator[T any] interface {
	ForwardIterator[T]
	// Prev steps backward and reports whether it moved.
	Prev() bool
	// SeekLast positions on the final element; false on an empty range.
	SeekLast() bool
}

// RandomAccessIterator adds O(1) seeking, offset access and measurement.
type RandomAccessIterator[T any] interface {
	BidirectionalIterator[T]
	// Seek positions at offset i from the start.
	Seek(i int) bool
	// Advance moves by n steps, negative allowed.
	Advance(n int) bool
	// At reads the element n steps away without moving.
	At(n int) (T, bool)
	// Pos returns the current offset from the start, -1 when unknowable.
	Pos() int
	// Len returns the range length, -1 when unknowable.
	Len() int
	// All yields the whole range with 0-based offsets.
	All() iter.Seq2[int, T]
}

// ContiguousIterator adds real element addresses, the contiguous-storage
// privilege.
type ContiguousIterator[T any] interface {
	RandomAccessIterator[T]
	// Ref returns a pointer aliasing the underlying storage; nil when
	// exhausted.
	Ref() *T
}

// Compile-time conformance: the adaptor over the reference slice core must
// satisfy every tier.
var (
	_ Iterator[int]              = (*Iter[int, SlicePos[int]])(nil)
	_ ForwardIterator[int]       = (*Iter[int, SlicePos[int]])(nil)
	_ BidirectionalIterator[int] = (*Iter[int, SlicePos[int]])(nil)
	_ RandomAccessIterator[int]  = (*Iter[int, SlicePos[int]])(nil)
	_ ContiguousIterator[int]    = (*Iter[int, SlicePos[int]])(nil)
)
