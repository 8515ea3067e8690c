// SPDX-License-Identifier: MIT
// Package fixvec: traversal surfaces.
// A Vector exposes its live range three ways: raw cursor positions for
// callers composing their own traversals, ready-made iterators from the
// cursor package, and plain iter.Seq streams for range-over-func loops.
// All of them view the live range at call time; they do not track later
// mutation.

package fixvec

import (
	"iter"
	"slices"

	"github.com/go-stride/stride/cursor"
)

// Sequence is the read-only view of a fixed-capacity sequence.
type Sequence[T any] interface {
	Len() int
	Cap() int
	Empty() bool
	At(i int) (T, error)
	Values() iter.Seq[T]
}

// BackMutable is a Sequence that grows and shrinks at the back.
type BackMutable[T any] interface {
	Sequence[T]
	PushBack(val T) error
	PopBack() (T, error)
}

// Compile-time conformance check.
var _ BackMutable[int] = (*Vector[int])(nil)

// Begin returns the position of the first live element. Together with End
// it forms the half-open range the cursor package consumes.
func (v *Vector[T]) Begin() cursor.SlicePos[T] {
	first, _ := cursor.SliceRange(v.Data())
	return first
}

// End returns the position one past the last live element.
func (v *Vector[T]) End() cursor.SlicePos[T] {
	_, last := cursor.SliceRange(v.Data())
	return last
}

// Iter returns a contiguous iterator over the live range, front to back.
//
//	for it := vec.Iter(); it.Valid(); it.Next() {
//	    _ = it.Value()
//	}
func (v *Vector[T]) Iter() cursor.ContiguousIterator[T] {
	return cursor.SliceIter(v.Data())
}

// Reverse returns a random-access iterator over the live range, back to
// front. Element addresses are not exposed through it: a reversed view has
// no forward-contiguous storage to hand out.
func (v *Vector[T]) Reverse() cursor.RandomAccessIterator[T] {
	first, last := cursor.SliceRange(v.Data())
	rfirst, rlast := cursor.ReverseRandomRange[T](first, last)

	it, _ := cursor.NewRandomAccess[T](rfirst, rlast) // cannot fail: both bounds come from one slice

	return it
}

// Values yields the live elements front to back. Complexity: O(len).
func (v *Vector[T]) Values() iter.Seq[T] {
	return slices.Values(v.Data())
}

// All yields index/element pairs front to back. Complexity: O(len).
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.Data())
}

// Backward yields the live elements back to front. Complexity: O(len).
func (v *Vector[T]) Backward() iter.Seq[T] {
	first, last := cursor.SliceRange(v.Data())
	rfirst, rlast := cursor.ReverseRandomRange[T](first, last)

	return cursor.Seq[T](rfirst, rlast)
}
