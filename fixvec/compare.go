// SPDX-License-Identifier: MIT
// Package fixvec: relational operations.
// Capacity never participates in comparison; two vectors are compared by
// their live elements alone, lexicographically. A nil vector compares as
// empty.

package fixvec

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same order.
// Capacities may differ.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// Compare orders a and b lexicographically: the first unequal element pair
// decides, otherwise the shorter vector is less. Returns -1, 0 or 1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// EqualFunc is Equal with a caller-supplied element predicate, for element
// types that are not comparable or need a looser notion of sameness.
func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(v.Data(), other.Data(), eq)
}

// CompareFunc is Compare with a caller-supplied element ordering. cmp
// follows the usual contract: negative for less, zero for equal, positive
// for greater.
func (v *Vector[T]) CompareFunc(other *Vector[T], cmp func(a, b T) int) int {
	return slices.CompareFunc(v.Data(), other.Data(), cmp)
}
