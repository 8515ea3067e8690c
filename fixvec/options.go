// SPDX-License-Identifier: MIT
// Package fixvec: construction options.
// Options decide the initial contents of a vector; the capacity is always
// the explicit first argument of New and never an option. Each option
// REPLACES the initial contents, so the last one wins. Invalid parameters
// are recorded and surfaced by New as ErrOptionViolation before any storage
// is allocated.

package fixvec

import (
	"fmt"
	"iter"
	"slices"
)

// Option configures the initial contents of a vector under construction.
type Option[T any] func(*config[T])

// config accumulates option state during New.
type config[T any] struct {
	fill []T
	err  error
}

// WithLen starts the vector with n zero-valued elements.
//
//	n > 0: n zero values
//	n == 0: explicitly empty (the default)
//	n < 0: invalid option → ErrOptionViolation
func WithLen[T any](n int) Option[T] {
	return func(c *config[T]) {
		if n < 0 {
			c.err = fmt.Errorf("%w: length cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		c.fill = make([]T, n)
	}
}

// WithFill starts the vector with n copies of val.
func WithFill[T any](n int, val T) Option[T] {
	return func(c *config[T]) {
		if n < 0 {
			c.err = fmt.Errorf("%w: count cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		c.fill = make([]T, n)
		for i := range c.fill {
			c.fill[i] = val
		}
	}
}

// WithValues starts the vector with a copy of vals.
func WithValues[T any](vals ...T) Option[T] {
	return func(c *config[T]) {
		c.fill = slices.Clone(vals)
	}
}

// WithSeq starts the vector with the elements of seq, drained once at
// construction. The count is validated against the capacity before a single
// element lands in the vector.
func WithSeq[T any](seq iter.Seq[T]) Option[T] {
	return func(c *config[T]) {
		if seq == nil {
			c.err = fmt.Errorf("%w: nil sequence", ErrOptionViolation)
			return
		}
		c.fill = slices.Collect(seq)
	}
}
