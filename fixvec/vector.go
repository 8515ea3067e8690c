// SPDX-License-Identifier: MIT
// Package fixvec: the vector type and its lifecycle.
// Storage is one block allocated at construction and never replaced: the Go
// rendition of inline storage. The live prefix [0, size) holds the elements;
// every slot at [size, capacity) holds the zero value, so anything a dead
// element referenced is released to the GC the moment it dies. Every
// mutation in this package maintains that zeroing discipline.

package fixvec

import "fmt"

// Vector is a fixed-capacity sequence. The zero value is a usable vector of
// capacity 0; any practical capacity comes from New or Of.
//
// A Vector owns its storage exclusively and is not safe for concurrent use
// without external synchronization. Positions and iterators taken from it
// observe live storage: they see later writes, and erase/insert shifts move
// elements under them.
type Vector[T any] struct {
	buf  []T // len(buf) == capacity for the whole lifetime
	size int // live prefix length, 0 <= size <= len(buf)
}

// New constructs a vector with the given fixed capacity. Options decide the
// initial contents (WithLen, WithFill, WithValues, WithSeq); with none the
// vector starts empty. Initial contents longer than the capacity are
// rejected with ErrCapacityExceeded before any storage is written.
func New[T any](capacity int, opts ...Option[T]) (*Vector[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrBadCapacity)
	}

	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(cfg.fill) > capacity {
		return nil, fmt.Errorf("%d values into capacity %d: %w",
			len(cfg.fill), capacity, ErrCapacityExceeded)
	}

	v := &Vector[T]{buf: make([]T, capacity), size: len(cfg.fill)}
	copy(v.buf, cfg.fill)

	return v, nil
}

// Of constructs a vector of the given capacity holding vals, a shorthand
// for New(capacity, WithValues(vals...)).
func Of[T any](capacity int, vals ...T) (*Vector[T], error) {
	return New(capacity, WithValues(vals...))
}

// Len returns the number of live elements. A nil vector has none.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return v.size
}

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}

	return len(v.buf)
}

// Empty reports whether no live elements exist.
func (v *Vector[T]) Empty() bool { return v.Len() == 0 }

// Full reports whether the live range has reached the capacity. Growing a
// full vector is what ErrCapacityExceeded guards.
func (v *Vector[T]) Full() bool { return v.Len() == v.Cap() }

// Clear drops every live element and zeroes its slot. The capacity is
// untouched. Complexity: O(len).
func (v *Vector[T]) Clear() {
	if v == nil {
		return
	}
	clear(v.buf[:v.size])
	v.size = 0
}

// Clone returns a deep copy with the same capacity and contents. Cloning a
// nil vector returns nil.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}

	cp := &Vector[T]{buf: make([]T, len(v.buf)), size: v.size}
	copy(cp.buf, v.buf[:v.size])

	return cp
}

// Take moves the contents of other into v, replacing whatever v held, and
// leaves other empty with its capacity intact. This is the move rendition
// for fixed storage: elements transfer, storage blocks do not. Fails with
// ErrCapacityExceeded when other's contents do not fit v; on any failure
// both vectors are unchanged.
func (v *Vector[T]) Take(other *Vector[T]) error {
	if v == nil || other == nil {
		return ErrNilVector
	}
	if other.size > v.Cap() {
		return fmt.Errorf("%d values into capacity %d: %w",
			other.size, v.Cap(), ErrCapacityExceeded)
	}
	if v == other {
		return nil
	}

	v.Clear()
	copy(v.buf, other.buf[:other.size])
	v.size = other.size
	other.Clear()

	return nil
}
