// SPDX-License-Identifier: MIT
// Package fixvec: mutation algorithms.
// Every operation here validates before it writes: a returned error means
// nothing moved. Shifts are single overlap-safe copies over the live range,
// and every slot that stops being live is zeroed on the spot.

package fixvec

import (
	"fmt"

	"github.com/go-stride/stride/cursor"
)

// PushBack appends val to the live range. Complexity: O(1).
func (v *Vector[T]) PushBack(val T) error {
	if v == nil {
		return ErrNilVector
	}
	if v.size == len(v.buf) {
		return ErrCapacityExceeded
	}
	v.buf[v.size] = val
	v.size++

	return nil
}

// PopBack removes and returns the last element, zeroing its slot.
// Complexity: O(1).
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if v.size == 0 {
		return zero, ErrEmpty
	}

	v.size--
	val := v.buf[v.size]
	v.buf[v.size] = zero

	return val, nil
}

// Insert places val at index i, shifting [i, len) one slot right. i == Len()
// appends. Complexity: O(len - i).
func (v *Vector[T]) Insert(i int, val T) error {
	if v == nil {
		return ErrNilVector
	}
	if i < 0 || i > v.size {
		return ErrOutOfRange
	}
	if v.size == len(v.buf) {
		return ErrCapacityExceeded
	}

	if i == v.size {
		// Append fast path: no shift.
		v.buf[i] = val
		v.size++

		return nil
	}

	copy(v.buf[i+1:v.size+1], v.buf[i:v.size])
	v.buf[i] = val
	v.size++

	return nil
}

// InsertSlice places vals at index i in order, shifting [i, len) right by
// len(vals). vals must not alias the vector's own storage.
// Complexity: O(len - i + len(vals)).
func (v *Vector[T]) InsertSlice(i int, vals []T) error {
	if v == nil {
		return ErrNilVector
	}
	if i < 0 || i > v.size {
		return ErrOutOfRange
	}
	n := len(vals)
	if v.size+n > len(v.buf) {
		return fmt.Errorf("%d values into %d free slots: %w",
			n, len(v.buf)-v.size, ErrCapacityExceeded)
	}
	if n == 0 {
		return nil
	}

	// 1. Open the hole: shift the suffix right by n (overlap-safe copy).
	copy(v.buf[i+n:v.size+n], v.buf[i:v.size])
	// 2. Fill it in order.
	copy(v.buf[i:i+n], vals)
	// 3. Commit the new live count.
	v.size += n

	return nil
}

// InsertRange inserts the elements of the core range [first, last) at index
// i, in source order. The source is drained exactly once, so a single-pass
// core is legal; cost stays linear in the source length plus the shifted
// suffix. On any error the source has still been drained — that is the
// price of not knowing its count up front.
func InsertRange[T any, C cursor.Core[C, T]](v *Vector[T], i int, first, last C) error {
	if v == nil {
		return ErrNilVector
	}
	if i < 0 || i > v.size {
		return ErrOutOfRange
	}

	return v.InsertSlice(i, cursor.Collect[T](first, last))
}

// Erase removes the element at index i, shifting the suffix left and
// zeroing the vacated slot. The element that followed the removed one is at
// index i afterwards. Complexity: O(len - i).
func (v *Vector[T]) Erase(i int) error {
	if v == nil {
		return ErrNilVector
	}
	if i < 0 || i >= v.size {
		return ErrOutOfRange
	}

	copy(v.buf[i:v.size-1], v.buf[i+1:v.size])
	v.size--
	clear(v.buf[v.size : v.size+1])

	return nil
}

// EraseRange removes [first, last), shifting the survivors left and zeroing
// the vacated tail. The element that followed the range is at index first
// afterwards. An inverted or out-of-bounds pair returns ErrBadRange.
// Complexity: O(len - first).
func (v *Vector[T]) EraseRange(first, last int) error {
	if v == nil {
		return ErrNilVector
	}
	if first < 0 || last < first || last > v.size {
		return ErrBadRange
	}
	n := last - first
	if n == 0 {
		return nil
	}

	copy(v.buf[first:], v.buf[last:v.size])
	clear(v.buf[v.size-n : v.size])
	v.size -= n

	return nil
}

// Resize sets the live count to n, erasing the tail when shrinking and
// appending zero values when growing. n beyond the capacity is
// ErrCapacityExceeded; a negative n is ErrOutOfRange.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeFill(n, zero)
}

// ResizeFill is Resize with val instead of the zero value for new elements.
// Growing to exactly the capacity is legal: the capacity is a bound on the
// live count, not a watermark below it.
func (v *Vector[T]) ResizeFill(n int, val T) error {
	if v == nil {
		return ErrNilVector
	}
	if n < 0 {
		return ErrOutOfRange
	}
	if n > len(v.buf) {
		return fmt.Errorf("resize to %d with capacity %d: %w",
			n, len(v.buf), ErrCapacityExceeded)
	}

	switch {
	case n < v.size:
		clear(v.buf[n:v.size])
	case n > v.size:
		for i := v.size; i < n; i++ {
			v.buf[i] = val
		}
	}
	v.size = n

	return nil
}

// Assign replaces the whole contents with vals. Self-assignment through
// Data() is safe; the tail beyond the new count is zeroed.
func (v *Vector[T]) Assign(vals ...T) error {
	if v == nil {
		return ErrNilVector
	}
	n := len(vals)
	if n > len(v.buf) {
		return fmt.Errorf("%d values into capacity %d: %w",
			n, len(v.buf), ErrCapacityExceeded)
	}

	copy(v.buf, vals)
	if n < v.size {
		clear(v.buf[n:v.size])
	}
	v.size = n

	return nil
}

// AssignFill replaces the whole contents with n copies of val.
func (v *Vector[T]) AssignFill(n int, val T) error {
	if v == nil {
		return ErrNilVector
	}
	if n < 0 {
		return ErrOutOfRange
	}
	if n > len(v.buf) {
		return fmt.Errorf("%d values into capacity %d: %w",
			n, len(v.buf), ErrCapacityExceeded)
	}

	for i := 0; i < n; i++ {
		v.buf[i] = val
	}
	if n < v.size {
		clear(v.buf[n:v.size])
	}
	v.size = n

	return nil
}

// Swap exchanges the contents of two vectors of any capacities, as long as
// each side's elements fit the other's storage. Feasibility is verified
// before anything moves; on error both vectors are unchanged.
// Complexity: O(max(len_a, len_b)).
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if v == nil || other == nil {
		return ErrNilVector
	}
	if v == other {
		return nil
	}

	// 1. Feasibility first, both directions.
	if v.size > other.Cap() {
		return fmt.Errorf("%d values into capacity %d: %w",
			v.size, other.Cap(), ErrCapacityExceeded)
	}
	if other.size > v.Cap() {
		return fmt.Errorf("%d values into capacity %d: %w",
			other.size, v.Cap(), ErrCapacityExceeded)
	}

	// 2. Swap the common prefix element-wise.
	common := min(v.size, other.size)
	for i := 0; i < common; i++ {
		v.buf[i], other.buf[i] = other.buf[i], v.buf[i]
	}

	// 3. Move the longer side's surplus across and zero its source slots.
	switch {
	case v.size > common:
		copy(other.buf[common:], v.buf[common:v.size])
		clear(v.buf[common:v.size])
	case other.size > common:
		copy(v.buf[common:], other.buf[common:other.size])
		clear(other.buf[common:other.size])
	}

	// 4. Exchange the live counts.
	v.size, other.size = other.size, v.size

	return nil
}
