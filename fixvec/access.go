// SPDX-License-Identifier: MIT
// Package fixvec: element access.
// All indexed access is bounds-checked against the LIVE range, not the
// capacity: the zero-valued tail is storage, not elements, and no accessor
// will hand it out.

package fixvec

// At returns the element at index i. Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if i < 0 || i >= v.size {
		return zero, ErrOutOfRange
	}

	return v.buf[i], nil
}

// Set overwrites the element at index i. Complexity: O(1).
func (v *Vector[T]) Set(i int, val T) error {
	if v == nil {
		return ErrNilVector
	}
	if i < 0 || i >= v.size {
		return ErrOutOfRange
	}
	v.buf[i] = val

	return nil
}

// Ptr returns the address of the element at index i. The pointer aliases
// the vector's storage: writes through it are real, and any insert or erase
// may shift a different element under it.
func (v *Vector[T]) Ptr(i int) (*T, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	if i < 0 || i >= v.size {
		return nil, ErrOutOfRange
	}

	return &v.buf[i], nil
}

// Front returns the first live element.
func (v *Vector[T]) Front() (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if v.size == 0 {
		return zero, ErrEmpty
	}

	return v.buf[0], nil
}

// Back returns the last live element.
func (v *Vector[T]) Back() (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if v.size == 0 {
		return zero, ErrEmpty
	}

	return v.buf[v.size-1], nil
}

// Data returns the live elements as a slice sharing the vector's storage.
// The slice's capacity is clamped to its length, so an append through it
// reallocates instead of stomping the vector's tail. Reads and writes of
// existing elements go straight to the vector. A nil vector yields nil.
func (v *Vector[T]) Data() []T {
	if v == nil {
		return nil
	}

	return v.buf[:v.size:v.size]
}
