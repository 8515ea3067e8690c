// SPDX-License-Identifier: MIT

package fixvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-stride/stride/cursor"
	"github.com/go-stride/stride/fixvec"
)

// spanPos walks the integers [i, ...) with no backing storage, the smallest
// forward-only core that can feed InsertRange.
type spanPos struct{ i int }

func (p spanPos) Next() spanPos { return spanPos{i: p.i + 1} }
func (p spanPos) Equal(o spanPos) bool { return p.i == o.i }
func (p spanPos) Value() int { return p.i }

var _ cursor.Core[spanPos, int] = spanPos{}

// TestPushBack_ToTheBrim grows a vector one element at a time up to its
// capacity and pins the refusal on the push past it.
func TestPushBack_ToTheBrim(t *testing.T) {
	v, err := fixvec.Of(4, 1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, v.PushBack(4), "the fourth element fills the last slot")
	assert.True(t, v.Full(), "live range reached the capacity")
	assert.Equal(t, []int{1, 2, 3, 4}, v.Data(), "insertion order preserved")

	err = v.PushBack(5)
	require.ErrorIs(t, err, fixvec.ErrCapacityExceeded, "a fifth element has nowhere to go")
	assert.Equal(t, []int{1, 2, 3, 4}, v.Data(), "failed push changes nothing")
}

// TestPopBack shrinks from the back in LIFO order down to the empty refusal.
func TestPopBack(t *testing.T) {
	v, err := fixvec.Of(3, 1, 2, 3)
	require.NoError(t, err)

	for _, want := range []int{3, 2, 1} {
		got, err := v.PopBack()
		require.NoError(t, err, "pop from a non-empty vector")
		assert.Equal(t, want, got, "PopBack returns the last element")
	}

	_, err = v.PopBack()
	assert.ErrorIs(t, err, fixvec.ErrEmpty, "nothing left to pop")
	assert.Equal(t, 3, v.Cap(), "capacity survives the drain")
}

// TestInsert covers the three positions an insert can land in: front,
// middle, end.
func TestInsert(t *testing.T) {
	v, err := fixvec.Of(6, 2, 4)
	require.NoError(t, err)

	require.NoError(t, v.Insert(1, 3), "middle insert shifts the suffix")
	assert.Equal(t, []int{2, 3, 4}, v.Data(), "element landed between its neighbours")

	require.NoError(t, v.Insert(0, 1), "front insert shifts everything")
	assert.Equal(t, []int{1, 2, 3, 4}, v.Data(), "element landed at the front")

	require.NoError(t, v.Insert(4, 5), "insert at Len appends")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Data(), "element landed at the back")
}

// TestInsert_Refusals pins the two failure modes: bad index and full
// storage, each leaving the vector untouched.
func TestInsert_Refusals(t *testing.T) {
	v, err := fixvec.Of(2, 1, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, v.Insert(3, 0), fixvec.ErrOutOfRange, "index past Len")
	assert.ErrorIs(t, v.Insert(-1, 0), fixvec.ErrOutOfRange, "negative index")
	assert.ErrorIs(t, v.Insert(1, 0), fixvec.ErrCapacityExceeded, "full vector refuses")
	assert.Equal(t, []int{1, 2}, v.Data(), "every refusal left the contents alone")
}

// TestInsertSlice_MidRange verifies the block insert: open a hole, fill it
// in order.
func TestInsertSlice_MidRange(t *testing.T) {
	v, err := fixvec.Of(4, 1, 4)
	require.NoError(t, err)

	require.NoError(t, v.InsertSlice(1, []int{9, 9}), "two values into two free slots")
	assert.Equal(t, []int{1, 9, 9, 4}, v.Data(), "block landed between 1 and 4")
	assert.True(t, v.Full(), "insert consumed the remaining capacity")
}

// TestInsertSlice_Atomicity pins that an overflowing block insert mutates
// nothing, even when a prefix of it would have fit.
func TestInsertSlice_Atomicity(t *testing.T) {
	v, err := fixvec.Of(4, 1, 2, 3)
	require.NoError(t, err)

	err = v.InsertSlice(1, []int{7, 8})
	require.ErrorIs(t, err, fixvec.ErrCapacityExceeded, "two values, one free slot")
	assert.Equal(t, []int{1, 2, 3}, v.Data(), "no partial insert")

	require.NoError(t, v.InsertSlice(1, nil), "empty block is a no-op")
	assert.Equal(t, []int{1, 2, 3}, v.Data(), "no-op left the contents alone")
}

// TestInsertRange drives the generic range insert from two different cores:
// a slice range and a storage-free counter.
func TestInsertRange(t *testing.T) {
	v, err := fixvec.Of(6, 1, 4)
	require.NoError(t, err)

	first, last := cursor.SliceRange([]int{9, 9})
	require.NoError(t, fixvec.InsertRange[int](v, 1, first, last), "slice-backed source")
	assert.Equal(t, []int{1, 9, 9, 4}, v.Data(), "range landed in source order")

	require.NoError(t, fixvec.InsertRange[int](v, 4, spanPos{i: 5}, spanPos{i: 7}), "computed source")
	assert.Equal(t, []int{1, 9, 9, 4, 5, 6}, v.Data(), "counter values landed at the hole")

	err = fixvec.InsertRange[int](v, 3, spanPos{i: 0}, spanPos{i: 1})
	assert.ErrorIs(t, err, fixvec.ErrCapacityExceeded, "full vector refuses the range")
	err = fixvec.InsertRange[int](v, 99, first, last)
	assert.ErrorIs(t, err, fixvec.ErrOutOfRange, "bad index refuses before draining")
}

// TestErase removes single elements from the front, middle and back.
func TestErase(t *testing.T) {
	v, err := fixvec.Of(5, 1, 2, 3, 4, 5)
	require.NoError(t, err)

	require.NoError(t, v.Erase(2), "middle erase closes the hole")
	assert.Equal(t, []int{1, 2, 4, 5}, v.Data(), "suffix shifted left")

	require.NoError(t, v.Erase(0), "front erase shifts everything")
	assert.Equal(t, []int{2, 4, 5}, v.Data(), "head removed")

	require.NoError(t, v.Erase(2), "back erase needs no shift")
	assert.Equal(t, []int{2, 4}, v.Data(), "tail removed")

	assert.ErrorIs(t, v.Erase(2), fixvec.ErrOutOfRange, "index must address a live element")
}

// TestEraseRange verifies the block erase: survivors close ranks, the
// element after the hole takes index first.
func TestEraseRange(t *testing.T) {
	v, err := fixvec.Of(4, 1, 2, 3, 4)
	require.NoError(t, err)

	require.NoError(t, v.EraseRange(1, 3), "erase the middle pair")
	assert.Equal(t, []int{1, 4}, v.Data(), "survivors in order")

	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 4, got, "the element after the hole now sits at index first")
}

// TestEraseRange_Edges covers the degenerate and invalid range pairs.
func TestEraseRange_Edges(t *testing.T) {
	v, err := fixvec.Of(3, 1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, v.EraseRange(1, 1), "empty range is a no-op")
	assert.Equal(t, []int{1, 2, 3}, v.Data(), "no-op erased nothing")

	assert.ErrorIs(t, v.EraseRange(2, 1), fixvec.ErrBadRange, "inverted pair")
	assert.ErrorIs(t, v.EraseRange(1, 4), fixvec.ErrBadRange, "last past Len")
	assert.ErrorIs(t, v.EraseRange(-1, 2), fixvec.ErrBadRange, "negative first")
	assert.Equal(t, []int{1, 2, 3}, v.Data(), "refusals left the contents alone")

	require.NoError(t, v.EraseRange(0, 3), "full-range erase empties the vector")
	assert.True(t, v.Empty(), "nothing survived")
	assert.Equal(t, 3, v.Cap(), "capacity survives")
}

// TestInsertEraseInverse checks the round trip: inserting a block and
// erasing the same index span restores the original contents.
func TestInsertEraseInverse(t *testing.T) {
	v, err := fixvec.Of(6, 1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, v.InsertSlice(1, []int{8, 9}))
	assert.Equal(t, []int{1, 8, 9, 2, 3}, v.Data(), "block in place")

	require.NoError(t, v.EraseRange(1, 3))
	assert.Equal(t, []int{1, 2, 3}, v.Data(), "erase undid the insert exactly")
}

// TestResize covers shrink, grow and the identity resize.
func TestResize(t *testing.T) {
	v, err := fixvec.Of(5, 1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, v.Resize(1), "shrink to one")
	assert.Equal(t, []int{1}, v.Data(), "prefix survives a shrink")

	require.NoError(t, v.Resize(3), "grow back")
	assert.Equal(t, []int{1, 0, 0}, v.Data(), "grown slots hold zero values")

	require.NoError(t, v.Resize(3), "resize to the current length")
	assert.Equal(t, []int{1, 0, 0}, v.Data(), "identity resize changes nothing")

	require.NoError(t, v.Resize(0), "resize to zero empties")
	assert.True(t, v.Empty(), "nothing live")
}

// TestResizeFill verifies growth with an explicit fill value and the two
// refusals.
func TestResizeFill(t *testing.T) {
	v, err := fixvec.Of(4, 1)
	require.NoError(t, err)

	require.NoError(t, v.ResizeFill(3, 7), "grow with sevens")
	assert.Equal(t, []int{1, 7, 7}, v.Data(), "fill value lands in the new slots")

	require.NoError(t, v.ResizeFill(4, 9), "growing to exactly the capacity is legal")
	assert.True(t, v.Full(), "capacity is a bound, not a watermark")

	assert.ErrorIs(t, v.ResizeFill(5, 0), fixvec.ErrCapacityExceeded, "past the capacity")
	assert.ErrorIs(t, v.ResizeFill(-1, 0), fixvec.ErrOutOfRange, "negative length")
	assert.Equal(t, []int{1, 7, 7, 9}, v.Data(), "refusals left the contents alone")
}

// TestAssign replaces the whole contents, including through the vector's
// own Data view.
func TestAssign(t *testing.T) {
	v, err := fixvec.Of(4, 1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, v.Assign(7, 8), "shorter replacement")
	assert.Equal(t, []int{7, 8}, v.Data(), "old contents fully replaced")

	require.NoError(t, v.Assign(v.Data()...), "self-assignment through Data")
	assert.Equal(t, []int{7, 8}, v.Data(), "self-assignment is the identity")

	err = v.Assign(1, 2, 3, 4, 5)
	require.ErrorIs(t, err, fixvec.ErrCapacityExceeded, "five values into capacity four")
	assert.Equal(t, []int{7, 8}, v.Data(), "failed assign changes nothing")
}

// TestAssignFill covers the repeat-value replacement.
func TestAssignFill(t *testing.T) {
	v, err := fixvec.Of(4, 1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, v.AssignFill(2, 5), "two fives")
	assert.Equal(t, []int{5, 5}, v.Data(), "fill replaced the contents")

	assert.ErrorIs(t, v.AssignFill(5, 0), fixvec.ErrCapacityExceeded, "count past the capacity")
	assert.ErrorIs(t, v.AssignFill(-1, 0), fixvec.ErrOutOfRange, "negative count")
}

// TestSwap_UnequalLengths exchanges contents between vectors of different
// lengths and capacities, then swaps back to prove the operation is its own
// inverse.
func TestSwap_UnequalLengths(t *testing.T) {
	a, err := fixvec.Of(3, 1, 2, 3)
	require.NoError(t, err)
	b, err := fixvec.Of(4, 4, 5)
	require.NoError(t, err)

	require.NoError(t, a.Swap(b), "both sides fit the other's capacity")
	assert.Equal(t, []int{4, 5}, a.Data(), "a took b's contents")
	assert.Equal(t, []int{1, 2, 3}, b.Data(), "b took a's contents")
	assert.Equal(t, 3, a.Cap(), "capacities do not travel")
	assert.Equal(t, 4, b.Cap(), "capacities do not travel")

	require.NoError(t, b.Swap(a), "swap back from the other side")
	assert.Equal(t, []int{1, 2, 3}, a.Data(), "double swap is the identity")
	assert.Equal(t, []int{4, 5}, b.Data(), "double swap is the identity")
}

// TestSwap_Refusals pins infeasible and degenerate swaps.
func TestSwap_Refusals(t *testing.T) {
	small, err := fixvec.Of(2, 1, 2)
	require.NoError(t, err)
	big, err := fixvec.Of(4, 7, 8, 9)
	require.NoError(t, err)

	err = small.Swap(big)
	require.ErrorIs(t, err, fixvec.ErrCapacityExceeded, "three values cannot enter capacity two")
	assert.Equal(t, []int{1, 2}, small.Data(), "failed swap changes neither side")
	assert.Equal(t, []int{7, 8, 9}, big.Data(), "failed swap changes neither side")

	require.NoError(t, small.Swap(small), "self-swap is a no-op")
	assert.Equal(t, []int{1, 2}, small.Data(), "self-swap changes nothing")

	assert.ErrorIs(t, small.Swap(nil), fixvec.ErrNilVector, "nil partner")
}

// TestSwap_WithEmpty verifies a swap against an empty vector is a move in
// both directions.
func TestSwap_WithEmpty(t *testing.T) {
	full, err := fixvec.Of(3, 1, 2, 3)
	require.NoError(t, err)
	empty, err := fixvec.New[int](3)
	require.NoError(t, err)

	require.NoError(t, full.Swap(empty), "empty side has room for everything")
	assert.True(t, full.Empty(), "contents left entirely")
	assert.Equal(t, []int{1, 2, 3}, empty.Data(), "contents arrived entirely")
}
