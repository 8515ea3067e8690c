// SPDX-License-Identifier: MIT
// Shared fixture cores for the cursor tests. Three hand-rolled cores cover
// the tiers SlicePos does not reach: a forward-only counter, a doubly-linked
// list position (bidirectional, no random access), and a consuming
// single-pass scanner with shared state.

package cursor_test

import "github.com/go-stride/stride/cursor"

// countPos walks an arithmetic sequence and reads the counter itself as the
// element: a forward-only core with no Prev, no Jump, no Distance.
type countPos struct {
	n int
}

func (p countPos) Next() countPos { return countPos{n: p.n + 1} }
func (p countPos) Equal(other countPos) bool { return p.n == other.n }
func (p countPos) Value() int { return p.n }

// countRange returns the [first, last) pair over [lo, hi).
func countRange(lo, hi int) (countPos, countPos) {
	return countPos{n: lo}, countPos{n: hi}
}

var _ cursor.Core[countPos, int] = countPos{}

// lnode is one cell of the doubly-linked list behind listPos.
type lnode struct {
	val        string
	prev, next *lnode
}

// listPos denotes a node in a doubly-linked list; a nil node is the end
// position. Bidirectional by nature, with no O(1) jumps or distances.
type listPos struct {
	at   *lnode
	tail *lnode // lets Prev step back from the end position
}

func (p listPos) Next() listPos { return listPos{at: p.at.next, tail: p.tail} }

func (p listPos) Prev() listPos {
	if p.at == nil {
		return listPos{at: p.tail, tail: p.tail}
	}

	return listPos{at: p.at.prev, tail: p.tail}
}

func (p listPos) Equal(other listPos) bool { return p.at == other.at }
func (p listPos) Value() string { return p.at.val }

var _ cursor.BidiCore[listPos, string] = listPos{}

// newList links vals into a fresh list and returns its [first, last) pair.
func newList(vals ...string) (listPos, listPos) {
	var head, tail *lnode
	for _, v := range vals {
		n := &lnode{val: v, prev: tail}
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	return listPos{at: head, tail: tail}, listPos{at: nil, tail: tail}
}

// sqPos indexes the computed sequence of squares: random access over values
// that exist nowhere in memory. It defines Jump and Distance but deliberately
// no Prev, so backward movement must be derived from Jump(-1).
type sqPos struct {
	i int
}

func (p sqPos) Next() sqPos { return sqPos{i: p.i + 1} }
func (p sqPos) Jump(n int) sqPos { return sqPos{i: p.i + n} }
func (p sqPos) Equal(other sqPos) bool { return p.i == other.i }
func (p sqPos) Value() int { return p.i * p.i }
func (p sqPos) Distance(to sqPos) int { return to.i - p.i }

// sqRange returns the [first, last) pair over the squares of [lo, hi).
func sqRange(lo, hi int) (sqPos, sqPos) {
	return sqPos{i: lo}, sqPos{i: hi}
}

var _ cursor.RandomCore[sqPos, int] = sqPos{}

// drainState is the consumable state every drainPos of one sequence shares.
type drainState struct {
	data []byte
	i    int
}

// drainPos models a consuming scanner: stepping any position advances the
// shared state, so old positions are dead the moment anything moves. The
// zero value is the end sentinel. Equality distinguishes only exhausted from
// not-exhausted, which is all a single sweep ever compares.
type drainPos struct {
	st *drainState
}

func (p drainPos) done() bool { return p.st == nil || p.st.i >= len(p.st.data) }

func (p drainPos) Next() drainPos {
	p.st.i++
	return p
}

func (p drainPos) Equal(other drainPos) bool { return p.done() == other.done() }
func (p drainPos) Value() byte { return p.st.data[p.st.i] }

var _ cursor.Core[drainPos, byte] = drainPos{}

// newDrain returns the [first, last) pair over a fresh consumable copy of s.
func newDrain(s string) (drainPos, drainPos) {
	return drainPos{st: &drainState{data: []byte(s)}}, drainPos{}
}
