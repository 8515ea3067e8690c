// SPDX-License-Identifier: MIT
// Package cursor: position-level derivation helpers.
// These free functions synthesize movement, measurement and ordering for raw
// cores, without the bounded Iter adaptor and its range checks. Each picks
// the cheapest strategy the core's primitives allow and documents the cost of
// the fallback; none of them ever simulates an O(1) primitive silently where
// the caller asked for one (that gate lives in Validate).

package cursor

import (
	"fmt"
	"iter"
	"slices"
)

// Advance returns the position n steps away from c; n may be negative.
//
// Strategy: Jump when the core defines it, otherwise a counted walk (Next
// forward, Prev backward). A negative n on a core with neither Jump nor Prev
// returns ErrNoBackward and leaves nothing moved.
// Complexity: O(1) with Jump, O(|n|) without.
func Advance[C Position[C]](c C, n int) (C, error) {
	if j, ok := any(c).(Jumper[C]); ok {
		return j.Jump(n), nil
	}
	if n >= 0 {
		for ; n > 0; n-- {
			c = c.Next()
		}

		return c, nil
	}
	if _, ok := any(c).(Backward[C]); !ok {
		return c, fmt.Errorf("advance by %d: %w", n, ErrNoBackward)
	}
	// Every step stays in the concrete type C, so the per-step assertion
	// cannot fail after the probe above.
	for ; n < 0; n++ {
		c = any(c).(Backward[C]).Prev()
	}

	return c, nil
}

// Distance returns the number of forward steps that lead from `from` to
// `to`. With the measuring primitive the answer is signed and O(1). Without
// it the function counts a forward walk, so `to` must be reachable from
// `from`; an unreachable target never terminates, exactly like walking a raw
// core off its sequence.
func Distance[C Position[C]](from, to C) int {
	if m, ok := any(from).(Measurer[C]); ok {
		return m.Distance(to)
	}
	n := 0
	for !from.Equal(to) {
		from = from.Next()
		n++
	}

	return n
}

// Compare orders two positions of one sequence: -1 when a precedes b, 0 when
// they are equal, +1 when a follows b. Ordering is synthesized from the
// distance sign and is therefore only offered on measuring cores — the same
// gate Iter applies to its relational surface. Complexity: O(1).
func Compare[C Measurer[C]](a, b C) int {
	switch d := a.Distance(b); {
	case d > 0:
		return -1
	case d < 0:
		return 1
	default:
		return 0
	}
}

// Seq exposes [first, last) as a Go 1.23 push sequence, so any core drives
// range-for directly:
//
//	for v := range cursor.Seq[rune](first, last) {
//		...
//	}
//
// The element type is named at the call site; the core type is inferred.
// Single-pass cores are consumed by the walk. Complexity: O(distance).
func Seq[T any, C Core[C, T]](first, last C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := first; !c.Equal(last); c = c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Collect drains [first, last) into a fresh slice.
func Collect[T any, C Core[C, T]](first, last C) []T {
	return slices.Collect(Seq[T](first, last))
}
