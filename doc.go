// Package stride turns a handful of primitive cursor operations into the
// full traversal surface idiomatic Go expects — iterators, reversal,
// comparisons and range-for support — plus a fixed-capacity vector built
// on top of it.
//
// 🚀 What is stride?
//
//	A small, single-threaded library that completes interfaces for you:
//		• Primitive vocabulary: Next, Equal, Value — plus optional Prev,
//		  Jump, Distance and Addr
//		• Capability tiers: single-pass → forward → bidirectional →
//		  random-access → contiguous, each a strict superset of the last
//		• Bounded iteration: Valid/Next loops, Seek, Advance, At,
//		  three-way Compare — synthesized from whatever primitives exist
//		• Reversal: wrap any bidirectional cursor and walk it backwards
//		• fixvec: a vector with inline-style storage whose capacity is
//		  fixed at construction — no reallocation, ever
//
// ✨ Why choose stride?
//
//   - Write five methods, get the whole surface — derivation is automatic
//   - Honest complexity – random-access operations are never silently
//     simulated by linear walks on weaker cursors
//   - Errors, not panics – every precondition violation is a sentinel
//     you can errors.Is against
//   - Pure Go – no cgo, no reflection in steady state, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	cursor/ — primitive vocabulary, capability tiers, bounded iterators,
//	          reversal adaptors and the slice reference cursor
//	fixvec/ — the fixed-capacity vector and its algorithms
//
// Quick ASCII example:
//
//	    [ 1 │ 2 │ 3 │ 4 ]──┐ capacity 4, full
//	      ▲           ▲    │
//	    first       last   └─ PushBack → ErrCapacityExceeded
//
//	a fixed-capacity vector and the bounded cursor pair over it.
//
// Dive into the package docs of cursor and fixvec for derivation rules,
// capability tables and worked examples.
//
//	go get github.com/go-stride/stride
package stride
