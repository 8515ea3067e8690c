// Package cursor synthesizes full iterator surfaces from minimal position
// primitives, with capability tags deciding what may be derived and how.
//
// 🚀 What is cursor?
//
//	You write a tiny "core" type — Next, Equal, Value, plus whichever of
//	Prev, Jump, Distance and Addr your sequence can afford — and cursor
//	derives the rest: bounded Valid/Next loops, seeking, offset reads,
//	three-way ordering, reversal and range-for sequences. It's used for:
//	  • giving custom containers a conventional iterator in a few lines
//	  • walking computed sequences that exist nowhere in memory
//	  • adapting existing traversals (trees, ropes, decoders) to range-for
//	  • reversing any bidirectional walk without rewriting it
//
// ✨ Key features:
//   - five capability tiers: SinglePass → Forward → Bidirectional →
//     RandomAccess → Contiguous, each a strict superset of the last
//   - claims are checked before a cursor exists: the typed constructors
//     reject missing primitives at compile time, New at construction time
//     (ErrMissingPrimitive names the absent method)
//   - honest complexity: O(1) operations are synthesized only from O(1)
//     primitives; counted-walk fallbacks are documented and never cross
//     a tier's promise
//   - value-semantics positions: no boxing on the hot movement path
//   - Go 1.23 iter.Seq bridges on every tier
//
// ⚙️ Usage:
//
//	import "github.com/go-stride/stride/cursor"
//
//	first, last := cursor.SliceRange([]int{1, 2, 3, 4})
//	it, err := cursor.NewContiguous[int](first, last)
//	if err != nil { ... }
//
//	for it.SeekFirst(); it.Valid(); it.Next() {
//	  fmt.Println(it.Value())
//	}
//
//	// or, reversed and range-for:
//	rf, rl := cursor.ReverseRandomRange[int](first, last)
//	for v := range cursor.Seq[int](rf, rl) { ... }
//
// Generic call sites name the element type and let the core type be
// inferred: cursor.New[int](cursor.Forward, first, last). Constraint
// interfaces (Core, BidiCore, RandomCore, ContigCore) take the core type
// first, since they are spelled out only in declarations.
//
// Concurrency: none. A cursor is a single-owner value; share one across
// goroutines only behind your own synchronization.
//
// Errors: construction returns sentinel errors (ErrMissingPrimitive,
// ErrUnknownCapability, ErrBadRange) matched via errors.Is. After
// construction, movement reports exhaustion through bools, never errors.
//
// See example_test.go for worked cores, including a consumable single-pass
// reader and a linked-list position.
package cursor
