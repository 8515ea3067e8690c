// Package fixvec implements a fixed-capacity vector: contiguous inline
// storage whose capacity is chosen once at construction and never moves.
//
// 🚀 What is fixvec?
//
//	A Vector[T] owns exactly capacity slots for its whole lifetime. Elements
//	live in a contiguous prefix; pushes, inserts and erases shift within the
//	same buffer, and nothing ever reallocates, so pointers from Ptr and Data
//	stay valid until the element itself is overwritten or erased. It's used
//	for:
//	  • bounded buffers whose overflow must be an error, not a growth
//	  • hot paths that cannot tolerate reallocation or GC churn
//	  • modelling protocol fields and tables with hard size limits
//	  • value-dense scratch space reused across iterations via Clear
//
// ✨ Key features:
//   - the full sequence surface: push/pop, positional insert and erase,
//     range erase, resize, assign, whole-vector Swap and Take
//   - overflow is always ErrCapacityExceeded and always detected before
//     anything mutates; a failed operation leaves the vector unchanged
//   - vacated slots are zeroed immediately, so pointer-bearing elements
//     never linger beyond their erase
//   - relational helpers (Equal, Compare, Less) ordering by live elements
//     only, never by capacity
//   - cursor integration: Begin/End positions, contiguous and reversed
//     iterators, and iter.Seq streams for range-for loops
//
// ⚙️ Usage:
//
//	import "github.com/go-stride/stride/fixvec"
//
//	v, err := fixvec.New[int](4, fixvec.WithValues(1, 2, 3))
//	if err != nil { ... }
//
//	_ = v.PushBack(4)          // full now
//	err = v.PushBack(5)        // fixvec.ErrCapacityExceeded
//
//	for x := range v.Values() {
//	  fmt.Println(x)
//	}
//
// Concurrency: none. A Vector is a single-owner value; share one across
// goroutines only behind your own synchronization.
//
// Errors: every fallible operation returns a package sentinel (see
// errors.go) matched via errors.Is; constructors wrap them with the
// offending counts. Read accessors return the sentinel bare.
//
// See example_test.go for the insert/erase algebra and the Swap semantics.
package fixvec
