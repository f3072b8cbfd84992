// Package value provides a dynamically-typed value representation for the
// JSON data model: null, boolean, integer, floating-point number, string,
// array and object.
//
// # Nodes and handles
//
// Every value is a heap-resident Node carrying a fixed Kind tag and a
// kind-specific payload. Callers never touch nodes directly; they hold
// Value handles, which share ownership of a node. Copying a Value copies
// the handle only, so copies alias the same node:
//
//	a := value.NewArray()
//	b := a
//	a.Push(value.FromInt(1)) // visible through b too
//
// Container mutation (Push, Set, SetAt) goes through the shared node and is
// seen by every alias. Scalar reassignment detaches instead: it rebinds the
// assigned handle to a fresh node and leaves the other aliases on the old
// one:
//
//	var c value.Value = a
//	c.SetInt(5) // a and b still observe the array
//
// Null, true and false are canonical singleton nodes, so any two handles
// built from the same one of them alias the identical node.
//
// # Views
//
// ToArray and ToObject narrow a handle to a container view without ever
// failing: on kind mismatch the view aliases the canonical null node and
// reports NullKind. Views expose the underlying sequence or mapping
// directly for bulk work.
//
// # Errors
//
// Kind-sensitive operations return errors in the ErrKindMismatch category;
// out-of-range array access returns ErrIndexRange. The Must* accessors are
// the unchecked variant and panic on mismatch. Two lookups deliberately
// soft-fail with null instead of erroring: reading an absent object key,
// and narrowing a mismatched view.
//
// # Ordering
//
// Compare defines a total order over all values, kind rank first, and Equal
// is structural equality with a pointer-identity fast path. See Compare for
// the within-kind rules.
//
// # Concurrency
//
// Handles are not synchronized. Mutating aliased values from multiple
// goroutines is a data race; callers must serialize writers or Clone
// subtrees per goroutine. The singletons are immutable and safe to share.
package value
