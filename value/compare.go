package value

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values in a total order.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Kinds rank in declared order: Null < Bool < Int < Number < String <
// Array < Object; differing kinds are never equal. Within a kind: false <
// true; ints and numbers compare numerically (NaN ordering is whatever
// cmp.Compare does for floats); strings compare bytewise; arrays compare
// by length first, then element-wise; objects compare by entry count
// first, then by the key-sorted (key, value) sequence.
func Compare(a, b Value) int {
	an, bn := a.impl(), b.impl()
	if an == bn {
		return 0
	}
	if an.kind != bn.kind {
		return cmp.Compare(an.kind, bn.kind)
	}

	switch an.kind {
	case NullKind:
		return 0
	case BoolKind:
		if an.b == bn.b {
			return 0
		}
		if !an.b {
			return -1
		}
		return 1
	case IntKind:
		return cmp.Compare(an.i, bn.i)
	case NumberKind:
		return cmp.Compare(an.f, bn.f)
	case StringKind:
		return strings.Compare(an.s, bn.s)
	case ArrayKind:
		return compareArrays(an, bn)
	case ObjectKind:
		return compareObjects(an, bn)
	}
	return 0
}

func compareArrays(a, b *Node) int {
	if c := cmp.Compare(len(a.arr), len(b.arr)); c != 0 {
		return c
	}
	for i := range a.arr {
		if c := Compare(a.arr[i], b.arr[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareObjects(a, b *Node) int {
	if c := cmp.Compare(len(a.obj), len(b.obj)); c != 0 {
		return c
	}
	aKeys, _ := Value{node: a}.Keys()
	bKeys, _ := Value{node: b}.Keys()
	for i := range aKeys {
		if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		if c := Compare(a.obj[aKeys[i]], b.obj[bKeys[i]]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports structural equality. Two handles aliasing the identical
// node are equal without a traversal; otherwise kinds must match and
// Compare must be zero.
func Equal(a, b Value) bool {
	if a.impl() == b.impl() {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return Compare(a, b) == 0
}
