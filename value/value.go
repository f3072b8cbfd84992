package value

import (
	"maps"
	"slices"
)

// Value is a copyable handle sharing ownership of exactly one Node. Copying
// a Value copies the handle, not the node, so copies alias the same node:
// container mutations (Push, Set, SetAt) through any alias are visible to
// all of them. Scalar reassignment (SetNull, SetBool, SetInt, SetNumber,
// SetString) instead rebinds the assigned handle to a fresh node, leaving
// prior aliases on the old one.
//
// The zero Value behaves as Null. New is the default-construction entry
// point and yields an empty object, matching the library convention that a
// default-constructed value behaves as an object.
type Value struct {
	node *Node
}

func (v Value) impl() *Node {
	if v.node == nil {
		return nullNode
	}
	return v.node
}

// Node returns the shared node behind this handle. It is the escape hatch
// for collaborators, such as a serializer walking the tree, that want to
// avoid redundant handle allocation.
func (v Value) Node() *Node { return v.impl() }

// FromNode builds a handle aliasing n. It does not validate the kind; that
// is the job of the Array and Object view constructors.
func FromNode(n *Node) Value {
	if n == nil {
		return Value{node: nullNode}
	}
	return Value{node: n}
}

// New returns the default-constructed value: an empty object.
func New() Value {
	return Value{node: &Node{kind: ObjectKind, obj: map[string]Value{}}}
}

// Null returns a handle on the canonical null node.
func Null() Value { return Value{node: nullNode} }

func FromBool(b bool) Value {
	if b {
		return Value{node: trueNode}
	}
	return Value{node: falseNode}
}

func FromInt(i int64) Value { return Value{node: &Node{kind: IntKind, i: i}} }

func FromNumber(f float64) Value { return Value{node: &Node{kind: NumberKind, f: f}} }

func FromString(s string) Value { return Value{node: &Node{kind: StringKind, s: s}} }

func FromBytes(d []byte) Value { return Value{node: &Node{kind: StringKind, s: string(d)}} }

func NewArray() Value { return Value{node: &Node{kind: ArrayKind}} }

func NewObject() Value {
	return Value{node: &Node{kind: ObjectKind, obj: map[string]Value{}}}
}

func (v Value) Kind() Kind { return v.impl().kind }

func (v Value) IsNull() bool   { return v.Kind() == NullKind }
func (v Value) IsBool() bool   { return v.Kind() == BoolKind }
func (v Value) IsInt() bool    { return v.Kind() == IntKind }
func (v Value) IsNumber() bool { return v.Kind() == NumberKind }
func (v Value) IsString() bool { return v.Kind() == StringKind }
func (v Value) IsArray() bool  { return v.Kind() == ArrayKind }
func (v Value) IsObject() bool { return v.Kind() == ObjectKind }

// ToBool returns the boolean payload. The kind must be exactly BoolKind;
// there is no coercion between kinds.
func (v Value) ToBool() (bool, error) {
	n := v.impl()
	if n.kind != BoolKind {
		return false, &KindError{Op: "ToBool", Want: BoolKind, Got: n.kind}
	}
	return n.b, nil
}

func (v Value) ToInt() (int64, error) {
	n := v.impl()
	if n.kind != IntKind {
		return 0, &KindError{Op: "ToInt", Want: IntKind, Got: n.kind}
	}
	return n.i, nil
}

func (v Value) ToNumber() (float64, error) {
	n := v.impl()
	if n.kind != NumberKind {
		return 0, &KindError{Op: "ToNumber", Want: NumberKind, Got: n.kind}
	}
	return n.f, nil
}

func (v Value) ToString() (string, error) {
	n := v.impl()
	if n.kind != StringKind {
		return "", &KindError{Op: "ToString", Want: StringKind, Got: n.kind}
	}
	return n.s, nil
}

// MustBool is ToBool for call sites that treat a kind mismatch as a
// programming error. It panics on mismatch.
func (v Value) MustBool() bool {
	b, err := v.ToBool()
	if err != nil {
		panic(err)
	}
	return b
}

func (v Value) MustInt() int64 {
	i, err := v.ToInt()
	if err != nil {
		panic(err)
	}
	return i
}

func (v Value) MustNumber() float64 {
	f, err := v.ToNumber()
	if err != nil {
		panic(err)
	}
	return f
}

func (v Value) MustString() string {
	s, err := v.ToString()
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of elements of an array value.
func (v Value) Len() (int, error) {
	n := v.impl()
	if n.kind != ArrayKind {
		return 0, &KindError{Op: "Len", Want: ArrayKind, Got: n.kind}
	}
	return len(n.arr), nil
}

// At returns the element at index i. Out-of-range indices are reported with
// a RangeError, never clamped and never mapped to null.
func (v Value) At(i int) (Value, error) {
	n := v.impl()
	if n.kind != ArrayKind {
		return Null(), &KindError{Op: "At", Want: ArrayKind, Got: n.kind}
	}
	if i < 0 || i >= len(n.arr) {
		return Null(), &RangeError{Op: "At", Index: i, Len: len(n.arr)}
	}
	return n.arr[i], nil
}

// SetAt replaces the element at index i in the shared node, visible to
// every alias of this handle.
func (v Value) SetAt(i int, x Value) error {
	n := v.impl()
	if n.kind != ArrayKind {
		return &KindError{Op: "SetAt", Want: ArrayKind, Got: n.kind}
	}
	if i < 0 || i >= len(n.arr) {
		return &RangeError{Op: "SetAt", Index: i, Len: len(n.arr)}
	}
	n.arr[i] = x
	return nil
}

// Push appends x to the shared array node, visible to every alias.
func (v Value) Push(x Value) error {
	n := v.impl()
	if n.kind != ArrayKind {
		return &KindError{Op: "Push", Want: ArrayKind, Got: n.kind}
	}
	n.arr = append(n.arr, x)
	return nil
}

// Size returns the number of entries of an object value.
func (v Value) Size() (int, error) {
	n := v.impl()
	if n.kind != ObjectKind {
		return 0, &KindError{Op: "Size", Want: ObjectKind, Got: n.kind}
	}
	return len(n.obj), nil
}

// Get returns the entry for key. A missing key yields the canonical null
// value, never an error; only a non-object kind is an error. This is the
// asymmetric counterpart of the array rule, where out-of-range fails.
func (v Value) Get(key string) (Value, error) {
	n := v.impl()
	if n.kind != ObjectKind {
		return Null(), &KindError{Op: "Get", Want: ObjectKind, Got: n.kind}
	}
	if x, ok := n.obj[key]; ok {
		return x, nil
	}
	return Null(), nil
}

// Set inserts or overwrites the entry for key in the shared object node.
func (v Value) Set(key string, x Value) error {
	n := v.impl()
	if n.kind != ObjectKind {
		return &KindError{Op: "Set", Want: ObjectKind, Got: n.kind}
	}
	if n.obj == nil {
		n.obj = map[string]Value{}
	}
	n.obj[key] = x
	return nil
}

// Keys returns the object's keys in sorted order. Iteration and comparison
// of objects are key-ordered, not insertion-ordered.
func (v Value) Keys() ([]string, error) {
	n := v.impl()
	if n.kind != ObjectKind {
		return nil, &KindError{Op: "Keys", Want: ObjectKind, Got: n.kind}
	}
	return slices.Sorted(maps.Keys(n.obj)), nil
}

// SetNull rebinds this handle to the canonical null node. Aliases of the
// previous node are unaffected.
func (v *Value) SetNull() { v.node = nullNode }

func (v *Value) SetBool(b bool) {
	if b {
		v.node = trueNode
	} else {
		v.node = falseNode
	}
}

func (v *Value) SetInt(i int64) { v.node = &Node{kind: IntKind, i: i} }

func (v *Value) SetNumber(f float64) { v.node = &Node{kind: NumberKind, f: f} }

func (v *Value) SetString(s string) { v.node = &Node{kind: StringKind, s: s} }

// Clone returns a deep copy of the value. Null and bool values keep their
// singleton nodes; everything else is independently allocated.
func (v Value) Clone() Value {
	n := v.impl()
	switch n.kind {
	case NullKind, BoolKind:
		return Value{node: n}
	case IntKind:
		return FromInt(n.i)
	case NumberKind:
		return FromNumber(n.f)
	case StringKind:
		return FromString(n.s)
	case ArrayKind:
		res := &Node{kind: ArrayKind}
		if n.arr != nil {
			res.arr = make([]Value, len(n.arr))
			for i, e := range n.arr {
				res.arr[i] = e.Clone()
			}
		}
		return Value{node: res}
	case ObjectKind:
		res := &Node{kind: ObjectKind, obj: make(map[string]Value, len(n.obj))}
		for k, e := range n.obj {
			res.obj[k] = e.Clone()
		}
		return Value{node: res}
	}
	return Null()
}

// Visit walks the tree rooted at v, calling f with post=false before
// descending and post=true after. Returning false from the pre call skips
// the children. Object entries are visited in key order.
func (v Value) Visit(f func(v Value, post bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		n := v.impl()
		switch n.kind {
		case ArrayKind:
			for _, e := range n.arr {
				if err := e.Visit(f); err != nil {
					return err
				}
			}
		case ObjectKind:
			for _, k := range slices.Sorted(maps.Keys(n.obj)) {
				if err := n.obj[k].Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
