package value

// Array is a Value narrowed to ArrayKind at construction. Narrowing never
// fails: if the source is not an array, the view aliases the canonical null
// node and reports NullKind.
type Array struct {
	Value
}

// ToArray narrows v to an array view, or to null on kind mismatch.
func (v Value) ToArray() Array {
	n := v.impl()
	if n.kind != ArrayKind {
		return Array{Value{node: nullNode}}
	}
	return Array{Value{node: n}}
}

// Data returns the live element slice of the shared node. Element writes
// through it are visible to every alias; growing it must go through Push.
// A nullified view returns nil.
func (a Array) Data() []Value {
	n := a.impl()
	if n.kind != ArrayKind {
		return nil
	}
	return n.arr
}

// Object is a Value narrowed to ObjectKind at construction, with the same
// narrow-or-nullify behavior as Array.
type Object struct {
	Value
}

// ToObject narrows v to an object view, or to null on kind mismatch.
func (v Value) ToObject() Object {
	n := v.impl()
	if n.kind != ObjectKind {
		return Object{Value{node: nullNode}}
	}
	return Object{Value{node: n}}
}

// Data returns the live mapping of the shared node. Writes through it are
// visible to every alias. Use Keys for deterministic, key-ordered
// iteration. A nullified view returns nil.
func (o Object) Data() map[string]Value {
	n := o.impl()
	if n.kind != ObjectKind {
		return nil
	}
	return n.obj
}
