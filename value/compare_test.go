package value

import (
	"testing"
)

func arrayOf(vs ...Value) Value {
	a := NewArray()
	for _, v := range vs {
		a.Push(v)
	}
	return a
}

func objectOf(kvs map[string]Value) Value {
	o := NewObject()
	for k, v := range kvs {
		o.Set(k, v)
	}
	return o
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected int
	}{
		// Kind ranking: Null < Bool < Int < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Int", FromBool(true), FromInt(0), -1},
		{"Int < Number", FromInt(1), FromNumber(0.5), -1},
		{"Number < String", FromNumber(1e9), FromString(""), -1},
		{"String < Array", FromString("zzz"), NewArray(), -1},
		{"Array < Object", NewArray(), NewObject(), -1},

		{"Null == Null", Null(), Null(), 0},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Int == Int", FromInt(7), FromInt(7), 0},
		{"negative Int", FromInt(-1), FromInt(1), -1},
		{"Number < Number", FromNumber(1.0), FromNumber(2.0), -1},
		{"Number == Number", FromNumber(3.5), FromNumber(3.5), 0},

		{"String < String", FromString("a"), FromString("b"), -1},
		{"String prefix", FromString("a"), FromString("ab"), -1},
		{"String == String", FromString("x"), FromString("x"), 0},

		{"Empty Array == Empty Array", NewArray(), NewArray(), 0},
		{"Short Array < Long Array", arrayOf(FromInt(1), FromInt(2)), arrayOf(FromInt(1), FromInt(2), FromInt(3)), -1},
		{"Array element comparison", arrayOf(FromInt(1), FromInt(3)), arrayOf(FromInt(1), FromInt(2)), 1},
		{"Array length beats elements", arrayOf(FromInt(9)), arrayOf(FromInt(1), FromInt(1)), -1},

		{"Empty Object == Empty Object", NewObject(), NewObject(), 0},
		{"Short Object < Long Object",
			objectOf(map[string]Value{"a": FromInt(1)}),
			objectOf(map[string]Value{"a": FromInt(1), "b": FromInt(2)}),
			-1},
		{"Object key comparison",
			objectOf(map[string]Value{"a": FromInt(1)}),
			objectOf(map[string]Value{"b": FromInt(1)}),
			-1},
		{"Object value comparison",
			objectOf(map[string]Value{"a": FromInt(1)}),
			objectOf(map[string]Value{"a": FromInt(2)}),
			-1},
		{"Object key order is sorted",
			objectOf(map[string]Value{"b": FromInt(2), "a": FromInt(1)}),
			objectOf(map[string]Value{"a": FromInt(1), "b": FromInt(2)}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// antisymmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			// reflexivity
			if got := Compare(tt.a, tt.a); got != 0 {
				t.Errorf("Compare(a, a) = %v, want 0", got)
			}
		})
	}
}

func TestCompareNoCoercion(t *testing.T) {
	// Int and Number never compare equal, even for the same numeric value.
	if got := Compare(FromInt(1), FromNumber(1.0)); got != -1 {
		t.Errorf("Compare(1, 1.0) = %v, want -1", got)
	}
	if Equal(FromInt(1), FromNumber(1.0)) {
		t.Error("Equal(1, 1.0) = true, want false")
	}
}

func TestCompareTransitivity(t *testing.T) {
	// A mixed-kind chain must stay totally ordered.
	chain := []Value{
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(-1),
		FromInt(3),
		FromNumber(0.5),
		FromString("a"),
		FromString("b"),
		arrayOf(FromInt(1)),
		arrayOf(FromInt(1), FromInt(2)),
		objectOf(map[string]Value{"a": FromInt(1)}),
	}
	for i := range chain {
		for j := range chain {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := Compare(chain[i], chain[j]); got != want {
				t.Errorf("Compare(chain[%d], chain[%d]) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	a := arrayOf(FromInt(1), FromString("two"), FromBool(true))
	b := arrayOf(FromInt(1), FromString("two"), FromBool(true))
	if !Equal(a, b) {
		t.Error("independently built equal arrays: Equal = false")
	}
	c := arrayOf(FromString("two"), FromInt(1), FromBool(true))
	if Equal(a, c) {
		t.Error("reordered arrays: Equal = true")
	}

	// pointer-identity fast path
	d := a
	if !Equal(a, d) {
		t.Error("aliased handles: Equal = false")
	}
	if a.Node() != d.Node() {
		t.Error("aliased handles do not share a node")
	}
}

func TestSingletonIdentity(t *testing.T) {
	if Null().Node() != Null().Node() {
		t.Error("two null handles do not alias the same node")
	}
	if FromBool(true).Node() != FromBool(true).Node() {
		t.Error("two true handles do not alias the same node")
	}
	if FromBool(false).Node() != FromBool(false).Node() {
		t.Error("two false handles do not alias the same node")
	}
	if FromBool(true).Node() == FromBool(false).Node() {
		t.Error("true and false share a node")
	}
	// identity is not a general substitute for equality
	if FromInt(1).Node() == FromInt(1).Node() {
		t.Error("int nodes unexpectedly shared")
	}
}
