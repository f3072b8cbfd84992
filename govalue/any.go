package govalue

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/json-toolkit/go-json/value"
)

// FromAny converts a Go value to a value tree. Scalars, json.Number,
// []any, map[string]any, and value types pass through directly; anything
// else goes through the reflection mapper (see Marshal).
func FromAny(v any) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Null(), nil
	case value.Value:
		return x, nil
	case *value.Node:
		return value.FromNode(x), nil
	case bool:
		return value.FromBool(x), nil
	case string:
		return value.FromString(x), nil
	case []byte:
		return value.FromBytes(x), nil
	case int:
		return value.FromInt(int64(x)), nil
	case int8:
		return value.FromInt(int64(x)), nil
	case int16:
		return value.FromInt(int64(x)), nil
	case int32:
		return value.FromInt(int64(x)), nil
	case int64:
		return value.FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return value.FromInt(int64(x)), nil
	case uint16:
		return value.FromInt(int64(x)), nil
	case uint32:
		return value.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return value.FromNumber(float64(x)), nil
	case float64:
		return value.FromNumber(x), nil
	case json.Number:
		return fromNumber(x)
	case []any:
		res := value.NewArray()
		for i, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return value.Null(), &MarshalError{
					FieldPath: "[" + strconv.Itoa(i) + "]", Message: "cannot convert element", Err: err,
				}
			}
			res.Push(ev)
		}
		return res, nil
	case map[string]any:
		res := value.NewObject()
		for k, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return value.Null(), &MarshalError{FieldPath: k, Message: "cannot convert entry", Err: err}
			}
			res.Set(k, ev)
		}
		return res, nil
	case []value.Value:
		res := value.NewArray()
		for _, e := range x {
			res.Push(e)
		}
		return res, nil
	case map[string]value.Value:
		res := value.NewObject()
		for k, e := range x {
			res.Set(k, e)
		}
		return res, nil
	}
	return Marshal(v)
}

func fromUint(x uint64) (value.Value, error) {
	if x > math.MaxInt64 {
		return value.FromNumber(float64(x)), nil
	}
	return value.FromInt(int64(x)), nil
}

func fromNumber(x json.Number) (value.Value, error) {
	if i, err := x.Int64(); err == nil {
		return value.FromInt(i), nil
	}
	f, err := x.Float64()
	if err != nil {
		return value.Null(), &MarshalError{Message: "unrepresentable number " + x.String(), Err: err}
	}
	return value.FromNumber(f), nil
}

// ToAny converts a value tree to plain Go data: nil, bool, int64, float64,
// string, []any and map[string]any.
func ToAny(v value.Value) any {
	switch v.Kind() {
	case value.NullKind:
		return nil
	case value.BoolKind:
		return v.MustBool()
	case value.IntKind:
		return v.MustInt()
	case value.NumberKind:
		return v.MustNumber()
	case value.StringKind:
		return v.MustString()
	case value.ArrayKind:
		data := v.ToArray().Data()
		res := make([]any, len(data))
		for i, e := range data {
			res[i] = ToAny(e)
		}
		return res
	case value.ObjectKind:
		obj := v.ToObject().Data()
		res := make(map[string]any, len(obj))
		for k, e := range obj {
			res[k] = ToAny(e)
		}
		return res
	}
	return nil
}
