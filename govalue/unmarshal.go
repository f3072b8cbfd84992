package govalue

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/json-toolkit/go-json/value"
)

// Unmarshal fills target, which must be a non-nil pointer, from a value
// tree. Null sets the zero value. Int values fit int targets and float
// targets; Number values fit float targets only. Absent object keys leave
// struct fields untouched.
func Unmarshal(v value.Value, target any) error {
	if target == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if rv.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return unmarshalReflect(v, rv.Elem(), "")
}

func unmarshalReflect(v value.Value, rv reflect.Value, fieldPath string) error {
	if !rv.CanSet() {
		return &UnmarshalError{FieldPath: fieldPath, Message: "destination is not settable"}
	}
	if v.IsNull() {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalReflect(v, rv.Elem(), fieldPath)
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot unmarshal into non-empty interface %s", rv.Type()),
			}
		}
		rv.Set(reflect.ValueOf(ToAny(v)))
		return nil
	case reflect.Bool:
		b, err := v.ToBool()
		if err != nil {
			return typeErr(fieldPath, "Bool", v)
		}
		rv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := v.ToInt()
		if err != nil {
			return typeErr(fieldPath, "Int", v)
		}
		if rv.OverflowInt(i) {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("value %d overflows %s", i, rv.Type()),
			}
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, err := v.ToInt()
		if err != nil {
			return typeErr(fieldPath, "Int", v)
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("value %d overflows %s", i, rv.Type()),
			}
		}
		rv.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		switch v.Kind() {
		case value.NumberKind:
			rv.SetFloat(v.MustNumber())
		case value.IntKind:
			rv.SetFloat(float64(v.MustInt()))
		default:
			return typeErr(fieldPath, "Number", v)
		}
		return nil
	case reflect.String:
		s, err := v.ToString()
		if err != nil {
			return typeErr(fieldPath, "String", v)
		}
		rv.SetString(s)
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 && v.IsString() {
			rv.SetBytes([]byte(v.MustString()))
			return nil
		}
		if v.Kind() != value.ArrayKind {
			return typeErr(fieldPath, "Array", v)
		}
		data := v.ToArray().Data()
		out := reflect.MakeSlice(rv.Type(), len(data), len(data))
		for i, e := range data {
			if err := unmarshalReflect(e, out.Index(i), fieldPath+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("map key type %s is not a string", rv.Type().Key()),
			}
		}
		if v.Kind() != value.ObjectKind {
			return typeErr(fieldPath, "Object", v)
		}
		obj := v.ToObject().Data()
		out := reflect.MakeMapWithSize(rv.Type(), len(obj))
		for k, e := range obj {
			ev := reflect.New(rv.Type().Elem()).Elem()
			if err := unmarshalReflect(e, ev, joinPath(fieldPath, k)); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), ev)
		}
		rv.Set(out)
		return nil
	case reflect.Struct:
		if v.Kind() != value.ObjectKind {
			return typeErr(fieldPath, "Object", v)
		}
		return unmarshalStruct(v, rv, fieldPath)
	}
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type %s", rv.Type()),
	}
}

func unmarshalStruct(v value.Value, rv reflect.Value, fieldPath string) error {
	obj := v.ToObject().Data()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, skip := fieldTag(sf)
		if skip {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && !tagged(sf) {
			if err := unmarshalStruct(v, rv.Field(i), fieldPath); err != nil {
				return err
			}
			continue
		}
		e, ok := obj[name]
		if !ok {
			continue
		}
		if err := unmarshalReflect(e, rv.Field(i), joinPath(fieldPath, name)); err != nil {
			return err
		}
	}
	return nil
}

func typeErr(fieldPath, expected string, v value.Value) error {
	return &TypeError{FieldPath: fieldPath, Expected: expected, Actual: v.Kind().String()}
}
