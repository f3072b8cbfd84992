package govalue

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/json-toolkit/go-json/value"
)

// Marshal converts an arbitrary Go value to a value tree by reflection.
// Struct fields honor `json` tags (renaming, "-", omitempty); unexported
// fields are skipped; anonymous embedded structs are flattened.
func Marshal(v any) (value.Value, error) {
	return marshalReflect(reflect.ValueOf(v), "")
}

func marshalReflect(rv reflect.Value, fieldPath string) (value.Value, error) {
	if !rv.IsValid() {
		return value.Null(), nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return value.Null(), nil
		}
		return marshalReflect(rv.Elem(), fieldPath)
	case reflect.Bool:
		return value.FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return value.FromNumber(rv.Float()), nil
	case reflect.String:
		return value.FromString(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return value.FromBytes(rv.Bytes()), nil
		}
		res := value.NewArray()
		for i := 0; i < rv.Len(); i++ {
			ev, err := marshalReflect(rv.Index(i), fieldPath+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return value.Null(), err
			}
			res.Push(ev)
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value.Null(), &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("map key type %s is not a string", rv.Type().Key()),
			}
		}
		res := value.NewObject()
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			ev, err := marshalReflect(iter.Value(), joinPath(fieldPath, k))
			if err != nil {
				return value.Null(), err
			}
			res.Set(k, ev)
		}
		return res, nil
	case reflect.Struct:
		res := value.NewObject()
		if err := marshalStruct(rv, res, fieldPath); err != nil {
			return value.Null(), err
		}
		return res, nil
	}
	return value.Null(), &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type %s", rv.Type()),
	}
}

func marshalStruct(rv reflect.Value, res value.Value, fieldPath string) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, omitEmpty, skip := fieldTag(sf)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && !tagged(sf) {
			if err := marshalStruct(fv, res, fieldPath); err != nil {
				return err
			}
			continue
		}
		if omitEmpty && fv.IsZero() {
			continue
		}
		ev, err := marshalReflect(fv, joinPath(fieldPath, name))
		if err != nil {
			return err
		}
		res.Set(name, ev)
	}
	return nil
}

func fieldTag(sf reflect.StructField) (name string, omitEmpty, skip bool) {
	name = sf.Name
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return name, false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}
	if parts[0] != "" {
		name = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func tagged(sf reflect.StructField) bool {
	_, ok := sf.Tag.Lookup("json")
	return ok
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
