package search

import (
	"fmt"
	"reflect"
	"strings"
)

// Field selects one searchable attribute of a record.
type Field[T any] struct {
	Name  string
	Value func(T) any
}

// F builds a Field from an accessor.
func F[T any](name string, value func(T) any) Field[T] {
	return Field[T]{Name: name, Value: value}
}

// ByName resolves fields by name on struct records, matching the Go field
// name, its json tag or its db tag, or on map records keyed by string.
// Pointers to structs are dereferenced; a nil record yields nil values.
func ByName[T any](names ...string) ([]Field[T], error) {
	typ := reflect.TypeFor[T]()
	base := typ
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	fields := make([]Field[T], 0, len(names))
	switch base.Kind() {
	case reflect.Map:
		if base.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s is not string", ErrUnknownField, base.Key())
		}
		for _, name := range names {
			key := reflect.ValueOf(name).Convert(base.Key())
			fields = append(fields, Field[T]{
				Name: name,
				Value: func(rec T) any {
					v, ok := indirect(reflect.ValueOf(&rec).Elem())
					if !ok || v.IsNil() {
						return nil
					}
					mv := v.MapIndex(key)
					if !mv.IsValid() {
						return nil
					}
					return mv.Interface()
				},
			})
		}
	case reflect.Struct:
		for _, name := range names {
			index, ok := lookupStructField(base, name)
			if !ok {
				return nil, fmt.Errorf("%w: %q on %s", ErrUnknownField, name, base)
			}
			fields = append(fields, Field[T]{
				Name: name,
				Value: func(rec T) any {
					v, ok := indirect(reflect.ValueOf(&rec).Elem())
					if !ok {
						return nil
					}
					return v.FieldByIndex(index).Interface()
				},
			})
		}
	default:
		return nil, fmt.Errorf("%w: %s is neither a struct nor a map", ErrUnknownField, typ)
	}
	return fields, nil
}

// MustByName is like ByName but panics on unknown fields.
func MustByName[T any](names ...string) []Field[T] {
	fields, err := ByName[T](names...)
	if err != nil {
		panic(err)
	}
	return fields
}

func lookupStructField(typ reflect.Type, name string) ([]int, bool) {
	for i := range typ.NumField() {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Name == name || tagName(sf, "json") == name || tagName(sf, "db") == name {
			return sf.Index, true
		}
	}
	return nil, false
}

func tagName(sf reflect.StructField, key string) string {
	tag, _, _ := strings.Cut(sf.Tag.Get(key), ",")
	return tag
}

// indirect dereferences pointers. It reports false when a nil pointer is hit.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, true
}
