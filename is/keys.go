package is

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// OwnKeys returns the own, enumerable, string keys of v:
//
//   - *Object: keys in insertion order
//   - string-keyed maps: keys sorted, since Go maps keep no order
//   - structs (or pointers to them): direct exported fields in declaration
//     order, named by their json tag when present; embedded fields are
//     inherited, not own
//   - slices and arrays: the indices "0" to "n-1"
//
// Any other non-null value has no own keys. nil and Undefined fail with
// ErrInvalidArgument.
func OwnKeys(v any) ([]string, error) {
	v = normalize(v)
	switch t := v.(type) {
	case nil, undefined:
		return nil, fmt.Errorf("%w: got %s", ErrInvalidArgument, KindOf(v))
	case *Object:
		return t.Keys(), nil
	}
	return ownKeysOf(reflect.ValueOf(v)), nil
}

func ownKeysOf(rv reflect.Value) []string {
	base := indirect(rv)
	if !base.IsValid() {
		return []string{}
	}

	switch base.Kind() {
	case reflect.Map:
		if base.Type().Key().Kind() != reflect.String {
			return []string{}
		}
		keys := make([]string, 0, base.Len())
		iter := base.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)
		return keys
	case reflect.Struct:
		return structKeys(base.Type())
	case reflect.Slice, reflect.Array:
		keys := make([]string, base.Len())
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	}
	return []string{}
}

func structKeys(t reflect.Type) []string {
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		if name := fieldKey(field); name != "-" {
			keys = append(keys, name)
		}
	}
	return keys
}

// fieldKey is the property name of a struct field: its json name if tagged,
// otherwise the Go field name.
func fieldKey(field reflect.StructField) string {
	if tag := field.Tag.Get("json"); tag != "" {
		if name := strings.Split(tag, ",")[0]; name != "" {
			return name
		}
	}
	return field.Name
}

// structField resolves key against the exported fields of a struct value,
// including fields promoted from embedded structs.
func structField(base reflect.Value, key string) (reflect.Value, bool) {
	t := base.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.IsExported() && !field.Anonymous && fieldKey(field) == key {
			return base.Field(i), true
		}
	}
	field, ok := t.FieldByName(key)
	if !ok || !field.IsExported() {
		return reflect.Value{}, false
	}
	fv, err := base.FieldByIndexErr(field.Index)
	if err != nil || !fv.CanInterface() {
		return reflect.Value{}, false
	}
	return fv, true
}

// arrayIndex parses key as a canonical index below n.
func arrayIndex(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}

// hasOwn reports whether key is one of v's own keys.
func hasOwn(v any, key string) bool {
	v = normalize(v)
	switch t := v.(type) {
	case nil, undefined:
		return false
	case *Object:
		return t.Has(key)
	}

	base := indirect(reflect.ValueOf(v))
	if !base.IsValid() {
		return false
	}
	switch base.Kind() {
	case reflect.Map:
		kt := base.Type().Key()
		if kt.Kind() != reflect.String {
			return false
		}
		return base.MapIndex(reflect.ValueOf(key).Convert(kt)).IsValid()
	case reflect.Struct:
		return slices.Contains(structKeys(base.Type()), key)
	case reflect.Slice, reflect.Array:
		_, ok := arrayIndex(key, base.Len())
		return ok
	}
	return false
}

// property resolves key on v, directly or through inheritance: own keys,
// promoted struct fields, exported methods and the length of slices and
// arrays.
func property(v any, key string) (any, bool) {
	v = normalize(v)
	switch t := v.(type) {
	case nil, undefined:
		return nil, false
	case *Object:
		return t.Get(key)
	}

	rv := reflect.ValueOf(v)
	base := indirect(rv)
	if base.IsValid() {
		switch base.Kind() {
		case reflect.Map:
			kt := base.Type().Key()
			if kt.Kind() == reflect.String {
				if mv := base.MapIndex(reflect.ValueOf(key).Convert(kt)); mv.IsValid() {
					return mv.Interface(), true
				}
			}
		case reflect.Struct:
			if fv, ok := structField(base, key); ok {
				return fv.Interface(), true
			}
		case reflect.Slice, reflect.Array:
			if key == "length" {
				return base.Len(), true
			}
			if i, ok := arrayIndex(key, base.Len()); ok {
				return base.Index(i).Interface(), true
			}
		}
	}

	if m := rv.MethodByName(key); m.IsValid() {
		return m.Interface(), true
	}
	return nil, false
}
