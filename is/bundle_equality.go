package is

import (
	"math"
	"reflect"
	"regexp"
	"time"

	"github.com/zclconf/go-cty/cty"
)

// equalityBundle holds equal (SameValueZero) and deepEqual.
func equalityBundle(r Registrar, s *Set) error {
	return register(r,
		entry{"equal", func(args ...any) bool {
			return sameValueZero(arg(args, 0), arg(args, 1))
		}},
		entry{"deepEqual", func(args ...any) bool {
			return deepEqual(s, arg(args, 0), arg(args, 1))
		}},
	)
}

// sameValueZero is strict equality where NaN equals NaN and +0 equals -0.
// Numbers compare by value across Go numeric types. Maps, slices, funcs,
// chans and pointers compare by identity; other comparable values with ==.
// Empty slices without capacity and nil maps equal nothing, themselves
// included.
func sameValueZero(a, b any) bool {
	a, b = normalize(a), normalize(b)

	switch x := a.(type) {
	case nil:
		return b == nil
	case undefined:
		_, ok := b.(undefined)
		return ok
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x == y
	case *Object:
		y, ok := b.(*Object)
		return ok && x == y
	case cty.Value:
		y, ok := b.(cty.Value)
		return ok && x.RawEquals(y)
	}
	if b == nil {
		return false
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := ra.Kind(), rb.Kind()
	switch {
	case isNumeric(ka) && isNumeric(kb):
		return numbersEqual(ra, rb)
	case ka == reflect.String && kb == reflect.String:
		return ra.String() == rb.String()
	case ka == reflect.Bool && kb == reflect.Bool:
		return ra.Bool() == rb.Bool()
	case ra.Type() != rb.Type():
		return false
	}

	switch ka {
	case reflect.Slice:
		// Zero-capacity slices share the runtime's zero base, so their
		// pointer says nothing about identity. They are never equal.
		if ra.Cap() == 0 || rb.Cap() == 0 {
			return false
		}
		return ra.Len() == rb.Len() && ra.Pointer() == rb.Pointer()
	case reflect.Map:
		// nil maps carry no identity either.
		return !ra.IsNil() && ra.Pointer() == rb.Pointer()
	case reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	}
	if !ra.Type().Comparable() {
		return false
	}
	return safeEqual(a, b)
}

func numbersEqual(a, b reflect.Value) bool {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case isSigned(ka) && isSigned(kb):
		return a.Int() == b.Int()
	case isUnsigned(ka) && isUnsigned(kb):
		return a.Uint() == b.Uint()
	case isSigned(ka) && isUnsigned(kb):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case isUnsigned(ka) && isSigned(kb):
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
	fa, _ := toFloat(a.Interface())
	fb, _ := toFloat(b.Interface())
	if math.IsNaN(fa) && math.IsNaN(fb) {
		return true
	}
	return fa == fb
}

// safeEqual compares with ==, which panics for interface fields holding
// uncomparable values.
func safeEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// deepEqual compares structurally: primitives with equal, arrays element by
// element, everything else by own keys. Dates compare by instant, regexps by
// source, maps with non-string keys and sets by entries. Cyclic values are
// not detected.
func deepEqual(s *Set, a, b any) bool {
	a, b = normalize(a), normalize(b)
	if s.Not("sameType", a, b) {
		return false
	}
	if s.Is("primitive", a) {
		return s.Is("equal", a, b)
	}

	switch KindOf(a) {
	case KindArray:
		// A Tagger may call itself an array without being a slice.
		if ra, rb := indirect(reflect.ValueOf(a)), indirect(reflect.ValueOf(b)); isSequence(ra) && isSequence(rb) {
			return elementsEqual(s, ra, rb)
		}
	case KindDate:
		if ta, ok := asTime(a); ok {
			if tb, ok := asTime(b); ok {
				return ta.Equal(tb)
			}
		}
	case KindRegexp:
		if ra, ok := asRegexp(a); ok {
			if rb, ok := asRegexp(b); ok {
				return ra.String() == rb.String()
			}
		}
	case KindMap, KindSet:
		if x, ok := a.(cty.Value); ok {
			y, ok := b.(cty.Value)
			return ok && x.RawEquals(y)
		}
		ra, rb := indirect(reflect.ValueOf(a)), indirect(reflect.ValueOf(b))
		if ra.Kind() == reflect.Map && rb.Kind() == reflect.Map {
			return entriesEqual(s, ra, rb)
		}
	}
	return keysEqual(s, a, b)
}

func isSequence(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

func elementsEqual(s *Set, a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if s.Not("deepEqual", a.Index(i).Interface(), b.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// entriesEqual matches every entry of a to an entry of b with a deeply equal
// key and value. Keys are compared with deepEqual, so the two maps need not
// share a key type.
func entriesEqual(s *Set, a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia := a.MapRange()
	for ia.Next() {
		found := false
		ib := b.MapRange()
		for ib.Next() {
			if s.Is("deepEqual", ia.Key().Interface(), ib.Key().Interface()) {
				found = s.Is("deepEqual", ia.Value().Interface(), ib.Value().Interface())
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func keysEqual(s *Set, a, b any) bool {
	keys, err := OwnKeys(a)
	if err != nil {
		return false
	}
	other, err := OwnKeys(b)
	if err != nil || len(keys) != len(other) {
		return false
	}
	for _, key := range keys {
		if !hasOwn(b, key) {
			return false
		}
		va, _ := property(a, key)
		vb, _ := property(b, key)
		if s.Not("deepEqual", va, vb) {
			return false
		}
	}
	return true
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		return *t, true
	}
	return time.Time{}, false
}

func asRegexp(v any) (*regexp.Regexp, bool) {
	switch t := v.(type) {
	case *regexp.Regexp:
		return t, true
	case regexp.Regexp:
		return &t, true
	}
	return nil, false
}
