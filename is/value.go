package is

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/zclconf/go-cty/cty"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined stands for an absent value, as opposed to nil which is an explicit
// null. Predicates see Undefined in place of every argument they were not
// given.
var Undefined = undefined{}

// Symbol is a unique, primitive value. Two symbols are equal only if they are
// the same pointer, whatever their descriptions.
type Symbol struct {
	description string
}

// NewSymbol returns a fresh symbol.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Description returns the text the symbol was created with.
func (s *Symbol) Description() string {
	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

// arg returns args[i], or Undefined when the caller passed fewer arguments.
func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return Undefined
}

// normalize maps nil pointers, funcs and chans to nil and unwraps cty values
// into the Go shapes the predicates understand. cty sets stay cty.Value.
func normalize(v any) any {
	switch t := v.(type) {
	case nil, undefined:
		return v
	case cty.Value:
		return fromCty(t)
	case *cty.Value:
		if t == nil {
			return nil
		}
		return fromCty(*t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return nil
		}
	}
	return v
}

func fromCty(v cty.Value) any {
	v, _ = v.UnmarkDeep()
	if !v.IsKnown() {
		return Undefined
	}
	if v.IsNull() {
		return nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString()
	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f
	case ty == cty.Bool:
		return v.True()
	case ty.IsListType() || ty.IsTupleType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			out = append(out, fromCty(ev))
		}
		return out
	case ty.IsMapType() || ty.IsObjectType():
		obj := NewObject()
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			obj.Set(k.AsString(), fromCty(ev))
		}
		return obj
	case ty.IsCapsuleType():
		// Capsules hold a pointer to their Go value. Structs keep pointer
		// identity, everything else is dereferenced.
		ev := reflect.ValueOf(v.EncapsulatedValue())
		if ev.Kind() == reflect.Pointer && ev.Elem().Kind() != reflect.Struct {
			return normalize(ev.Elem().Interface())
		}
		return normalize(ev.Interface())
	}
	return v
}

// indirect follows pointers and interfaces. The result is invalid when a nil
// is reached.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumeric(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}

// toFloat reports the numeric value of v as a float64.
func toFloat(v any) (float64, bool) {
	v = normalize(v)
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); {
	case isSigned(k):
		return float64(rv.Int()), true
	case isUnsigned(k):
		return float64(rv.Uint()), true
	case isFloat(k):
		return rv.Float(), true
	}
	return 0, false
}

// toText reports the value of a string-kinded v.
func toText(v any) (string, bool) {
	v = normalize(v)
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// toString converts v to its string form, the way a string affix or a
// property path is coerced before use.
func toString(v any) string {
	v = normalize(v)
	switch t := v.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); {
	case k == reflect.String:
		return rv.String()
	case k == reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case isSigned(k):
		return strconv.FormatInt(rv.Int(), 10)
	case isUnsigned(k):
		return strconv.FormatUint(rv.Uint(), 10)
	case isFloat(k):
		return formatFloat(rv.Float())
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
