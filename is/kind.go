package is

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/zclconf/go-cty/cty"
)

// Kind is the normalized, lower-case classification of a value.
type Kind string

const (
	KindNull      = Kind("null")
	KindUndefined = Kind("undefined")
	KindNumber    = Kind("number")
	KindString    = Kind("string")
	KindBoolean   = Kind("boolean")
	KindSymbol    = Kind("symbol")
	KindArray     = Kind("array")
	KindObject    = Kind("object")
	KindFunction  = Kind("function")
	KindDate      = Kind("date")
	KindError     = Kind("error")
	KindMap       = Kind("map")
	KindSet       = Kind("set")
	KindRegexp    = Kind("regexp")
)

// Tagger lets a type report its own kind. An empty tag falls back to the
// structural classification.
type Tagger interface {
	Tag() string
}

var (
	timeType        = reflect.TypeOf(time.Time{})
	regexpType      = reflect.TypeOf(regexp.Regexp{})
	emptyStructType = reflect.TypeOf(struct{}{})
)

// KindOf classifies v:
//
//   - nil, nil pointers, funcs and chans are "null"; Undefined is "undefined"
//   - a Tagger reports its own tag, lower-cased
//   - numeric kinds are "number", string kinds "string", bools "boolean"
//   - *Symbol is "symbol", funcs "function", errors "error"
//   - slices and arrays are "array"; time.Time is "date"; regexp.Regexp is
//     "regexp"
//   - maps of struct{} are "set", maps with non-string keys "map", other maps
//     and *Object "object"
//   - named structs report their type name lower-cased, anonymous ones
//     "object"
//
// cty values are classified by their cty type: lists and tuples are arrays,
// maps and objects are objects, sets are sets, unknown values are undefined.
func KindOf(v any) Kind {
	v = normalize(v)
	switch t := v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case *Symbol:
		return KindSymbol
	case *Object:
		return KindObject
	case cty.Value:
		if t.Type().IsSetType() {
			return KindSet
		}
		return KindObject
	}
	if t, ok := v.(Tagger); ok {
		if tag := t.Tag(); tag != "" {
			return Kind(strings.ToLower(tag))
		}
	}
	if _, ok := v.(error); ok {
		return KindError
	}

	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); {
	case isNumeric(k):
		return KindNumber
	case k == reflect.String:
		return KindString
	case k == reflect.Bool:
		return KindBoolean
	case k == reflect.Func:
		return KindFunction
	}

	base := indirect(rv)
	if !base.IsValid() {
		return KindNull
	}
	t := base.Type()
	switch t {
	case timeType:
		return KindDate
	case regexpType:
		return KindRegexp
	}

	switch base.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if t.Elem() == emptyStructType {
			return KindSet
		}
		if t.Key().Kind() != reflect.String {
			return KindMap
		}
	case reflect.Struct:
		if name := t.Name(); name != "" {
			return Kind(strings.ToLower(name))
		}
	}
	return KindObject
}

// typeOf is the coarse classification used by sameType: "undefined",
// "boolean", "number", "string", "symbol", "function" or "object". null is an
// "object".
func typeOf(v any) string {
	v = normalize(v)
	switch v.(type) {
	case nil, cty.Value:
		return "object"
	case undefined:
		return "undefined"
	case *Symbol:
		return "symbol"
	}

	switch k := reflect.ValueOf(v).Kind(); {
	case k == reflect.Bool:
		return "boolean"
	case isNumeric(k):
		return "number"
	case k == reflect.String:
		return "string"
	case k == reflect.Func:
		return "function"
	}
	return "object"
}
