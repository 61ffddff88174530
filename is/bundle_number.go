package is

import (
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// maxSafeInteger is 2^53 - 1, the largest integer a float64 holds exactly
// along with all its neighbours.
const maxSafeInteger = 1<<53 - 1

// numberBundle holds the numeric predicates. NaN and the infinities are
// numbers but neither finite nor integers.
func numberBundle(r Registrar, s *Set) error {
	return register(r,
		entry{"number", func(args ...any) bool {
			return typeOf(arg(args, 0)) == "number"
		}},
		entry{"numeral", func(args ...any) bool {
			v := arg(args, 0)
			switch KindOf(v) {
			case KindNumber:
				return s.Is("finite", v)
			case KindString:
				if s.Is("emptyString", v) {
					return false
				}
				str, _ := toText(v)
				f, ok := parseNumeral(str)
				return ok && s.Is("finite", f)
			}
			return false
		}},
		entry{"nan", func(args ...any) bool {
			f, ok := toFloat(arg(args, 0))
			return ok && math.IsNaN(f)
		}},
		entry{"odd", func(args ...any) bool {
			v := arg(args, 0)
			rem, ok := remainder2(v)
			return s.Is("integer", v) && ok && rem == 1
		}},
		entry{"even", func(args ...any) bool {
			v := arg(args, 0)
			rem, ok := remainder2(v)
			return s.Is("integer", v) && ok && rem == 0
		}},
		entry{"finite", func(args ...any) bool {
			f, ok := toFloat(arg(args, 0))
			return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
		}},
		entry{"infinite", func(args ...any) bool {
			f, ok := toFloat(arg(args, 0))
			return ok && math.IsInf(f, 0)
		}},
		entry{"integer", func(args ...any) bool {
			v := arg(args, 0)
			if !s.Is("finite", v) {
				return false
			}
			f, _ := toFloat(v)
			return f == math.Trunc(f)
		}},
		entry{"safeInteger", func(args ...any) bool {
			v := arg(args, 0)
			if !s.Is("integer", v) {
				return false
			}
			rv := reflect.ValueOf(normalize(v))
			switch k := rv.Kind(); {
			case isSigned(k):
				return rv.Int() >= -maxSafeInteger && rv.Int() <= maxSafeInteger
			case isUnsigned(k):
				return rv.Uint() <= maxSafeInteger
			}
			return math.Abs(rv.Float()) <= maxSafeInteger
		}},
	)
}

// remainder2 returns v % 2 with the sign of v, so negative odd numbers give
// -1 and are neither odd nor even. Integer kinds are exact; floats go
// through math.Mod.
func remainder2(v any) (float64, bool) {
	v = normalize(v)
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); {
	case isSigned(k):
		return float64(rv.Int() % 2), true
	case isUnsigned(k):
		return float64(rv.Uint() % 2), true
	case isFloat(k):
		return math.Mod(rv.Float(), 2), true
	}
	return 0, false
}

// radixPrefixes are the unsigned integer literal prefixes a numeral string
// may carry.
var radixPrefixes = map[string]int{"0x": 16, "0o": 8, "0b": 2}

// parseNumeral converts the trimmed string to a number. 0x, 0o and 0b
// literals are read as unsigned integers; everything else goes through
// cty's string-to-number conversion. Signs and digit separators are not
// accepted with a prefix.
func parseNumeral(str string) (float64, bool) {
	str = trimSpace(str)
	if len(str) > 2 {
		if base, ok := radixPrefixes[strings.ToLower(str[:2])]; ok {
			digits := str[2:]
			if digits[0] == '+' || digits[0] == '-' {
				return 0, false
			}
			n, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return 0, false
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f, true
		}
	}

	nv, err := convert.Convert(cty.StringVal(str), cty.Number)
	if err != nil || nv.IsNull() {
		return 0, false
	}
	f, _ := nv.AsBigFloat().Float64()
	return f, true
}
