package is

import (
	"strings"
	"unicode"
)

// stringBundle holds the string predicates. Offsets and affixes are measured
// in bytes.
func stringBundle(r Registrar, s *Set) error {
	return register(r,
		entry{"string", func(args ...any) bool {
			return typeOf(arg(args, 0)) == "string"
		}},
		entry{"emptyString", func(args ...any) bool {
			str, ok := toText(arg(args, 0))
			return ok && trimSpace(str) == ""
		}},
		entry{"substring", func(args ...any) bool {
			sub, v, offset := arg(args, 0), arg(args, 1), arg(args, 2)
			if KindOf(v) != KindString {
				return false
			}
			str, _ := toText(v)
			start, ok := resolveOffset(s, offset, len(str))
			if !ok {
				return false
			}
			return strings.Contains(str[start:], toString(sub))
		}},
		entry{"prefix", func(args ...any) bool {
			affix, v := arg(args, 0), arg(args, 1)
			if KindOf(v) != KindString {
				return false
			}
			str, _ := toText(v)
			return strings.HasPrefix(str, toString(affix))
		}},
		entry{"suffix", func(args ...any) bool {
			affix, v := arg(args, 0), arg(args, 1)
			if KindOf(v) != KindString {
				return false
			}
			str, _ := toText(v)
			return strings.HasSuffix(str, toString(affix))
		}},
	)
}

// resolveOffset turns an optional, possibly negative offset into an index
// within [0, length). Anything but an integer counts as 0; negative offsets
// count from the end.
func resolveOffset(s *Set, raw any, length int) (int, bool) {
	off := 0.0
	if s.Is("integer", raw) {
		off, _ = toFloat(raw)
	}
	if off < 0 {
		off += float64(length)
	}
	if off < 0 || off >= float64(length) {
		return 0, false
	}
	return int(off), true
}

// trimSpace strips leading and trailing white space as ECMAScript defines
// it: Unicode space separators, line terminators and U+FEFF, but not U+0085.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
