package is

import (
	"strconv"
)

// maxArrayLength is the largest length an array-like object may report.
const maxArrayLength = 0xFFFFFFFF

// arrayBundle holds the array predicates.
func arrayBundle(r Registrar, s *Set) error {
	return register(r,
		entry{"array", func(args ...any) bool {
			return KindOf(arg(args, 0)) == KindArray
		}},
		entry{"arrayLikeObject", func(args ...any) bool {
			v := arg(args, 0)
			if s.Is("primitive", v) || s.Is("function", v) {
				return false
			}
			length, ok := property(v, "length")
			if !ok || !s.Is("integer", length) {
				return false
			}
			n, _ := toFloat(length)
			return n >= 0 && n <= maxArrayLength
		}},
		entry{"inArray", func(args ...any) bool {
			return inArray(s, arg(args, 0), arg(args, 1), arg(args, 2), arg(args, 3))
		}},
	)
}

// inArray scans array from offset for an element matching value under
// comparator. A function in the offset position is taken as the comparator.
// Holes, indices the array does not own, are skipped.
func inArray(s *Set, value, array, offset, comparator any) bool {
	if s.Not("arrayLikeObject", array) {
		return false
	}

	if s.Is("function", offset) {
		comparator, offset = offset, 0
	}
	cmp, ok := asPredicate(comparator)
	if !ok {
		cmp, _ = s.Lookup("equal")
	}

	raw, _ := property(array, "length")
	n, _ := toFloat(raw)
	length := int(n)

	start, ok := resolveOffset(s, offset, length)
	if !ok {
		return false
	}
	for i := start; i < length; i++ {
		key := strconv.Itoa(i)
		if !hasOwn(array, key) {
			continue
		}
		element, _ := property(array, key)
		if cmp(value, element) {
			return true
		}
	}
	return false
}
