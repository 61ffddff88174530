package is

import (
	"strings"
)

// objectBundle holds the predicates over non-primitive values.
func objectBundle(r Registrar, s *Set) error {
	return register(r,
		entry{"object", func(args ...any) bool {
			return s.Not("primitive", arg(args, 0))
		}},
		entry{"emptyObject", func(args ...any) bool {
			v := arg(args, 0)
			if !s.Is("object", v) {
				return false
			}
			keys, err := OwnKeys(v)
			return err == nil && len(keys) == 0
		}},
		entry{"propertyDefined", func(args ...any) bool {
			return propertyDefined(s, arg(args, 0), toString(arg(args, 1)))
		}},
		entry{"conforms", func(args ...any) bool {
			strict, _ := normalize(arg(args, 2)).(bool)
			return conforms(s, arg(args, 0), arg(args, 1), strict)
		}},
	)
}

// propertyDefined walks a dotted path. Each step must land on an object that
// holds the next key, directly or inherited. The walk ends at the first empty
// segment, so an empty path is always defined.
func propertyDefined(s *Set, v any, path string) bool {
	current := v
	for _, key := range strings.Split(path, ".") {
		if key == "" {
			break
		}
		if s.Not("object", current) {
			return false
		}
		next, ok := property(current, key)
		if !ok {
			return false
		}
		current = next
	}
	return true
}

// conforms checks every validator of schema against the same own key of v.
// Schema entries that are not callable are skipped. Validators are called
// with (value, key, object).
func conforms(s *Set, v, schema any, strict bool) bool {
	if s.Not("object", v) || s.Not("object", schema) {
		return false
	}

	keys, err := OwnKeys(schema)
	if err != nil {
		return false
	}
	if strict {
		own, err := OwnKeys(v)
		if err != nil || len(own) != len(keys) {
			return false
		}
	}

	for _, key := range keys {
		raw, _ := property(schema, key)
		validator, ok := asPredicate(raw)
		if !ok {
			continue
		}
		if !hasOwn(v, key) {
			return false
		}
		value, _ := property(v, key)
		if !validator(value, key, v) {
			return false
		}
	}
	return true
}
