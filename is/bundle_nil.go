package is

func isNull(v any) bool {
	return normalize(v) == nil
}

func isUndefined(v any) bool {
	_, ok := normalize(v).(undefined)
	return ok
}

// nilBundle checks against the two absent values, nil and Undefined.
func nilBundle(r Registrar, _ *Set) error {
	return register(r,
		entry{"null", func(args ...any) bool {
			return isNull(arg(args, 0))
		}},
		entry{"undefined", func(args ...any) bool {
			return isUndefined(arg(args, 0))
		}},
		entry{"exist", func(args ...any) bool {
			v := arg(args, 0)
			return !isNull(v) && !isUndefined(v)
		}},
		entry{"nil", func(args ...any) bool {
			v := arg(args, 0)
			return isNull(v) || isUndefined(v)
		}},
	)
}
