package is

// builtinKinds get a predicate each, named after the kind.
var builtinKinds = []Kind{
	KindDate,
	KindError,
	KindFunction,
	KindMap,
	KindRegexp,
	KindSet,
	KindSymbol,
}

// typeBundle holds the type predicates.
func typeBundle(r Registrar, s *Set) error {
	entries := []entry{
		{"sameType", func(args ...any) bool {
			a, b := arg(args, 0), arg(args, 1)
			return typeOf(a) == typeOf(b) && KindOf(a) == KindOf(b)
		}},
		{"primitive", func(args ...any) bool {
			v := arg(args, 0)
			return s.Is("nil", v) ||
				s.Is("number", v) ||
				s.Is("string", v) ||
				s.Is("boolean", v) ||
				s.Is("symbol", v)
		}},
	}
	for _, kind := range builtinKinds {
		entries = append(entries, entry{string(kind), kindPredicate(kind)})
	}
	return register(r, entries...)
}

func kindPredicate(kind Kind) Predicate {
	return func(args ...any) bool {
		return KindOf(arg(args, 0)) == kind
	}
}
