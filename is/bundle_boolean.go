package is

func booleanBundle(r Registrar, _ *Set) error {
	return register(r,
		entry{"boolean", func(args ...any) bool {
			return typeOf(arg(args, 0)) == "boolean"
		}},
	)
}
