package checkfile

import (
	"fmt"
)

// Check is one predicate invocation loaded from a check file.
type Check struct {
	Name      string
	Predicate string
	Args      []any
	// Negate runs the predicate's negation instead.
	Negate bool
	// Expect is the result the check must produce to pass.
	Expect bool
	// Source is the file and line the check was declared at.
	Source string
}

// String returns a short description such as `not.integer "port"`.
func (c Check) String() string {
	pred := c.Predicate
	if c.Negate {
		pred = "not." + pred
	}
	return fmt.Sprintf("%s %q", pred, c.Name)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
