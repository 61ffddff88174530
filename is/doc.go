// Package is provides a minimalistic predicate library: small, pure functions
// that classify a single value and report a bool.
//
// Predicates live in a Set built by New. The Set is populated by bundles, each
// a callback that receives the registration capability (a Registrar) and the
// Set itself, so a bundle may define predicates on top of ones registered
// before it:
//
//	s := is.New()
//	s.Is("integer", 4)             // true
//	s.Not("emptyString", "hello")  // true
//	s.Is("inArray", 3, []int{1, 2, 3, 4}, 2)
//
// Every registered predicate gets a negated counterpart, reachable through
// Not. Predicates never fail: arguments of the wrong shape make them return
// false. Only registration reports errors (see ErrReservedName,
// ErrDuplicateName and ErrInvalidPredicate).
//
// Values are plain Go values. nil stands for null and Undefined for an absent
// value; a predicate called with fewer arguments than it reads sees Undefined
// in the missing positions. Slices and arrays are arrays; string-keyed maps,
// structs and *Object are objects; cty.Value inputs are classified by their
// cty type. See KindOf for the full classification.
package is
