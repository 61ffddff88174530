package is

import "errors"

var (
	// ErrReservedName is returned when registering under "not" or "use".
	ErrReservedName = errors.New("reserved name")
	// ErrDuplicateName is returned when a predicate name is already taken.
	ErrDuplicateName = errors.New("predicate already defined")
	// ErrInvalidPredicate is returned when the registration target is not a
	// func with a single bool result.
	ErrInvalidPredicate = errors.New("predicate must be a function returning bool")
	// ErrInvalidArgument is returned by OwnKeys for null or undefined input.
	ErrInvalidArgument = errors.New("ownKeys called on non-object")
)
