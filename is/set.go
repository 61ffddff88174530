package is

import (
	"fmt"
	"log/slog"
)

// Bundle registers a group of related predicates. It receives the
// registration capability and the Set being extended, so it can build on
// predicates registered before it.
type Bundle func(r Registrar, s *Set) error

// Bundler is implemented by types that carry a bundle, the way a module
// registers its handlers.
type Bundler interface {
	Register(r Registrar, s *Set) error
}

// coreBundles is the fixed order in which New registers the built-in
// predicates.
var coreBundles = []Bundle{
	nilBundle,
	numberBundle,
	stringBundle,
	booleanBundle,
	objectBundle,
	arrayBundle,
	typeBundle,
	equalityBundle,
}

// Set is a collection of predicates and their negations.
type Set struct {
	registry *Registry
}

// Option configures New.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for registration messages.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New returns a Set holding the built-in predicates.
func New(opts ...Option) *Set {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Set{registry: NewRegistry(o.logger)}
	for _, bundle := range coreBundles {
		if err := s.Use(bundle); err != nil {
			// The built-in bundles are fixed; a failure here is a programmer error.
			panic(fmt.Errorf("is: core bundle registration failed: %w", err))
		}
	}
	o.logger.Debug("Core bundles registered.", "bundles", len(coreBundles), "predicates", s.registry.Len())
	return s
}

// Use applies bundle to the Set. bundle may be a Bundle, a func with the same
// signature, or a Bundler; anything else, nil included, is ignored.
// Registration errors are returned unchanged.
func (s *Set) Use(bundle any) error {
	switch b := bundle.(type) {
	case Bundle:
		if b != nil {
			return b(s.registry, s)
		}
	case func(Registrar, *Set) error:
		if b != nil {
			return b(s.registry, s)
		}
	case Bundler:
		return b.Register(s.registry, s)
	}
	return nil
}

// Registrar returns the Set's registration capability.
func (s *Set) Registrar() Registrar {
	return s.registry
}

// Is calls the predicate registered under name. It panics if there is none.
func (s *Set) Is(name string, args ...any) bool {
	p, ok := s.registry.lookup(name)
	if !ok {
		panic(fmt.Sprintf("is: predicate %q is not registered", name))
	}
	return p(args...)
}

// Not calls the negation of the predicate registered under name. It panics if
// there is none.
func (s *Set) Not(name string, args ...any) bool {
	p, ok := s.registry.lookupNot(name)
	if !ok {
		panic(fmt.Sprintf("is: predicate %q is not registered", name))
	}
	return p(args...)
}

// Lookup returns the predicate registered under name.
func (s *Set) Lookup(name string) (Predicate, bool) {
	return s.registry.lookup(name)
}

// LookupNot returns the negation of the predicate registered under name.
func (s *Set) LookupNot(name string) (Predicate, bool) {
	return s.registry.lookupNot(name)
}

// Has reports whether name is registered.
func (s *Set) Has(name string) bool {
	_, ok := s.registry.lookup(name)
	return ok
}

// Names returns the registered predicate names in registration order.
func (s *Set) Names() []string {
	return s.registry.Names()
}

// entry is one predicate of a bundle.
type entry struct {
	name string
	fn   Predicate
}

// register adds entries in order and stops at the first failure.
func register(r Registrar, entries ...entry) error {
	for _, e := range entries {
		if err := r.AddPredicate(e.name, e.fn); err != nil {
			return err
		}
	}
	return nil
}
