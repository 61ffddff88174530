package is

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Registrar is the registration capability handed to bundles.
type Registrar interface {
	AddPredicate(name string, fn any) error
}

// reservedNames can never name a predicate.
var reservedNames = map[string]struct{}{
	"not": {},
	"use": {},
}

// Registry holds the registered predicates and their negations. It is
// append-only: predicates are never replaced or removed.
type Registry struct {
	mu       sync.RWMutex
	positive map[string]Predicate
	negated  map[string]Predicate
	names    []string
	logger   *slog.Logger
}

// NewRegistry creates an empty Registry. A nil logger means slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		positive: make(map[string]Predicate),
		negated:  make(map[string]Predicate),
		logger:   logger,
	}
}

// AddPredicate registers fn under name, together with its negation. fn must
// be a Predicate or any func with a single bool result.
func (r *Registry) AddPredicate(name string, fn any) error {
	if _, reserved := reservedNames[name]; reserved {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.positive[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	pred, ok := asPredicate(fn)
	if !ok {
		return fmt.Errorf("%w: %q got %T", ErrInvalidPredicate, name, fn)
	}

	r.positive[name] = pred
	r.negated[name] = func(args ...any) bool {
		return !pred(args...)
	}
	r.names = append(r.names, name)
	r.logger.Debug("Registering predicate.", "name", name)
	return nil
}

func (r *Registry) lookup(name string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.positive[name]
	return p, ok
}

func (r *Registry) lookupNot(name string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.negated[name]
	return p, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

// Len returns the number of registered predicates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
