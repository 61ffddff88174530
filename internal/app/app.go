package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/isgo/internal/ctxlog"
	"github.com/specialistvlad/isgo/is"
)

// ErrUnknownPredicate is returned when a predicate name is not registered.
var ErrUnknownPredicate = errors.New("unknown predicate")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	set    *is.Set
}

// NewApp is the constructor for the main application. It builds an isolated
// logger writing to logW, a predicate set with the core bundles and then
// applies the extra bundles in order. Results are written to outW.
func NewApp(outW, logW io.Writer, cfg *Config, bundles ...any) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	set := is.New(is.WithLogger(logger))
	for i, bundle := range bundles {
		if err := set.Use(bundle); err != nil {
			// Bundles are compiled in, so a failure is a programmer error.
			panic(fmt.Errorf("failed to register bundle %d: %w", i, err))
		}
	}
	logger.Debug("Predicate set ready.", "predicates", len(set.Names()), "extra_bundles", len(bundles))

	return &App{
		outW:   outW,
		logger: logger,
		set:    set,
	}
}

// Context returns ctx carrying the application's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Set returns the application's predicate set. This is primarily for testing.
func (a *App) Set() *is.Set {
	return a.set
}

// Names returns the registered predicate names in registration order.
func (a *App) Names() []string {
	return a.set.Names()
}

// Eval calls the named predicate, or its negation, with args.
func (a *App) Eval(ctx context.Context, name string, negate bool, args []any) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	lookup := a.set.Lookup
	if negate {
		lookup = a.set.LookupNot
	}
	pred, ok := lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}

	result := pred(args...)
	logger.Debug("Predicate evaluated.", "predicate", name, "negate", negate, "args", len(args), "result", result)
	return result, nil
}

// PrintNames writes the registered predicate names to the output, one per line.
func (a *App) PrintNames() error {
	for _, name := range a.Names() {
		if _, err := fmt.Fprintln(a.outW, name); err != nil {
			return err
		}
	}
	return nil
}
