package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/isgo/internal/checkfile"
	"github.com/specialistvlad/isgo/internal/ctxlog"
)

// Result is the outcome of one check.
type Result struct {
	Check checkfile.Check
	Got   bool
	// Err is set when the check could not be evaluated.
	Err error
}

// Passed reports whether the check evaluated to its expected value.
func (r Result) Passed() bool {
	return r.Err == nil && r.Got == r.Check.Expect
}

// Report collects the results of a check run.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Write prints one line per check followed by a summary.
func (r *Report) Write(w io.Writer) error {
	for _, res := range r.Results {
		var line string
		switch {
		case res.Err != nil:
			line = fmt.Sprintf("ERROR %s (%s): %v", res.Check, res.Check.Source, res.Err)
		case res.Passed():
			line = fmt.Sprintf("PASS  %s", res.Check)
		default:
			line = fmt.Sprintf("FAIL  %s (%s): got %t, want %t", res.Check, res.Check.Source, res.Got, res.Check.Expect)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d checks, %d passed, %d failed\n", len(r.Results), r.Passed, r.Failed)
	return err
}

// RunChecks evaluates every check in order. Unknown predicates and panicking
// predicates are recorded as failed checks; the run stops early only when
// ctx is done.
func (a *App) RunChecks(ctx context.Context, checks []checkfile.Check) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Running checks.", "count", len(checks))

	report := &Report{Results: make([]Result, 0, len(checks))}
	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res := a.runCheck(ctx, c)
		if res.Passed() {
			report.Passed++
		} else {
			report.Failed++
			logger.Warn("Check failed.", "check", c.Name, "predicate", c.Predicate, "source", c.Source, "got", res.Got, "error", res.Err)
		}
		report.Results = append(report.Results, res)
	}

	logger.Info("Checks finished.", "passed", report.Passed, "failed", report.Failed)
	return report, nil
}

func (a *App) runCheck(ctx context.Context, c checkfile.Check) (res Result) {
	res.Check = c
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("predicate %q panicked: %v", c.Predicate, r)
		}
	}()
	res.Got, res.Err = a.Eval(ctx, c.Predicate, c.Negate, c.Args)
	return res
}

// CheckPaths loads the checks found under the given paths and runs them.
func (a *App) CheckPaths(ctx context.Context, patterns ...string) (*Report, error) {
	checks, err := checkfile.Load(ctx, patterns...)
	if err != nil {
		return nil, err
	}
	return a.RunChecks(ctx, checks)
}
