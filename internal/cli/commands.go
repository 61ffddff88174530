package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/isgo/internal/app"
	"github.com/specialistvlad/isgo/internal/hclvalue"
)

func (r *runner) evalCommand() *cobra.Command {
	var negate bool
	cmd := &cobra.Command{
		Use:   "eval [--not] <predicate> [args...]",
		Short: "Evaluate one predicate and print the result",
		Long: `Evaluate one predicate and print true or false. The exit code is 1 when
the result is false.

Examples:
  is eval integer 42
  is eval --not emptyString '"  x "'
  is eval inArray 3 '[1, 2, 3, 4]' -2
  is eval deepEqual '{a = [1, 2]}' '{a = [1, 2]}'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := hclvalue.ParseAll(args[1:])
			if err != nil {
				return usageError("%v", err)
			}

			result, err := r.app.Eval(cmd.Context(), args[0], negate, values)
			if errors.Is(err, app.ErrUnknownPredicate) {
				return usageError("%v", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(r.outW, strconv.FormatBool(result))
			if !result {
				return &ExitError{Code: ExitFalse}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&negate, "not", false, "evaluate the negation of the predicate")
	// Arguments such as -2 are values, not flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (r *runner) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|dir|glob>...",
		Short: "Run the checks declared in HCL or YAML check files",
		Long: `Run every check declared in the given files. Directories are searched for
.hcl, .yaml and .yml files; glob patterns may use ** to cross directories.
The exit code is 1 when any check fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := r.app.CheckPaths(cmd.Context(), args...)
			if err != nil {
				return usageError("%v", err)
			}
			if err := report.Write(r.outW); err != nil {
				return err
			}
			if !report.OK() {
				return &ExitError{Code: ExitFalse, Message: fmt.Sprintf("%d of %d checks failed", report.Failed, len(report.Results))}
			}
			return nil
		},
	}
}

func (r *runner) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered predicates in registration order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return r.app.PrintNames()
		},
	}
}
