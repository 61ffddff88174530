package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/specialistvlad/isgo/internal/app"
)

// runner holds what the subcommands share once the root command has
// resolved the configuration.
type runner struct {
	outW    io.Writer
	errW    io.Writer
	v       *viper.Viper
	cfgFile string
	bundles []any
	app     *app.App
}

// NewRootCommand builds the `is` command tree. Results go to outW, logs and
// diagnostics to errW. Extra bundles are applied to the predicate set after
// the core ones.
func NewRootCommand(outW, errW io.Writer, bundles ...any) *cobra.Command {
	r := &runner{outW: outW, errW: errW, v: viper.New(), bundles: bundles}

	root := &cobra.Command{
		Use:   "is",
		Short: "Evaluate type and value predicates",
		Long: `is evaluates predicates such as integer, emptyString or deepEqual against
arguments written as HCL literals, or runs check files that declare them.

Arguments may use the variables undefined and infinity and the functions
symbol(description), regexp(pattern), timestamp(rfc3339) and nan().`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&r.cfgFile, "config", "c", "", "config file (YAML) with log-level and log-format")
	flags.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	_ = r.v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = r.v.BindPFlag("log-format", flags.Lookup("log-format"))

	r.v.SetEnvPrefix("IS")
	r.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	r.v.AutomaticEnv()

	root.AddCommand(r.evalCommand(), r.checkCommand(), r.listCommand())
	return root
}

// setup reads the config file, validates the configuration and builds the
// application.
func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	if r.cfgFile != "" {
		r.v.SetConfigFile(r.cfgFile)
		r.v.SetConfigType("yaml")
		if err := r.v.ReadInConfig(); err != nil {
			return usageError("failed to read config file %s: %v", r.cfgFile, err)
		}
	}

	cfg, err := app.NewConfig(app.Config{
		LogLevel:  r.v.GetString("log-level"),
		LogFormat: r.v.GetString("log-format"),
	})
	if err != nil {
		return usageError("%v", err)
	}

	r.app = app.NewApp(r.outW, r.errW, cfg, r.bundles...)
	cmd.SetContext(r.app.Context(cmd.Context()))
	return nil
}

// Execute runs the command tree with args. Every failure comes back as an
// *ExitError; a nil error means exit code 0.
func Execute(ctx context.Context, args []string, outW, errW io.Writer, bundles ...any) error {
	root := NewRootCommand(outW, errW, bundles...)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra reports itself (unknown command, wrong arg count) is
	// a usage error.
	return usageError("%v", err)
}
