// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates flags, environment variables and the config file into the
// application's configuration and dispatches the `eval`, `check` and `list`
// commands.
package cli
