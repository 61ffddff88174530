// Package app contains the core application logic. It owns the predicate set,
// the logger and the check runner, decoupled from any specific entrypoint
// like a CLI.
package app
