package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/isgo/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_Eval(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, []string{"eval", "safeInteger", "9007199254740991"})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "true\n", out.String())
	require.Equal(t, 0, exitCode(errOut, err))
}

func TestRun_FalseResult(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, []string{"eval", "odd", "4"})

	// --- Assert ---
	require.Equal(t, "false\n", out.String())
	require.Equal(t, cli.ExitFalse, exitCode(errOut, err))
	require.Empty(t, errOut.String(), "a false result prints nothing to stderr")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will make cobra report a usage error.
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err)
	require.Equal(t, cli.ExitUsage, exitCode(errOut, err))
	require.Contains(t, errOut.String(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestExitCode_PlainError(t *testing.T) {
	t.Parallel()

	errOut := &bytes.Buffer{}
	require.Equal(t, 1, exitCode(errOut, errors.New("application startup panicked: boom")))
	require.Contains(t, errOut.String(), "panicked")
}
