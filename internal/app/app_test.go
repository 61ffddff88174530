package app

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/isgo/internal/checkfile"
	"github.com/specialistvlad/isgo/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_LogsRegistration(t *testing.T) {
	t.Parallel()

	testApp, _, logs := SetupAppTest(t)
	assert.Contains(t, testApp.Names(), "deepEqual")
	assert.Contains(t, logs.String(), "Registering predicate.")
	assert.Contains(t, logs.String(), "name=numeral")
}

func TestNewApp_ExtraBundles(t *testing.T) {
	t.Parallel()

	port := func(r is.Registrar, s *is.Set) error {
		return r.AddPredicate("port", func(v any) bool {
			if !s.Is("integer", v) {
				return false
			}
			f, _ := v.(int)
			return f > 0 && f < 65536
		})
	}
	testApp, _, _ := SetupAppTest(t, port)

	got, err := testApp.Eval(context.Background(), "port", false, []any{8080})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestNewApp_PanicsOnBadBundle(t *testing.T) {
	t.Parallel()

	bad := func(r is.Registrar, _ *is.Set) error {
		return r.AddPredicate("null", func(any) bool { return true })
	}
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Panics(t, func() { NewApp(&SafeBuffer{}, &SafeBuffer{}, cfg, bad) })
}

func TestApp_Eval(t *testing.T) {
	t.Parallel()

	testApp, _, _ := SetupAppTest(t)
	ctx := testApp.Context(context.Background())

	got, err := testApp.Eval(ctx, "inArray", false, []any{3, []int{1, 2, 3}})
	require.NoError(t, err)
	assert.True(t, got)

	got, err = testApp.Eval(ctx, "inArray", true, []any{3, []int{1, 2, 3}})
	require.NoError(t, err)
	assert.False(t, got)

	_, err = testApp.Eval(ctx, "missing", false, nil)
	require.ErrorIs(t, err, ErrUnknownPredicate)
}

func TestApp_PrintNames(t *testing.T) {
	t.Parallel()

	testApp, out, _ := SetupAppTest(t)
	require.NoError(t, testApp.PrintNames())
	assert.Regexp(t, `^null\nundefined\nexist\nnil\nnumber\n`, out.String())
}

func TestApp_RunChecks(t *testing.T) {
	t.Parallel()

	boom := func(r is.Registrar, _ *is.Set) error {
		return r.AddPredicate("boom", func(any) bool { panic("kaboom") })
	}
	testApp, _, logs := SetupAppTest(t, boom)
	ctx := testApp.Context(context.Background())

	checks := []checkfile.Check{
		{Name: "pass", Predicate: "integer", Args: []any{1}, Expect: true},
		{Name: "negated", Predicate: "nan", Negate: true, Args: []any{1.5}, Expect: true},
		{Name: "expect false", Predicate: "finite", Args: []any{math.Inf(1)}, Expect: false},
		{Name: "wrong", Predicate: "string", Args: []any{1}, Expect: true, Source: "a.hcl:3"},
		{Name: "unknown", Predicate: "nope", Expect: true},
		{Name: "panics", Predicate: "boom", Expect: true},
	}

	report, err := testApp.RunChecks(ctx, checks)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Passed)
	assert.Equal(t, 3, report.Failed)
	assert.False(t, report.OK())
	require.Len(t, report.Results, len(checks))
	assert.ErrorIs(t, report.Results[4].Err, ErrUnknownPredicate)
	assert.ErrorContains(t, report.Results[5].Err, "kaboom")
	assert.Contains(t, logs.String(), "Check failed.")

	var out SafeBuffer
	require.NoError(t, report.Write(&out))
	assert.Contains(t, out.String(), `PASS  integer "pass"`)
	assert.Contains(t, out.String(), `PASS  not.nan "negated"`)
	assert.Contains(t, out.String(), `FAIL  string "wrong" (a.hcl:3): got false, want true`)
	assert.Contains(t, out.String(), `ERROR nope "unknown"`)
	assert.Contains(t, out.String(), "6 checks, 3 passed, 3 failed")
}

func TestApp_RunChecks_Canceled(t *testing.T) {
	t.Parallel()

	testApp, _, _ := SetupAppTest(t)
	ctx, cancel := context.WithCancel(testApp.Context(context.Background()))
	cancel()

	report, err := testApp.RunChecks(ctx, []checkfile.Check{{Name: "a", Predicate: "nil", Expect: true}})
	require.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, report.Results)
}

func TestApp_CheckPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := `
check "port" {
  predicate = "integer"
  args      = [8080]
}

check "tags" {
  predicate = "inArray"
  args      = ["api", ["web", "api"]]
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "checks.hcl"), []byte(src), 0o600))

	testApp, _, _ := SetupAppTest(t)
	report, err := testApp.CheckPaths(testApp.Context(context.Background()), dir)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 2, report.Passed)

	_, err = testApp.CheckPaths(context.Background(), filepath.Join(dir, "missing"))
	require.Error(t, err)
}
