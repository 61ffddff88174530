package is_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/isgo/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type extraBundle struct {
	prefix string
}

func (b extraBundle) Register(r is.Registrar, s *is.Set) error {
	return r.AddPredicate(b.prefix+"Email", func(v string) bool {
		return s.Is("substring", "@", v)
	})
}

func TestNew_CoreNames(t *testing.T) {
	t.Parallel()

	s := is.New()
	names := s.Names()

	require.NotEmpty(t, names)
	assert.Equal(t, "null", names[0], "nil bundle registers first")
	assert.Equal(t, "deepEqual", names[len(names)-1], "equality bundle registers last")
	for _, name := range []string{
		"null", "undefined", "exist", "nil",
		"number", "numeral", "nan", "odd", "even", "finite", "infinite", "integer", "safeInteger",
		"string", "emptyString", "substring", "prefix", "suffix",
		"boolean",
		"object", "emptyObject", "propertyDefined", "conforms",
		"array", "arrayLikeObject", "inArray",
		"sameType", "primitive", "date", "error", "function", "map", "regexp", "set", "symbol",
		"equal", "deepEqual",
	} {
		assert.True(t, s.Has(name), "missing %q", name)
	}
}

func TestRegistrar_AddPredicate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		predKey string
		fn      any
		wantErr error
	}{
		{name: "reserved not", predKey: "not", fn: func(any) bool { return true }, wantErr: is.ErrReservedName},
		{name: "reserved use", predKey: "use", fn: func(any) bool { return true }, wantErr: is.ErrReservedName},
		{name: "duplicate", predKey: "null", fn: func(any) bool { return true }, wantErr: is.ErrDuplicateName},
		{name: "not a function", predKey: "answer", fn: 42, wantErr: is.ErrInvalidPredicate},
		{name: "wrong result", predKey: "count", fn: func(any) int { return 0 }, wantErr: is.ErrInvalidPredicate},
		{name: "nil function", predKey: "none", fn: (func(any) bool)(nil), wantErr: is.ErrInvalidPredicate},
		{name: "typed function", predKey: "short", fn: func(s string) bool { return len(s) < 3 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			s := is.New()
			before := len(s.Names())

			// --- Act ---
			err := s.Registrar().AddPredicate(tc.predKey, tc.fn)

			// --- Assert ---
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Len(t, s.Names(), before, "failed registration must not change the set")
				return
			}
			require.NoError(t, err)
			assert.True(t, s.Has(tc.predKey))
		})
	}
}

func TestRegistrar_NegationPair(t *testing.T) {
	t.Parallel()

	s := is.New()
	require.NoError(t, s.Registrar().AddPredicate("short", func(v string) bool { return len(v) < 3 }))

	assert.True(t, s.Is("short", "ab"))
	assert.False(t, s.Not("short", "ab"))
	assert.False(t, s.Is("short", "abcd"))
	assert.True(t, s.Not("short", "abcd"))

	// An argument that does not fit the parameter makes the predicate false.
	assert.False(t, s.Is("short", 1))
	assert.True(t, s.Not("short", 1))

	// A missing argument becomes the zero value.
	assert.True(t, s.Is("short"))

	not, ok := s.LookupNot("short")
	require.True(t, ok)
	assert.True(t, not("abcd"))
}

func TestSet_Use(t *testing.T) {
	t.Parallel()

	t.Run("bundle func", func(t *testing.T) {
		s := is.New()
		err := s.Use(func(r is.Registrar, s *is.Set) error {
			return r.AddPredicate("positive", func(v any) bool {
				return s.Is("number", v) && s.Not("equal", v, 0) && s.Is("finite", v)
			})
		})
		require.NoError(t, err)
		assert.True(t, s.Is("positive", 3))
		assert.False(t, s.Is("positive", "3"))
		assert.Equal(t, "positive", s.Names()[len(s.Names())-1])
	})

	t.Run("named bundle", func(t *testing.T) {
		s := is.New()
		var b is.Bundle = func(r is.Registrar, _ *is.Set) error {
			return r.AddPredicate("upper", func(v string) bool { return v != "" && strings.ToUpper(v) == v })
		}
		require.NoError(t, s.Use(b))
		assert.True(t, s.Is("upper", "ABC"))
		assert.True(t, s.Not("upper", "Abc"))
	})

	t.Run("bundler", func(t *testing.T) {
		s := is.New()
		require.NoError(t, s.Use(extraBundle{prefix: "loose"}))
		assert.True(t, s.Is("looseEmail", "a@b"))
		assert.False(t, s.Is("looseEmail", "ab"))
	})

	t.Run("non callable is ignored", func(t *testing.T) {
		s := is.New()
		before := s.Names()
		for _, v := range []any{nil, 42, "bundle", map[string]any{}, func() {}} {
			require.NoError(t, s.Use(v))
		}
		assert.Equal(t, before, s.Names())
	})

	t.Run("registration error is returned", func(t *testing.T) {
		s := is.New()
		err := s.Use(func(r is.Registrar, _ *is.Set) error {
			return r.AddPredicate("not", func(any) bool { return true })
		})
		require.ErrorIs(t, err, is.ErrReservedName)
		assert.False(t, errors.Is(err, is.ErrDuplicateName))
	})

	t.Run("second use of same bundle fails", func(t *testing.T) {
		s := is.New()
		b := extraBundle{prefix: "strict"}
		require.NoError(t, s.Use(b))
		require.ErrorIs(t, s.Use(b), is.ErrDuplicateName)
	})
}

func TestSet_UnknownPredicate(t *testing.T) {
	t.Parallel()

	s := is.New()
	assert.False(t, s.Has("missing"))
	_, ok := s.Lookup("missing")
	assert.False(t, ok)
	assert.PanicsWithValue(t, `is: predicate "missing" is not registered`, func() { s.Is("missing", 1) })
	assert.PanicsWithValue(t, `is: predicate "missing" is not registered`, func() { s.Not("missing", 1) })
}

func TestSet_Independent(t *testing.T) {
	t.Parallel()

	a, b := is.New(), is.New()
	require.NoError(t, a.Registrar().AddPredicate("only", func(any) bool { return true }))
	assert.True(t, a.Has("only"))
	assert.False(t, b.Has("only"))
}
