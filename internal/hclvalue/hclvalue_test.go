package hclvalue

import (
	"testing"

	"github.com/specialistvlad/isgo/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParse(t *testing.T) {
	t.Parallel()

	s := is.New()
	testCases := []struct {
		src  string
		pred string
	}{
		{src: `8080`, pred: "integer"},
		{src: `" 3.5 "`, pred: "numeral"},
		{src: `"hello"`, pred: "string"},
		{src: `true`, pred: "boolean"},
		{src: `null`, pred: "null"},
		{src: `undefined`, pred: "undefined"},
		{src: `infinity`, pred: "infinite"},
		{src: `-infinity`, pred: "infinite"},
		{src: `nan()`, pred: "nan"},
		{src: `[1, 2, 3]`, pred: "array"},
		{src: `{a = 1, b = "x"}`, pred: "object"},
		{src: `{}`, pred: "emptyObject"},
		{src: `symbol("id")`, pred: "symbol"},
		{src: `regexp("^a+$")`, pred: "regexp"},
		{src: `timestamp("2024-01-01T00:00:00Z")`, pred: "date"},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			v, err := Parse(tc.src)
			require.NoError(t, err)
			assert.True(t, s.Is(tc.pred, v), "expected %s to satisfy %s", tc.src, tc.pred)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{`[1,`, `regexp("(")`, `timestamp("yesterday")`, `missing`, `symbol()`} {
		_, err := Parse(src)
		assert.Error(t, err, src)
	}
}

func TestParse_Structure(t *testing.T) {
	t.Parallel()

	v, err := Parse(`{name = "ann", tags = ["a", "b"]}`)
	require.NoError(t, err)
	assert.True(t, v.Type().IsObjectType())
	assert.Equal(t, cty.StringVal("ann"), v.GetAttr("name"))

	s := is.New()
	assert.True(t, s.Is("deepEqual", v, map[string]any{"name": "ann", "tags": []string{"a", "b"}}))
	assert.True(t, s.Is("propertyDefined", v, "tags.1"))
	assert.True(t, s.Is("inArray", "b", v.GetAttr("tags")))
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	args, err := ParseAll([]string{`"lo"`, `"hello"`, `-2`})
	require.NoError(t, err)
	require.Len(t, args, 3)
	assert.True(t, is.New().Is("substring", args...))

	_, err = ParseAll([]string{`1`, `{`})
	assert.Error(t, err)
}

func TestSymbolsAreDistinct(t *testing.T) {
	t.Parallel()

	a, err := Parse(`symbol("x")`)
	require.NoError(t, err)
	b, err := Parse(`symbol("x")`)
	require.NoError(t, err)

	s := is.New()
	assert.True(t, s.Is("equal", a, a))
	assert.False(t, s.Is("equal", a, b))
}
