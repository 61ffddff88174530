// Package hclvalue turns HCL literal expressions into cty values that the
// predicate set accepts as arguments.
//
// Besides plain HCL literals, expressions may use the variables `undefined`
// and `infinity`, and the functions symbol(description), regexp(pattern),
// timestamp(rfc3339) and nan().
package hclvalue

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/isgo/is"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Capsule types for the values HCL has no literal for.
var (
	SymbolType = cty.Capsule("symbol", reflect.TypeOf(is.Symbol{}))
	RegexpType = cty.Capsule("regexp", reflect.TypeOf(regexp.Regexp{}))
	TimeType   = cty.Capsule("timestamp", reflect.TypeOf(time.Time{}))
	NaNType    = cty.Capsule("nan", reflect.TypeOf(float64(0)))
)

// EvalContext returns the evaluation context used by Parse and by check
// files.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"undefined": cty.DynamicVal,
			"infinity":  cty.PositiveInfinity,
		},
		Functions: map[string]function.Function{
			"symbol":    symbolFunc,
			"regexp":    regexpFunc,
			"timestamp": timestampFunc,
			"nan":       nanFunc,
		},
	}
}

// Parse evaluates a single HCL expression.
func Parse(src string) (cty.Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<arg>", hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse %q: %w", src, diags)
	}
	val, diags := expr.Value(EvalContext())
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate %q: %w", src, diags)
	}
	return val, nil
}

// ParseAll evaluates each source in order and stops at the first failure.
func ParseAll(srcs []string) ([]any, error) {
	out := make([]any, 0, len(srcs))
	for _, src := range srcs {
		val, err := Parse(src)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

var symbolFunc = function.New(&function.Spec{
	Params: []function.Parameter{{Name: "description", Type: cty.String}},
	Type:   function.StaticReturnType(SymbolType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.CapsuleVal(SymbolType, is.NewSymbol(args[0].AsString())), nil
	},
})

var regexpFunc = function.New(&function.Spec{
	Params: []function.Parameter{{Name: "pattern", Type: cty.String}},
	Type:   function.StaticReturnType(RegexpType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		re, err := regexp.Compile(args[0].AsString())
		if err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		return cty.CapsuleVal(RegexpType, re), nil
	},
})

var timestampFunc = function.New(&function.Spec{
	Params: []function.Parameter{{Name: "value", Type: cty.String}},
	Type:   function.StaticReturnType(TimeType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		ts, err := time.Parse(time.RFC3339, args[0].AsString())
		if err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		return cty.CapsuleVal(TimeType, &ts), nil
	},
})

var nanFunc = function.New(&function.Spec{
	Type: function.StaticReturnType(NaNType),
	Impl: func(_ []cty.Value, _ cty.Type) (cty.Value, error) {
		nan := math.NaN()
		return cty.CapsuleVal(NaNType, &nan), nil
	},
})
