package checkfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/isgo/internal/hclvalue"
	"github.com/zclconf/go-cty/cty"
)

// hclCheckFile represents the top-level structure of a check file for decoding.
type hclCheckFile struct {
	Checks []*hclCheck `hcl:"check,block"`
}

type hclCheck struct {
	Name      string    `hcl:"name,label"`
	Predicate string    `hcl:"predicate"`
	Args      cty.Value `hcl:"args,optional"`
	Negate    *bool     `hcl:"negate,optional"`
	Expect    *bool     `hcl:"expect,optional"`
	DefRange  hcl.Range `hcl:",def_range"`
}

// parseHCL parses a single HCL file and returns the checks found within it.
func parseHCL(filePath string, parser *hclparse.Parser) ([]Check, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}
	return decodeHCL(hclFile.Body, filePath)
}

func decodeHCL(body hcl.Body, filePath string) ([]Check, error) {
	var parsed hclCheckFile
	diags := gohcl.DecodeBody(body, hclvalue.EvalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	if diags := uniqueCheckNames(parsed.Checks); diags.HasErrors() {
		return nil, fmt.Errorf("invalid check file %s: %w", filePath, diags)
	}

	checks := make([]Check, 0, len(parsed.Checks))
	for _, hc := range parsed.Checks {
		args, diags := argsFromCty(hc)
		if diags.HasErrors() {
			return nil, fmt.Errorf("error parsing check in file %s: %w", filePath, diags)
		}
		checks = append(checks, Check{
			Name:      hc.Name,
			Predicate: hc.Predicate,
			Args:      args,
			Negate:    boolOr(hc.Negate, false),
			Expect:    boolOr(hc.Expect, true),
			Source:    fmt.Sprintf("%s:%d", hc.DefRange.Filename, hc.DefRange.Start.Line),
		})
	}
	return checks, nil
}

// argsFromCty splits the args list into one cty.Value per argument. The
// elements are passed to predicates unconverted.
func argsFromCty(hc *hclCheck) ([]any, hcl.Diagnostics) {
	v := hc.Args
	if v.Type() == cty.NilType || v.IsNull() {
		return nil, nil
	}
	ty := v.Type()
	if !v.IsKnown() || !(ty.IsListType() || ty.IsTupleType()) {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid check arguments",
			Detail:   fmt.Sprintf("The \"args\" attribute of check %q must be a list, got %s.", hc.Name, ty.FriendlyName()),
			Subject:  hc.DefRange.Ptr(),
		}}
	}

	args := make([]any, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		args = append(args, ev)
	}
	return args, nil
}

// uniqueCheckNames reports every check whose name was already used in the
// same file.
func uniqueCheckNames(checks []*hclCheck) hcl.Diagnostics {
	var diags hcl.Diagnostics
	seen := make(map[string]*hclCheck, len(checks))
	for _, c := range checks {
		if first, ok := seen[c.Name]; ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"check\" block",
				Detail:   fmt.Sprintf("A check named %q was already declared at %s.", c.Name, first.DefRange.String()),
				Subject:  c.DefRange.Ptr(),
			})
			continue
		}
		seen[c.Name] = c
	}
	return diags
}
