// Package checkfile loads named predicate checks from HCL and YAML files.
//
// An HCL check file holds `check` blocks:
//
//	check "port_is_integer" {
//	  predicate = "integer"
//	  args      = [8080]
//	}
//
// A YAML check file holds a `checks` list with the same attributes plus a
// `name`. Both formats accept the optional `negate` (default false) and
// `expect` (default true) attributes.
package checkfile
