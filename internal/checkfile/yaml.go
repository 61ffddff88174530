package checkfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlCheckFile struct {
	Checks []yaml.Node `yaml:"checks"`
}

type yamlCheck struct {
	Name      string `yaml:"name"`
	Predicate string `yaml:"predicate"`
	Args      []any  `yaml:"args"`
	Negate    *bool  `yaml:"negate"`
	Expect    *bool  `yaml:"expect"`
}

// parseYAML decodes a YAML check file. Arguments keep the types yaml.v3
// gives them: ints, float64s (.nan and .inf included), strings, bools, nil,
// []any and map[string]any.
func parseYAML(src []byte, filePath string) ([]Check, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var parsed yamlCheckFile
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filePath, err)
	}

	checks := make([]Check, 0, len(parsed.Checks))
	seen := make(map[string]int, len(parsed.Checks))
	for i := range parsed.Checks {
		node := &parsed.Checks[i]
		var yc yamlCheck
		if err := node.Decode(&yc); err != nil {
			return nil, fmt.Errorf("failed to decode check in file %s:%d: %w", filePath, node.Line, err)
		}
		if yc.Name == "" {
			return nil, fmt.Errorf("check in file %s:%d has no name", filePath, node.Line)
		}
		if yc.Predicate == "" {
			return nil, fmt.Errorf("check %q in file %s:%d has no predicate", yc.Name, filePath, node.Line)
		}
		if line, ok := seen[yc.Name]; ok {
			return nil, fmt.Errorf("duplicate check %q in file %s:%d, first declared at line %d", yc.Name, filePath, node.Line, line)
		}
		seen[yc.Name] = node.Line

		checks = append(checks, Check{
			Name:      yc.Name,
			Predicate: yc.Predicate,
			Args:      yc.Args,
			Negate:    boolOr(yc.Negate, false),
			Expect:    boolOr(yc.Expect, true),
			Source:    fmt.Sprintf("%s:%d", filePath, node.Line),
		})
	}
	return checks, nil
}
