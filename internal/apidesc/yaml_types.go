package apidesc

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// UnmarshalYAML decodes a location from its lowercase name.
func (l *Location) UnmarshalYAML(node *yaml.Node) error {
	var str string

	err := node.Decode(&str)
	if err != nil {
		return err
	}

	loc, ok := ParseLocation(str)
	if !ok {
		return fmt.Errorf("unknown parameter location %q (expected path, query, header or body)", str)
	}

	*l = loc

	return nil
}

// MarshalYAML encodes a location as its lowercase name.
func (l Location) MarshalYAML() (any, error) {
	return strings.ToLower(l.String()), nil
}

// document is the on-disk shape of an operation set.
type document struct {
	Operations []operationYAML `yaml:"operations"`
}

type operationYAML struct {
	ID         string          `yaml:"id"`
	Method     string          `yaml:"method"`
	Path       string          `yaml:"path"`
	Summary    string          `yaml:"summary,omitempty"`
	Deprecated bool            `yaml:"deprecated,omitempty"`
	Tags       StringOrArray   `yaml:"tags,omitempty"`
	Accepts    StringOrArray   `yaml:"accepts,omitempty"`
	Parameters []parameterYAML `yaml:"parameters,omitempty"`
}

type parameterYAML struct {
	Name     string   `yaml:"name"`
	In       Location `yaml:"in"`
	Type     string   `yaml:"type,omitempty"`
	Required bool     `yaml:"required,omitempty"`
}
