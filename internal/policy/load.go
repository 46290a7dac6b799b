package policy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// LoadFile reads raw settings from path. Files ending in .hcl are decoded
// as HCL, everything else as YAML (which also covers JSON).
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return ParseHCL(data, path)
	}

	return ParseYAML(data)
}

// Load reads settings from path and resolves them into a policy.
func Load(path string) (*GenerationPolicy, error) {
	settings, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	p, err := Resolve(settings)
	if err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}

	return p, nil
}

// ParseYAML parses YAML (or JSON) data into raw settings.
func ParseYAML(data []byte) (Settings, error) {
	var s Settings

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return s, nil
}

// ParseHCL parses HCL data into raw settings. filename is only used in
// diagnostics.
func ParseHCL(data []byte, filename string) (Settings, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to parse settings HCL: %w", diags)
	}

	var s Settings

	diags = gohcl.DecodeBody(file.Body, nil, &s)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to decode settings HCL: %w", diags)
	}

	return s, nil
}
