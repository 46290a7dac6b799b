package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const opsYAML = `operations:
  - id: listPets
    method: GET
    path: /pets
    summary: List pets
    tags: [pets]
    accepts: [application/json]
    parameters:
      - {name: limit, type: integer, in: query}
  - id: getPet
    method: GET
    path: /pets/{id}
    tags: [pets]
    parameters:
      - {name: id, type: string, in: path}
  - id: oldPing
    method: GET
    path: /ping
    deprecated: true
`

const settingsYAML = `namespace: Acme.Store
interfaceBaseName: Store
includeDeprecated: false
dependencyInjection:
  baseUrl: https://api.example.com
`

const settingsHCL = `namespace           = "Acme.Store"
partition_strategy  = "ByTag"
interface_base_name = "Store"
include_deprecated  = false

dependency_injection {
  base_url      = "https://api.example.com"
  handler_chain = ["AuthHandler"]
  use_retry     = true
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestGenerate_GoOutput(t *testing.T) {
	dir := t.TempDir()
	ops := writeFile(t, dir, "ops.yaml", opsYAML)
	settings := writeFile(t, dir, "settings.yaml", settingsYAML)
	out := filepath.Join(dir, "out")

	code, _, stderr := execute("generate", "-o", ops, "-s", settings, "--out", out)
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(filepath.Join(out, "store.go"))
	require.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "package store")
	assert.Contains(t, src, "type Store interface")
	assert.Contains(t, src, "ListPets(")
	assert.Contains(t, src, "GetPet(")
	assert.NotContains(t, src, "OldPing")

	_, err = os.Stat(filepath.Join(out, "wiring.go"))
	assert.NoError(t, err)
}

func TestGenerate_YAMLToStdout(t *testing.T) {
	dir := t.TempDir()
	ops := writeFile(t, dir, "ops.yaml", opsYAML)
	settings := writeFile(t, dir, "settings.hcl", settingsHCL)

	code, stdout, stderr := execute("generate", "-o", ops, "-s", settings, "--format", "yaml")
	require.Equal(t, 0, code, stderr)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "Acme.Store", doc["namespace"])
	assert.Contains(t, stdout, "StorePets")
	assert.Contains(t, stdout, "https://api.example.com")
	assert.Contains(t, stdout, "AuthHandler")
}

func TestGenerate_YAMLToFile(t *testing.T) {
	dir := t.TempDir()
	ops := writeFile(t, dir, "ops.yaml", opsYAML)
	out := filepath.Join(dir, "nested", "plan.yaml")

	code, stdout, stderr := execute("generate", "-o", ops, "--format", "yaml", "--out", out)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ApiClient")
}

func TestGenerate_MetricsTextfile(t *testing.T) {
	dir := t.TempDir()
	ops := writeFile(t, dir, "ops.yaml", opsYAML)
	prom := filepath.Join(dir, "cg.prom")

	code, _, stderr := execute("generate", "-o", ops, "--format", "yaml",
		"--out", filepath.Join(dir, "plan.yaml"), "--metrics-textfile", prom)
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "client_generator_runs_total")
}

func TestGenerate_Dump(t *testing.T) {
	dir := t.TempDir()
	ops := writeFile(t, dir, "ops.yaml", opsYAML)

	code, _, stderr := execute("generate", "-o", ops, "--format", "yaml", "--dump")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Interfaces")
}

func TestGenerate_Warnings(t *testing.T) {
	dir := t.TempDir()
	ops := writeFile(t, dir, "ops.yaml", opsYAML)
	settings := writeFile(t, dir, "settings.yaml", "includeTags: [pets, ghosts]\n")

	code, _, stderr := execute("generate", "-o", ops, "-s", settings, "--format", "yaml")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "warning:")
	assert.Contains(t, stderr, "ghosts")
}

func TestGenerate_Errors(t *testing.T) {
	dir := t.TempDir()
	ops := writeFile(t, dir, "ops.yaml", opsYAML)
	badPolicy := writeFile(t, dir, "bad.yaml", "partitionStrategy: Sideways\n")
	badRetry := writeFile(t, dir, "retry.yaml", "dependencyInjection:\n  useRetry: true\n  maxRetryAttempts: 0\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing operations flag", []string{"generate"}, "operations"},
		{"unknown format", []string{"generate", "-o", ops, "--format", "xml"}, "format"},
		{"stdout for go", []string{"generate", "-o", ops, "--out", "-"}, "directory"},
		{"missing file", []string{"generate", "-o", filepath.Join(dir, "nope.yaml")}, "nope.yaml"},
		{"invalid policy", []string{"generate", "-o", ops, "-s", badPolicy, "--format", "yaml"}, "Sideways"},
		{"invalid retry", []string{"generate", "-o", ops, "-s", badRetry, "--format", "yaml"}, "maxRetryAttempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "Error:")
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.yaml", opsYAML)
	second := writeFile(t, dir, "b.yaml", "operations: []\n")
	settings := writeFile(t, dir, "settings.hcl", settingsHCL)

	code, stdout, stderr := execute("check", "-s", settings, first, second)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], first+": ok, 1 interfaces, 2 methods, 1 dropped"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], second+": ok, 0 interfaces"), lines[1])
	assert.Contains(t, stderr, second+": warning:")
}

func TestCheck_Strict(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.yaml", "operations: []\n")

	code, _, stderr := execute("check", "--strict", empty)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "strict mode, 1 warnings")
	assert.Contains(t, stderr, "[no_operations] "+empty+": no operation survived filtering")

	// Without --strict the same warning passes.
	code, _, stderr = execute("check", empty)
	assert.Equal(t, 0, code, stderr)
}

func TestCheck_FailedRun(t *testing.T) {
	dir := t.TempDir()
	ops := writeFile(t, dir, "ops.yaml", opsYAML)
	settings := writeFile(t, dir, "settings.yaml", "interfaceBaseName: Store\noperationNameTemplate: \"{httpMethod}\"\n")

	code, stdout, stderr := execute("check", "-s", settings, ops)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, ops+": FAILED")
	assert.Contains(t, stderr, "Error:")
}

func TestVersion(t *testing.T) {
	code, stdout, _ := execute("version")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, Version)
}
