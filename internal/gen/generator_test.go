package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-generator/internal/apidesc"
	"client-generator/internal/plan"
	"client-generator/internal/policy"
)

func ptr[T any](v T) *T { return &v }

func petstoreOps() []apidesc.Operation {
	return []apidesc.Operation{
		{
			ID: "listPets", Method: "GET", Path: "/pets", Tags: []string{"pet"},
			Summary: "List all pets.",
			Parameters: []apidesc.Parameter{
				{Name: "limit", Type: "integer"},
				{Name: "status", Type: "string", Required: true},
			},
			Accepts: []string{"application/json"},
		},
		{
			ID: "addPet", Method: "POST", Path: "/pets", Tags: []string{"pet"},
			Parameters: []apidesc.Parameter{{Name: "body", Type: "Pet", Required: true, Location: apidesc.LocationBody}},
			Deprecated: true,
		},
		{ID: "health", Method: "GET", Path: "/health"},
	}
}

func generate(t *testing.T, settings policy.Settings, config GeneratorConfig) map[string]string {
	t.Helper()

	p, err := plan.NewEngine().Generate(petstoreOps(), settings)
	require.NoError(t, err)

	files, err := NewGenerator(config).Generate(p)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	fset := token.NewFileSet()

	for _, f := range files {
		_, err := parser.ParseFile(fset, f.Filename, f.Content, parser.ParseComments)
		require.NoError(t, err, "%s:\n%s", f.Filename, f.Content)

		out[f.Filename] = string(f.Content)
	}

	return out
}

func TestGenerator_None(t *testing.T) {
	files := generate(t, policy.Settings{Namespace: "Petstore.Client"}, DefaultGeneratorConfig())
	require.Len(t, files, 1)

	content := files["api_client.go"]
	assert.Contains(t, content, "// Code generated by client-generator. DO NOT EDIT.")
	assert.Contains(t, content, "package client")
	assert.Contains(t, content, "// ApiClient is the API client.")
	assert.Contains(t, content, "type ApiClient interface {")
	assert.Contains(t, content, "\tListPets(limit *int64, status string) ([]byte, error)")
	assert.Contains(t, content, "\t// List all pets.")
	assert.Contains(t, content, "\t// Request header Accept: application/json")
	assert.Contains(t, content, "\tAddPet(body any) ([]byte, error)")
	assert.Contains(t, content, "\t// Deprecated: the operation is marked deprecated by the API.")
	assert.Contains(t, content, "\tHealth() ([]byte, error)")
	assert.NotContains(t, content, "import")
}

func TestGenerator_ByTagWithFlags(t *testing.T) {
	files := generate(t, policy.Settings{
		PartitionStrategy:      "byTag",
		OptionalParametersLast: true,
		UseCancellationTokens:  true,
		ReturnAPIResponse:      true,
	}, DefaultGeneratorConfig())

	require.Contains(t, files, "api_client_pet.go")
	require.Contains(t, files, "api_client_untagged.go")
	require.Contains(t, files, "types.go")

	pet := files["api_client_pet.go"]
	assert.Contains(t, pet, "package generatedcode")
	assert.Contains(t, pet, `import "context"`)
	assert.Contains(t, pet, `// ApiClientPet groups the operations tagged "pet".`)
	assert.Contains(t, pet, "\tListPets(ctx context.Context, status string, limit *int64) (*Response, error)")

	assert.Contains(t, files["api_client_untagged.go"], "// ApiClientUntagged groups the operations without tags.")
	assert.Contains(t, files["types.go"], "type Response struct {")
	assert.Contains(t, files["types.go"], `import "net/http"`)
}

func TestGenerator_ByEndpointInternal(t *testing.T) {
	files := generate(t, policy.Settings{
		PartitionStrategy: "byEndpoint",
		TypeAccessibility: "internal",
		ReturnAPIResponse: true,
	}, GeneratorConfig{PackageName: "petapi"})

	require.Len(t, files, 4)

	list := files["list_pets_endpoint.go"]
	assert.Contains(t, list, "package petapi")
	assert.Contains(t, list, "type listPetsEndpoint interface {")
	assert.Contains(t, list, "\tExecute(limit *int64, status string) (*response, error)")
	assert.NotContains(t, list, "calls GET", "comments are disabled")

	assert.Contains(t, files["types.go"], "type response struct {")
}

func TestGenerator_Wiring(t *testing.T) {
	files := generate(t, policy.Settings{
		DependencyInjection: &policy.DependencyInjectionSettings{
			BaseURL:             "https://petstore.example.com",
			HandlerChain:        []string{"Auth", "Log", "Auth"},
			UseRetry:            true,
			MaxRetryAttempts:    ptr(3),
			FirstBackoffSeconds: ptr(0.5),
		},
	}, DefaultGeneratorConfig())

	wiring := files["wiring.go"]
	require.NotEmpty(t, wiring)
	assert.Contains(t, wiring, `import "time"`)
	assert.Contains(t, wiring, `const BaseURL = "https://petstore.example.com"`)
	assert.Contains(t, wiring, "var Handlers = []string{\n\t\"Auth\",\n\t\"Log\",\n\t\"Auth\",\n}")
	assert.Contains(t, wiring, "const RetryMaxAttempts = 3")
	assert.Contains(t, wiring, "500 * time.Millisecond,\n\t1 * time.Second,\n\t2 * time.Second,")
}

func TestGenerator_WiringWithoutRetry(t *testing.T) {
	files := generate(t, policy.Settings{
		DependencyInjection: &policy.DependencyInjectionSettings{},
	}, DefaultGeneratorConfig())

	wiring := files["wiring.go"]
	assert.Contains(t, wiring, `const BaseURL = ""`)
	assert.Contains(t, wiring, "var Handlers = []string{")
	assert.NotContains(t, wiring, "time.")
	assert.NotContains(t, wiring, "RetryMaxAttempts")
}

func TestGenerator_Deterministic(t *testing.T) {
	settings := policy.Settings{PartitionStrategy: "byTag", UseCancellationTokens: true}

	first := generate(t, settings, DefaultGeneratorConfig())
	for range 5 {
		assert.Equal(t, first, generate(t, settings, DefaultGeneratorConfig()))
	}
}

func TestGenerator_EmptyPlan(t *testing.T) {
	p, err := plan.NewEngine().Generate(nil, policy.Settings{})
	require.NoError(t, err)

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestInterfaceFilename(t *testing.T) {
	assert.Equal(t, "api_client_pet.go", interfaceFilename("ApiClientPet"))
	assert.Equal(t, "api_client_test_client.go", interfaceFilename("ApiClientTest"))
	assert.Equal(t, "api_client_windows_client.go", interfaceFilename("ApiClientWindows"))
	assert.Equal(t, "api_client_linux_amd64_client.go", interfaceFilename("ApiClientLinuxAmd64"))
}

func TestTypeFormatting(t *testing.T) {
	tests := []struct {
		param apidesc.Parameter
		want  string
	}{
		{apidesc.Parameter{Type: "string", Required: true}, "string"},
		{apidesc.Parameter{Type: "integer"}, "*int64"},
		{apidesc.Parameter{Type: "boolean", Location: apidesc.LocationBody}, "bool"},
		{apidesc.Parameter{Type: "[]string"}, "[]string"},
		{apidesc.Parameter{Type: "Pet"}, "any"},
		{apidesc.Parameter{Type: "date-time", Required: true}, "time.Time"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, goType(tt.param), tt.param.Type)
	}

	assert.Equal(t, []string{"ctx2", "petId", "petId2", "type_"}, paramNames([]apidesc.Parameter{
		{Name: "ctx"}, {Name: "pet-id"}, {Name: "petId"}, {Name: "type"},
	}, "ctx"))

	assert.Equal(t, "client", packageName("Petstore.Client"))
	assert.Equal(t, "petapi", packageName("github.com/acme/petapi"))
	assert.Equal(t, "myapi", packageName("my-api"))
}

func TestDurationLiteral(t *testing.T) {
	assert.Equal(t, "500 * time.Millisecond", durationLiteral(500*time.Millisecond))
	assert.Equal(t, "90 * time.Second", durationLiteral(90*time.Second))
	assert.Equal(t, "2 * time.Minute", durationLiteral(2*time.Minute))
	assert.Equal(t, "time.Duration(1500)", durationLiteral(1500))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	files := []GeneratedFile{
		{Filename: "a.go", Content: []byte("package a\n")},
		{Filename: "b.go", Content: []byte("package a\n")},
	}

	written, err := WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "b.go"}, written)

	files[1].Content = []byte("package a\n\nconst B = 1\n")

	written, err = WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.go"}, written)

	data, err := os.ReadFile(filepath.Join(dir, "b.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n\nconst B = 1\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files are left behind")
}

func TestGenerator_UnformattedSidecar(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(GeneratorConfig{OutputDir: dir})

	file, err := g.render(typesTemplate, "types.go", typesData{PackageName: "1bad", ResponseType: "Response"})
	require.Error(t, err)
	require.NotNil(t, file)

	_, statErr := os.Stat(filepath.Join(dir, "types.unformatted.go"))
	assert.NoError(t, statErr)
}

func TestGenerator_MultiLineSummary(t *testing.T) {
	ops := []apidesc.Operation{{
		ID: "listPets", Method: "GET", Path: "/pets",
		Summary: "List pets.\r\nReturns a page.\n\n\n  Sorted by name.  ",
	}}

	p, err := plan.NewEngine().Generate(ops, policy.Settings{})
	require.NoError(t, err)

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)
	require.Len(t, files, 1)

	_, err = parser.ParseFile(token.NewFileSet(), files[0].Filename, files[0].Content, parser.ParseComments)
	require.NoError(t, err)

	assert.Contains(t, string(files[0].Content),
		"\t// List pets.\n\t// Returns a page.\n\t//\n\t// Sorted by name.\n\tListPets() ([]byte, error)")
}

func TestCommentLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "", "c"}, commentLines("a\n b \n\n\n c"))
	assert.Equal(t, []string{"single"}, commentLines("single"))
}
