package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"time"

	"client-generator/internal/naming"
	"client-generator/internal/partition"
	"client-generator/internal/plan"
	"client-generator/internal/policy"
)

const (
	typesFilename  = "types.go"
	wiringFilename = "wiring.go"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package name derived from the namespace.
	PackageName string
	// OutputDir receives .unformatted.go sidecars when formatting fails.
	// Empty disables them.
	OutputDir string
	// GenerateComments enables doc comments on interfaces and methods.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{GenerateComments: true}
}

// Generator generates Go code from a plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file (e.g., "api_client_pet.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// unit is the per-run state shared by every file of one Generate call.
type unit struct {
	packageName  string
	exported     bool
	responseType string
	comments     bool
}

// Generate renders p. Files come in a fixed order: interfaces in plan
// order, then types.go and wiring.go when needed.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	u := g.newUnit(p)

	var files []GeneratedFile

	seen := map[string]string{typesFilename: "", wiringFilename: ""}
	needsResponse := false

	for _, iface := range p.Interfaces {
		filename := interfaceFilename(iface.Name)
		if owner, ok := seen[filename]; ok {
			return nil, fmt.Errorf("interfaces %q and %q map to the same file %s", owner, iface.Name, filename)
		}

		seen[filename] = iface.Name

		data := u.interfaceData(iface, p.Policy.PartitionStrategy)

		file, err := g.render(interfaceTemplate, filename, data)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", iface.Name, err)
		}

		files = append(files, *file)

		needsResponse = needsResponse || slices.ContainsFunc(iface.Methods, func(m partition.MethodSignature) bool {
			return m.Returns == partition.ReturnAPIResponse
		})
	}

	if needsResponse {
		file, err := g.render(typesTemplate, typesFilename, typesData{
			PackageName:  u.packageName,
			ResponseType: u.responseType,
			Comments:     u.comments,
		})
		if err != nil {
			return nil, fmt.Errorf("generating types: %w", err)
		}

		files = append(files, *file)
	}

	if p.Wiring != nil {
		file, err := g.render(wiringTemplate, wiringFilename, u.wiringData(p))
		if err != nil {
			return nil, fmt.Errorf("generating wiring: %w", err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) newUnit(p *plan.Plan) *unit {
	u := &unit{
		packageName: g.config.PackageName,
		exported:    p.Policy.TypeAccessibility != policy.AccessibilityInternal.String(),
		comments:    g.config.GenerateComments,
	}

	if u.packageName == "" {
		u.packageName = packageName(p.Namespace)
	}

	u.responseType = u.ident("Response")

	return u
}

// ident applies the accessibility of the run to a generated type or
// value name.
func (u *unit) ident(name string) string {
	if u.exported {
		return name
	}

	return naming.Unexported(name)
}

// render executes tmpl and formats the result.
func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// buildSuffixes are trailing file-name words the go tool treats as build
// constraints.
var buildSuffixes = map[string]bool{
	"test": true, "aix": true, "android": true, "darwin": true, "dragonfly": true,
	"freebsd": true, "hurd": true, "illumos": true, "ios": true, "js": true,
	"linux": true, "netbsd": true, "openbsd": true, "plan9": true, "solaris": true,
	"wasip1": true, "windows": true, "zos": true, "386": true, "amd64": true,
	"arm": true, "arm64": true, "loong64": true, "mips": true, "mipsle": true,
	"mips64": true, "mips64le": true, "ppc64": true, "ppc64le": true,
	"riscv64": true, "s390x": true, "wasm": true,
}

func interfaceFilename(name string) string {
	base := naming.Snake(name)

	words := strings.Split(base, "_")
	if buildSuffixes[words[len(words)-1]] {
		base += "_client"
	}

	return base + ".go"
}

type interfaceData struct {
	PackageName string
	Imports     []string
	Doc         []string
	Name        string
	Methods     []methodData
}

type methodData struct {
	Doc       []string
	Name      string
	Signature string
}

func (u *unit) interfaceData(iface partition.InterfaceDefinition, strategy string) interfaceData {
	data := interfaceData{
		PackageName: u.packageName,
		Name:        iface.Name,
	}

	imports := map[string]bool{}

	if u.comments {
		data.Doc = []string{interfaceDoc(iface, strategy)}
	}

	for _, m := range iface.Methods {
		md := methodData{Name: m.Name, Signature: u.signature(m, imports)}
		if u.comments {
			md.Doc = methodDoc(m)
		}

		data.Methods = append(data.Methods, md)
	}

	for path := range imports {
		data.Imports = append(data.Imports, path)
	}

	slices.Sort(data.Imports)

	return data
}

func interfaceDoc(iface partition.InterfaceDefinition, strategy string) string {
	switch {
	case strategy == policy.StrategyByEndpoint.String() && len(iface.Methods) == 1:
		op := iface.Methods[0].Operation
		return fmt.Sprintf("%s calls %s %s.", iface.Name, op.Method, op.Path)
	case strategy == policy.StrategyByTag.String() && iface.GroupKey != "":
		return fmt.Sprintf("%s groups the operations tagged %q.", iface.Name, iface.GroupKey)
	case strategy == policy.StrategyByTag.String():
		return fmt.Sprintf("%s groups the operations without tags.", iface.Name)
	default:
		return fmt.Sprintf("%s is the API client.", iface.Name)
	}
}

// methodDoc returns comment paragraphs; "" separates them.
func methodDoc(m partition.MethodSignature) []string {
	op := m.Operation
	doc := []string{fmt.Sprintf("%s calls %s %s.", m.Name, op.Method, op.Path)}

	if s := strings.TrimSpace(op.Summary); s != "" {
		doc = append(doc, "")
		doc = append(doc, commentLines(s)...)
	}

	if m.AcceptHeader != "" {
		doc = append(doc, "", "Request header "+m.AcceptHeader)
	}

	if op.Deprecated {
		doc = append(doc, "", "Deprecated: the operation is marked deprecated by the API.")
	}

	return doc
}

// commentLines splits text into trimmed lines, keeping at most one blank
// line between paragraphs.
func commentLines(text string) []string {
	var lines []string

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" && (len(lines) == 0 || lines[len(lines)-1] == "") {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}

func (u *unit) signature(m partition.MethodSignature, imports map[string]bool) string {
	var args []string

	var reserved []string

	if m.Cancellable {
		args = append(args, "ctx context.Context")
		reserved = append(reserved, "ctx")
		imports["context"] = true
	}

	names := paramNames(m.Parameters, reserved...)
	for i, p := range m.Parameters {
		t := goType(p)
		if strings.Contains(t, "time.") {
			imports["time"] = true
		}

		args = append(args, names[i]+" "+t)
	}

	result := "([]byte, error)"
	if m.Returns == partition.ReturnAPIResponse {
		result = "(*" + u.responseType + ", error)"
	}

	return "(" + strings.Join(args, ", ") + ") " + result
}

type typesData struct {
	PackageName  string
	ResponseType string
	Comments     bool
}

type wiringData struct {
	PackageName string
	Comments    bool
	BaseURL     string
	Handlers    []string
	Retry       bool
	MaxAttempts int
	Delays      []string

	BaseURLName     string
	HandlersName    string
	MaxAttemptsName string
	DelaysName      string
}

func (u *unit) wiringData(p *plan.Plan) wiringData {
	w := p.Wiring

	data := wiringData{
		PackageName:     u.packageName,
		Comments:        u.comments,
		BaseURL:         w.BaseURL,
		Handlers:        w.Handlers,
		BaseURLName:     u.ident("BaseURL"),
		HandlersName:    u.ident("Handlers"),
		MaxAttemptsName: u.ident("RetryMaxAttempts"),
		DelaysName:      u.ident("RetryDelays"),
	}

	if w.Retry != nil {
		data.Retry = true
		data.MaxAttempts = w.Retry.MaxAttempts

		for _, d := range w.Retry.Delays {
			data.Delays = append(data.Delays, durationLiteral(d))
		}
	}

	return data
}

// durationLiteral writes d as Go source in the largest exact unit.
func durationLiteral(d time.Duration) string {
	units := []struct {
		size time.Duration
		name string
	}{
		{time.Hour, "time.Hour"},
		{time.Minute, "time.Minute"},
		{time.Second, "time.Second"},
		{time.Millisecond, "time.Millisecond"},
		{time.Microsecond, "time.Microsecond"},
	}

	for _, unit := range units {
		if d%unit.size == 0 {
			return strconv.FormatInt(int64(d/unit.size), 10) + " * " + unit.name
		}
	}

	return "time.Duration(" + strconv.FormatInt(int64(d), 10) + ")"
}

var funcs = template.FuncMap{"quote": strconv.Quote}

var interfaceTemplate = template.Must(template.New("interface").Funcs(funcs).Parse(`// Code generated by client-generator. DO NOT EDIT.

package {{.PackageName}}
{{if eq (len .Imports) 1}}
import "{{index .Imports 0}}"
{{else if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
{{range .Doc}}// {{.}}
{{end}}type {{.Name}} interface {
{{range $i, $m := .Methods}}{{if and $i $m.Doc}}
{{end}}{{range $m.Doc}}{{if .}}	// {{.}}{{else}}	//{{end}}
{{end}}	{{$m.Name}}{{$m.Signature}}
{{end}}}
`))

var typesTemplate = template.Must(template.New("types").Parse(`// Code generated by client-generator. DO NOT EDIT.

package {{.PackageName}}

import "net/http"
{{if .Comments}}
// {{.ResponseType}} is the full result of a call with status, headers and raw body.{{end}}
type {{.ResponseType}} struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
`))

var wiringTemplate = template.Must(template.New("wiring").Funcs(funcs).Parse(`// Code generated by client-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Retry}}
import "time"
{{end}}
{{if .Comments}}// {{.BaseURLName}} is the address the client is registered with.
{{end}}const {{.BaseURLName}} = {{quote .BaseURL}}

{{if .Comments}}// {{.HandlersName}} lists the delegating handlers in pipeline order.
{{end}}var {{.HandlersName}} = []string{ {{- range .Handlers}}
	{{quote .}},{{end}}
}
{{if .Retry}}
{{if .Comments}}// {{.MaxAttemptsName}} is the number of retries after the first attempt.
{{end}}const {{.MaxAttemptsName}} = {{.MaxAttempts}}

{{if .Comments}}// {{.DelaysName}} is the wait before each retry.
{{end}}var {{.DelaysName}} = []time.Duration{ {{- range .Delays}}
	{{.}},{{end}}
}
{{end}}`))
