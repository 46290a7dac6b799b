package apidesc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"client-generator/internal/common"
)

// knownMethods are the HTTP methods an operation may use.
var knownMethods = map[string]struct{}{
	"GET": {}, "PUT": {}, "POST": {}, "DELETE": {},
	"OPTIONS": {}, "HEAD": {}, "PATCH": {}, "TRACE": {},
}

// LoadFile loads and parses a YAML operation set from the given path.
func LoadFile(path string) ([]Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read operations file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into operations, in document order.
func Parse(data []byte) ([]Operation, error) {
	var doc document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse operations YAML: %w", err)
	}

	ops := make([]Operation, 0, len(doc.Operations))

	var errs []error

	for i := range doc.Operations {
		op, err := convertOperation(&doc.Operations[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("operation #%d: %w", i, err))
			continue
		}

		ops = append(ops, op)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return ops, nil
}

// convertOperation normalizes one decoded operation and checks model invariants.
func convertOperation(raw *operationYAML) (Operation, error) {
	method := strings.ToUpper(strings.TrimSpace(raw.Method))
	if _, ok := knownMethods[method]; !ok {
		return Operation{}, fmt.Errorf("unknown HTTP method %q", raw.Method)
	}

	path := strings.TrimSpace(raw.Path)
	if !strings.HasPrefix(path, "/") {
		return Operation{}, fmt.Errorf("path %q must start with '/'", raw.Path)
	}

	op := Operation{
		ID:         strings.TrimSpace(raw.ID),
		Method:     method,
		Path:       path,
		Summary:    raw.Summary,
		Deprecated: raw.Deprecated,
		Tags:       common.Dedupe(raw.Tags),
		Accepts:    common.Dedupe(raw.Accepts),
	}

	seen := make(map[string]struct{}, len(raw.Parameters))

	for _, p := range raw.Parameters {
		if p.Name == "" {
			return Operation{}, fmt.Errorf("%s: parameter without name", op.Label())
		}

		if _, dup := seen[p.Name]; dup {
			return Operation{}, fmt.Errorf("%s: duplicate parameter %q", op.Label(), p.Name)
		}

		seen[p.Name] = struct{}{}

		// Path parameters are always required, whatever the document says.
		required := p.Required || p.In == LocationPath

		op.Parameters = append(op.Parameters, Parameter{
			Name:     p.Name,
			Type:     p.Type,
			Required: required,
			Location: p.In,
		})
	}

	return op, nil
}
