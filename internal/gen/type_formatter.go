package gen

import (
	"strconv"
	"strings"

	"client-generator/internal/apidesc"
	"client-generator/internal/naming"
)

// primitiveTypes maps schema type tags to Go types.
var primitiveTypes = map[string]string{
	"string":    "string",
	"integer":   "int64",
	"int":       "int",
	"int32":     "int32",
	"int64":     "int64",
	"number":    "float64",
	"float":     "float32",
	"double":    "float64",
	"boolean":   "bool",
	"bool":      "bool",
	"binary":    "[]byte",
	"date-time": "time.Time",
}

// goType returns the Go type for a parameter. Unknown tags become any;
// optional scalars become pointers so "unset" stays representable.
func goType(p apidesc.Parameter) string {
	t := tagType(strings.TrimSpace(p.Type))

	if !p.Required && p.Location != apidesc.LocationBody && isScalar(t) {
		return "*" + t
	}

	return t
}

func tagType(tag string) string {
	if elem, ok := strings.CutPrefix(tag, "[]"); ok {
		return "[]" + tagType(elem)
	}

	if t, ok := primitiveTypes[strings.ToLower(tag)]; ok {
		return t
	}

	return "any"
}

func isScalar(t string) bool {
	return t != "any" && !strings.HasPrefix(t, "[]")
}

// paramNames returns Go argument names for params, unique among
// themselves and distinct from reserved.
func paramNames(params []apidesc.Parameter, reserved ...string) []string {
	used := make(map[string]bool, len(params)+len(reserved))
	for _, r := range reserved {
		used[r] = true
	}

	names := make([]string, len(params))

	for i, p := range params {
		base := naming.Unexported(p.Name)
		if base == "" {
			base = "arg"
		}

		name := base
		for n := 2; used[name]; n++ {
			name = base + strconv.Itoa(n)
		}

		used[name] = true
		names[i] = name
	}

	return names
}

// packageName derives a Go package name from a dotted or slashed
// namespace: "Petstore.Client" -> "client".
func packageName(namespace string) string {
	last := namespace
	if i := strings.LastIndexAny(namespace, "./"); i >= 0 {
		last = namespace[i+1:]
	}

	name := strings.ToLower(naming.Identifier(last))
	if name == "" {
		return "client"
	}

	return name
}
