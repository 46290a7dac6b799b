package naming

import (
	"strings"

	"client-generator/internal/apidesc"
	"client-generator/internal/common"
	"client-generator/internal/policy"
)

// ExecuteMethodName is the method name of single-method endpoint
// interfaces when no operation-name template is set.
const ExecuteMethodName = "Execute"

// Suffixes appended to interface names.
const (
	EndpointSuffix = "Endpoint"
	UntaggedSuffix = "Untagged"
)

// UntaggedGroup labels the reserved ByTag bucket in errors.
const UntaggedGroup = "<untagged>"

// Resolver names interfaces and methods under one policy.
type Resolver struct {
	policy *policy.GenerationPolicy
}

// NewResolver creates a Resolver reading p.
func NewResolver(p *policy.GenerationPolicy) *Resolver {
	return &Resolver{policy: p}
}

// OperationKey returns the identifier-ready id of op: its id, or for
// operations without one the method followed by the path words
// ("GET /pets/{petId}" -> "GetPetsPetId").
func OperationKey(op *apidesc.Operation) string {
	if id := Identifier(op.ID); id != "" {
		return id
	}

	return Identifier(strings.ToLower(op.Method) + " " + op.Path)
}

// MethodName resolves the method name of op.
func (r *Resolver) MethodName(op *apidesc.Operation) string {
	if tmpl := r.policy.NameTemplate(); tmpl != nil {
		return upperFirst(tmpl.Expand(func(p policy.Placeholder) string {
			return placeholderValue(p, op)
		}))
	}

	if r.policy.Strategy() == policy.StrategyByEndpoint {
		return ExecuteMethodName
	}

	return OperationKey(op)
}

func placeholderValue(p policy.Placeholder, op *apidesc.Operation) string {
	switch p {
	case policy.PlaceholderOperationID:
		return OperationKey(op)
	case policy.PlaceholderHTTPMethod:
		return methodWord(op.Method)
	case policy.PlaceholderLastSegment:
		return Identifier(LastSegment(op.Path))
	case policy.PlaceholderTag:
		return Identifier(op.PrimaryTag())
	default:
		return ""
	}
}

// ParameterOrder returns the method parameters of op as a new slice. Header
// parameters are dropped unless operation headers are generated; with
// optionalParametersLast, required parameters come first and the original
// order is kept within each group.
func (r *Resolver) ParameterOrder(op *apidesc.Operation) []apidesc.Parameter {
	params := make([]apidesc.Parameter, 0, len(op.Parameters))

	for _, p := range op.Parameters {
		if p.Location == apidesc.LocationHeader && !r.policy.GenerateOperationHeaders() {
			continue
		}

		params = append(params, p)
	}

	if r.policy.OptionalParametersLast() {
		params = common.StablePartition(params, func(p apidesc.Parameter) bool { return p.Required })
	}

	return params
}

// InterfaceName resolves the interface name for a partition group key: the
// tag under ByTag, the operation key under ByEndpoint. The key is ignored
// under None.
func (r *Resolver) InterfaceName(key string) string {
	base := Identifier(r.policy.InterfaceBaseName())

	var name string

	switch r.policy.Strategy() {
	case policy.StrategyNone:
		name = base
	case policy.StrategyByTag:
		name = base + Identifier(key)
	case policy.StrategyByEndpoint:
		name = Identifier(key) + EndpointSuffix
	}

	return r.applyAccessibility(name)
}

// UntaggedInterfaceName is the name of the reserved ByTag bucket holding
// operations without tags.
func (r *Resolver) UntaggedInterfaceName() string {
	return r.applyAccessibility(Identifier(r.policy.InterfaceBaseName()) + UntaggedSuffix)
}

func (r *Resolver) applyAccessibility(name string) string {
	switch r.policy.Accessibility() {
	case policy.AccessibilityInternal:
		return Unexported(name)
	case policy.AccessibilityPublic:
		return name
	}

	return name
}
