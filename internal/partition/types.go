package partition

import (
	"client-generator/internal/apidesc"
	"client-generator/internal/naming"
)

//go:generate go tool stringer -type=ReturnKind -trimprefix=Return -output=returnkind_string.go

// ReturnKind marks what a generated method returns.
type ReturnKind int

const (
	// ReturnPayload is the decoded response body.
	ReturnPayload ReturnKind = iota
	// ReturnAPIResponse wraps the body together with status and headers.
	ReturnAPIResponse
)

// MethodSignature is one method of a generated interface.
type MethodSignature struct {
	Name string
	// Parameters is the post-ordering copy; the operation's own slice is
	// left untouched.
	Parameters []apidesc.Parameter
	// Operation points back at the source operation. It is not owned.
	Operation *apidesc.Operation
	Returns   ReturnKind
	// AcceptHeader is the full header line ("Accept: application/json"),
	// empty when accept headers are off or the operation declares none.
	AcceptHeader string
	// Cancellable methods take a context as first argument.
	Cancellable bool
}

// InterfaceDefinition is one generated interface. Values returned by
// Partition are not modified afterwards.
type InterfaceDefinition struct {
	Name string
	// GroupKey is the tag (ByTag), operation key (ByEndpoint) or "" (None
	// and the untagged bucket).
	GroupKey string
	Methods  []MethodSignature
}

// OperationCount returns the number of methods in the interface.
func (d InterfaceDefinition) OperationCount() int {
	return len(d.Methods)
}

// bucket is the mutable form of an interface while it is being filled.
type bucket struct {
	name     string
	key      string
	untagged bool
	ops      []*apidesc.Operation
}

// label names the bucket in errors.
func (b *bucket) label() string {
	if b.untagged {
		return naming.UntaggedGroup
	}

	return b.key
}
