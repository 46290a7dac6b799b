package policy

import (
	"fmt"
)

//go:generate go tool stringer -type=ErrorKind -trimprefix=Kind -output=errorkind_string.go

// ErrorKind classifies a policy validation failure.
type ErrorKind int

const (
	_ ErrorKind = iota

	// KindInvalidCombination: fields are individually valid but contradict each other.
	KindInvalidCombination
	// KindUnknownPlaceholder: the operation-name template names an unknown placeholder.
	KindUnknownPlaceholder
	// KindMalformedTemplate: the template has unbalanced braces or non-identifier text.
	KindMalformedTemplate
	// KindInvalidPattern: an include path pattern is not a valid glob.
	KindInvalidPattern
	// KindInvalidValue: a single field holds a value outside its domain.
	KindInvalidValue
)

// Error is a fatal policy validation failure. Resolve may return several,
// joined with errors.Join; use errors.As to get at the first one.
type Error struct {
	Kind ErrorKind
	// Field is the settings key at fault.
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("policy error (%s) in %s: %s", e.Kind, e.Field, e.Message)
}

func newError(kind ErrorKind, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}
