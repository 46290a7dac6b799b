package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"client-generator/internal/common"
)

// Well-known diagnostic codes.
const (
	CodeNoOperations       = "no_operations"
	CodeUnusedIncludeTag   = "unused_include_tag"
	CodeUnusedPathPattern  = "unused_path_pattern"
	CodeConstantMethodName = "constant_method_name"
	CodeOperationFiltered  = "operation_filtered"
	CodeEmptyHandlerChain  = "empty_handler_chain"
)

// Diagnostics holds all diagnostic information from one generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Interface names the interface this relates to (if any).
	Interface string
	// Operation identifies the operation this relates to (if any).
	Operation string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, iface, operation string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   message,
		Interface: iface,
		Operation: operation,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, iface, operation string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  DiagnosticWarning,
		Code:      code,
		Message:   message,
		Interface: iface,
		Operation: operation,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, iface, operation string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  DiagnosticInfo,
		Code:      code,
		Message:   message,
		Interface: iface,
		Operation: operation,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasCode reports whether any diagnostic of any severity carries code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Code == code {
				return true
			}
		}
	}

	return false
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Interface != "" {
		prefix = append(prefix, "["+d.Interface+"]")
	}

	if d.Operation != "" {
		prefix = append(prefix, d.Operation)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
