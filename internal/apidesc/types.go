package apidesc

import (
	"strings"

	"client-generator/internal/common"
)

//go:generate go tool stringer -type=Location -trimprefix=Location -output=location_string.go

// Location is where a parameter travels in the HTTP request.
type Location int

const (
	LocationQuery Location = iota
	LocationPath
	LocationHeader
	LocationBody
)

// ParseLocation parses the "in" value of a parameter. An empty string means query.
func ParseLocation(s string) (Location, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "query":
		return LocationQuery, true
	case "path":
		return LocationPath, true
	case "header":
		return LocationHeader, true
	case "body":
		return LocationBody, true
	default:
		return 0, false
	}
}

// Parameter is one input of an operation.
type Parameter struct {
	// Name is unique within its operation.
	Name string
	// Type is the schema type tag ("string", "integer", or a named schema).
	Type     string
	Required bool
	Location Location
}

// Operation is one API action. Values are produced by the loader and are
// only ever read afterwards; downstream stages keep pointers into the
// loaded slice instead of copies.
type Operation struct {
	ID         string
	Method     string
	Path       string
	Parameters []Parameter
	// Tags has set semantics; first-seen order is kept.
	Tags       []string
	Deprecated bool
	Summary    string
	// Accepts lists the response content types, in preference order.
	Accepts []string
}

// HasTags reports whether the operation carries at least one tag.
func (o *Operation) HasTags() bool {
	return len(o.Tags) > 0
}

// PrimaryTag returns the first tag, or "" for untagged operations.
func (o *Operation) PrimaryTag() string {
	tag, _ := common.First(o.Tags)
	return tag
}

// HasTag reports whether tag is one of the operation's tags.
func (o *Operation) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// Label returns a stable human-readable handle for logs and errors:
// the id when present, otherwise "METHOD /path".
func (o *Operation) Label() string {
	if o.ID != "" {
		return o.ID
	}

	return strings.ToUpper(o.Method) + " " + o.Path
}
