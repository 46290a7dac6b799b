package policy

import (
	"strings"
	"unicode"

	"client-generator/internal/match"
)

//go:generate go tool stringer -type=Placeholder -trimprefix=Placeholder -output=placeholder_string.go

// Placeholder is one of the closed set of values an operation-name
// template can substitute.
type Placeholder int

const (
	PlaceholderOperationID Placeholder = iota
	PlaceholderHTTPMethod
	PlaceholderLastSegment
	PlaceholderTag
)

// placeholderSpellings lists the keys of placeholderNames in a fixed order.
var placeholderSpellings = []string{"operationId", "operationName", "httpMethod", "method", "lastSegment", "tag"}

var placeholderNames = map[string]Placeholder{
	"operationId":   PlaceholderOperationID,
	"operationName": PlaceholderOperationID,
	"httpMethod":    PlaceholderHTTPMethod,
	"method":        PlaceholderHTTPMethod,
	"lastSegment":   PlaceholderLastSegment,
	"tag":           PlaceholderTag,
}

// alwaysNonEmpty reports whether the placeholder expands to a non-empty
// value for every operation. Only {tag} can be empty (untagged operations).
func (p Placeholder) alwaysNonEmpty() bool {
	return p != PlaceholderTag
}

// Segment is a literal run of text or a single placeholder.
type Segment struct {
	Literal     string
	Placeholder Placeholder
	IsLiteral   bool
}

// NameTemplate is a compiled operation-name template.
type NameTemplate struct {
	source   string
	segments []Segment
}

// CompileTemplate parses src. Errors carry KindUnknownPlaceholder or
// KindMalformedTemplate and name the operationNameTemplate field.
func CompileTemplate(src string) (*NameTemplate, error) {
	const field = "operationNameTemplate"

	t := &NameTemplate{source: src}

	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, Segment{Literal: lit.String(), IsLiteral: true})
			lit.Reset()
		}
	}

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '{':
			end := indexRune(runes[i+1:], '}')
			if end < 0 {
				return nil, newError(KindMalformedTemplate, field, "unclosed '{' at offset %d in %q", i, src)
			}

			name := string(runes[i+1 : i+1+end])
			if strings.ContainsRune(name, '{') {
				return nil, newError(KindMalformedTemplate, field, "nested '{' at offset %d in %q", i, src)
			}

			ph, ok := placeholderNames[strings.TrimSpace(name)]
			if !ok {
				return nil, newError(KindUnknownPlaceholder, field,
					"unknown placeholder {%s} in %q (known: operationId, httpMethod, lastSegment, tag)%s",
					name, src, match.Hint(strings.TrimSpace(name), placeholderSpellings))
			}

			flush()
			t.segments = append(t.segments, Segment{Placeholder: ph})
			i += end + 1

		case r == '}':
			return nil, newError(KindMalformedTemplate, field, "unmatched '}' at offset %d in %q", i, src)

		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			// A digit is only safe once something non-empty precedes it.
			if unicode.IsDigit(r) && lit.Len() == 0 && t.CanBeEmpty() {
				return nil, newError(KindMalformedTemplate, field,
					"template %q can expand to a name starting with a digit at offset %d", src, i)
			}

			lit.WriteRune(r)

		default:
			return nil, newError(KindMalformedTemplate, field, "invalid character %q in %q", r, src)
		}
	}

	flush()

	return t, nil
}

func indexRune(runes []rune, r rune) int {
	for i, c := range runes {
		if c == r {
			return i
		}
	}

	return -1
}

// String returns the template source.
func (t *NameTemplate) String() string {
	return t.source
}

// Segments returns a copy of the compiled segments.
func (t *NameTemplate) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)

	return out
}

// IsConstant reports whether the template has no placeholder at all, so it
// yields the same name for every operation.
func (t *NameTemplate) IsConstant() bool {
	for _, s := range t.segments {
		if !s.IsLiteral {
			return false
		}
	}

	return true
}

// CanBeEmpty reports whether some operation could expand the template to
// an empty name.
func (t *NameTemplate) CanBeEmpty() bool {
	for _, s := range t.segments {
		if s.IsLiteral || s.Placeholder.alwaysNonEmpty() {
			return false
		}
	}

	return true
}

// Uses reports whether the template references p.
func (t *NameTemplate) Uses(p Placeholder) bool {
	for _, s := range t.segments {
		if !s.IsLiteral && s.Placeholder == p {
			return true
		}
	}

	return false
}

// Expand substitutes every placeholder with value(p). Literal text is
// copied as is; value is responsible for identifier normalization.
func (t *NameTemplate) Expand(value func(Placeholder) string) string {
	var b strings.Builder

	for _, s := range t.segments {
		if s.IsLiteral {
			b.WriteString(s.Literal)
			continue
		}

		b.WriteString(value(s.Placeholder))
	}

	return b.String()
}
