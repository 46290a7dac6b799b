package naming

import (
	"go/token"
	"strings"
	"unicode"
)

// tokenize splits s into words at separators, at lower-to-upper
// transitions and at the end of acronyms.
// Examples:
//   - "getPetById" -> ["get", "Pet", "By", "Id"]
//   - "list_pets" -> ["list", "pets"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "/pets/{petId}" -> ["pets", "pet", "Id"]
func tokenize(s string) []string {
	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !isWordRune(r) {
			flush()
			continue
		}

		if i > 0 && isWordRune(runes[i-1]) && startsNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// startsNewToken determines if a new token should start at position i.
func startsNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	// "orderID" -> split before 'I'
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// Pascal joins the words of s, each with an upper-case first letter.
// The rest of every word is kept, so acronyms survive: "getHTTPStatus"
// becomes "GetHTTPStatus".
func Pascal(s string) string {
	var b strings.Builder
	for _, tok := range tokenize(s) {
		b.WriteString(upperFirst(tok))
	}

	return b.String()
}

// Camel is Pascal with the first word fully lower-cased: "PetID" -> "petID",
// "HTTPClient" -> "httpClient".
func Camel(s string) string {
	tokens := tokenize(s)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(strings.ToLower(tokens[0]))

	for _, tok := range tokens[1:] {
		b.WriteString(upperFirst(tok))
	}

	return b.String()
}

// Snake lower-cases the words of s and joins them with underscores:
// "ApiClientPet" -> "api_client_pet".
func Snake(s string) string {
	tokens := tokenize(s)
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}

	return strings.Join(tokens, "_")
}

// Identifier is Pascal(s), prefixed with "X" when it would start with a
// digit. An input without letters or digits yields "".
func Identifier(s string) string {
	id := Pascal(s)
	if id != "" && unicode.IsDigit([]rune(id)[0]) {
		return "X" + id
	}

	return id
}

// Unexported is the lower-camel form of an identifier, with a trailing
// underscore when that collides with a Go keyword.
func Unexported(s string) string {
	id := Camel(s)
	if id != "" && unicode.IsDigit([]rune(id)[0]) {
		id = "x" + id
	}

	if token.IsKeyword(id) {
		return id + "_"
	}

	return id
}

// methodWord renders an HTTP method as a word: "GET" -> "Get".
func methodWord(method string) string {
	return upperFirst(strings.ToLower(method))
}

// LastSegment returns the last non-empty path segment with template
// braces stripped, or "Root" for "/".
func LastSegment(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	last := strings.Trim(segments[len(segments)-1], "{}")

	if Identifier(last) == "" {
		return "Root"
	}

	return last
}
