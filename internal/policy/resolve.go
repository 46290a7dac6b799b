package policy

import (
	"errors"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"

	"client-generator/internal/common"
	"client-generator/internal/match"
)

// Defaults applied by Resolve to unset settings.
const (
	DefaultNamespace           = "GeneratedCode"
	DefaultInterfaceBaseName   = "ApiClient"
	DefaultMaxRetryAttempts    = 6
	DefaultFirstBackoffSeconds = 1.0
)

// Resolve applies defaults to settings and validates the result. All
// problems found are returned together, in a fixed order, joined with
// errors.Join; each is a *Error.
func Resolve(settings Settings) (*GenerationPolicy, error) {
	var errs []error

	p := &GenerationPolicy{
		includeDeprecated:        boolOr(settings.IncludeDeprecated, true),
		optionalParametersLast:   settings.OptionalParametersLast,
		addAcceptHeaders:         boolOr(settings.AddAcceptHeaders, true),
		useCancellationTokens:    settings.UseCancellationTokens,
		returnAPIResponse:        settings.ReturnAPIResponse,
		generateOperationHeaders: boolOr(settings.GenerateOperationHeaders, true),
	}

	p.namespace = strings.TrimSpace(settings.Namespace)
	if p.namespace == "" {
		p.namespace = DefaultNamespace
	} else if err := validateNamespace(p.namespace); err != nil {
		errs = append(errs, err)
	}

	strategy, ok := ParseStrategy(settings.PartitionStrategy)
	if !ok {
		errs = append(errs, newError(KindInvalidValue, "partitionStrategy",
			"unknown partition strategy %q (expected none, byEndpoint or byTag)%s",
			settings.PartitionStrategy, match.Hint(settings.PartitionStrategy, strategyNames)))
	}

	p.strategy = strategy

	p.baseName = strings.TrimSpace(settings.InterfaceBaseName)
	if p.baseName == "" {
		p.baseName = DefaultInterfaceBaseName
	} else if !strings.ContainsFunc(p.baseName, unicode.IsLetter) {
		errs = append(errs, newError(KindInvalidValue, "interfaceBaseName",
			"interface base name %q must contain at least one letter", p.baseName))
	}

	accessibility, ok := ParseAccessibility(settings.TypeAccessibility)
	if !ok {
		errs = append(errs, newError(KindInvalidValue, "typeAccessibility",
			"unknown type accessibility %q (expected public or internal)%s",
			settings.TypeAccessibility, match.Hint(settings.TypeAccessibility, accessibilityNames)))
	}

	p.accessibility = accessibility

	if settings.OperationNameTemplate != nil && strings.TrimSpace(*settings.OperationNameTemplate) != "" {
		tmpl, err := CompileTemplate(strings.TrimSpace(*settings.OperationNameTemplate))
		if err != nil {
			errs = append(errs, err)
		} else {
			p.template = tmpl
		}
	}

	if p.template != nil && p.template.CanBeEmpty() {
		errs = append(errs, newError(KindInvalidCombination, "operationNameTemplate",
			"template %q can expand to an empty method name under the %s strategy; "+
				"add literal text or an {operationId}, {httpMethod} or {lastSegment} placeholder",
			p.template.String(), p.strategy))
	}

	p.includeTags = common.Dedupe(trimAll(settings.IncludeTags))
	if len(p.includeTags) > 0 {
		p.tagSet = make(map[string]struct{}, len(p.includeTags))
		for _, tag := range p.includeTags {
			p.tagSet[tag] = struct{}{}
		}
	}

	p.pathPatterns = common.Dedupe(trimAll(settings.IncludePathPatterns))
	for _, pattern := range p.pathPatterns {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, newError(KindInvalidPattern, "includePathPatterns",
				"invalid path pattern %q", pattern))
		}
	}

	if settings.DependencyInjection != nil {
		p.di = resolveDependencyInjection(settings.DependencyInjection)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return p, nil
}

func resolveDependencyInjection(s *DependencyInjectionSettings) *DependencyInjection {
	di := &DependencyInjection{
		BaseURL:             strings.TrimSpace(s.BaseURL),
		HandlerChain:        common.Clone(s.HandlerChain),
		UseRetry:            s.UseRetry,
		MaxRetryAttempts:    DefaultMaxRetryAttempts,
		FirstBackoffSeconds: DefaultFirstBackoffSeconds,
	}

	if s.MaxRetryAttempts != nil {
		di.MaxRetryAttempts = *s.MaxRetryAttempts
	}

	if s.FirstBackoffSeconds != nil {
		di.FirstBackoffSeconds = *s.FirstBackoffSeconds
	}

	return di
}

// validateNamespace accepts dotted or slashed paths ("Petstore.Client",
// "example.com/petstore") whose last segment starts with a letter.
func validateNamespace(ns string) error {
	segments := strings.FieldsFunc(ns, func(r rune) bool { return r == '.' || r == '/' })
	if len(segments) == 0 || strings.HasPrefix(ns, ".") || strings.HasSuffix(ns, ".") ||
		strings.Contains(ns, "..") || strings.Contains(ns, "//") {
		return newError(KindInvalidValue, "namespace", "namespace %q has an empty segment", ns)
	}

	for _, seg := range segments {
		for _, r := range seg {
			if r != '_' && r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return newError(KindInvalidValue, "namespace", "invalid character %q in namespace %q", r, ns)
			}
		}
	}

	last := []rune(segments[len(segments)-1])
	if !unicode.IsLetter(last[0]) {
		return newError(KindInvalidValue, "namespace", "last segment of namespace %q must start with a letter", ns)
	}

	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}

	return *v
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}

	return out
}
