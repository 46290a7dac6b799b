package policy

import (
	"github.com/bmatcuk/doublestar/v4"

	"client-generator/internal/common"
)

// GenerationPolicy is the resolved configuration of one generation run.
// It is built only by Resolve and never changes afterwards; share it
// between the stages of one run, not between runs.
type GenerationPolicy struct {
	namespace     string
	strategy      Strategy
	baseName      string
	template      *NameTemplate
	accessibility Accessibility

	includeTags  []string
	tagSet       map[string]struct{}
	pathPatterns []string

	includeDeprecated        bool
	optionalParametersLast   bool
	addAcceptHeaders         bool
	useCancellationTokens    bool
	returnAPIResponse        bool
	generateOperationHeaders bool

	di *DependencyInjection
}

// DependencyInjection is the resolved DI/retry sub-policy. Values returned
// by GenerationPolicy.DependencyInjection are copies.
type DependencyInjection struct {
	BaseURL      string   `yaml:"baseUrl,omitempty"`
	HandlerChain []string `yaml:"handlerChain,omitempty"`
	UseRetry     bool     `yaml:"useRetry"`
	// MaxRetryAttempts and FirstBackoffSeconds are range-checked by the
	// pipeline assembler, not here.
	MaxRetryAttempts    int     `yaml:"maxRetryAttempts"`
	FirstBackoffSeconds float64 `yaml:"firstBackoffSeconds"`
}

func (p *GenerationPolicy) Namespace() string            { return p.namespace }
func (p *GenerationPolicy) Strategy() Strategy           { return p.strategy }
func (p *GenerationPolicy) InterfaceBaseName() string    { return p.baseName }
func (p *GenerationPolicy) Accessibility() Accessibility { return p.accessibility }

// NameTemplate returns the compiled operation-name template, or nil when
// none is configured.
func (p *GenerationPolicy) NameTemplate() *NameTemplate { return p.template }

func (p *GenerationPolicy) IncludeDeprecated() bool        { return p.includeDeprecated }
func (p *GenerationPolicy) OptionalParametersLast() bool   { return p.optionalParametersLast }
func (p *GenerationPolicy) AddAcceptHeaders() bool         { return p.addAcceptHeaders }
func (p *GenerationPolicy) UseCancellationTokens() bool    { return p.useCancellationTokens }
func (p *GenerationPolicy) ReturnAPIResponse() bool        { return p.returnAPIResponse }
func (p *GenerationPolicy) GenerateOperationHeaders() bool { return p.generateOperationHeaders }

// IncludeTags returns the include-tag set in declaration order.
func (p *GenerationPolicy) IncludeTags() []string { return common.Clone(p.includeTags) }

// HasTagFilter reports whether the include-tag set is non-empty.
func (p *GenerationPolicy) HasTagFilter() bool { return len(p.includeTags) > 0 }

// TagIncluded reports whether tag passes the include-tag set. Every tag
// passes an empty set.
func (p *GenerationPolicy) TagIncluded(tag string) bool {
	if len(p.tagSet) == 0 {
		return true
	}

	_, ok := p.tagSet[tag]

	return ok
}

// PathPatterns returns the include-path globs in declaration order.
func (p *GenerationPolicy) PathPatterns() []string { return common.Clone(p.pathPatterns) }

// HasPathFilter reports whether the include-path set is non-empty.
func (p *GenerationPolicy) HasPathFilter() bool { return len(p.pathPatterns) > 0 }

// PathIncluded reports whether path matches any include pattern. Every
// path passes an empty set.
func (p *GenerationPolicy) PathIncluded(path string) bool {
	if len(p.pathPatterns) == 0 {
		return true
	}

	for _, pattern := range p.pathPatterns {
		if MatchPath(pattern, path) {
			return true
		}
	}

	return false
}

// MatchPath reports whether path matches the doublestar glob pattern.
// Patterns are validated by Resolve, so a match error means no match.
func MatchPath(pattern, path string) bool {
	ok, err := doublestar.Match(pattern, path)

	return err == nil && ok
}

// DependencyInjection returns a copy of the DI sub-policy, or nil when no
// DI settings were given.
func (p *GenerationPolicy) DependencyInjection() *DependencyInjection {
	if p.di == nil {
		return nil
	}

	di := *p.di
	di.HandlerChain = common.Clone(p.di.HandlerChain)

	return &di
}

// View is a plain snapshot of a policy, for display and export.
type View struct {
	Namespace                string               `yaml:"namespace"`
	PartitionStrategy        string               `yaml:"partitionStrategy"`
	InterfaceBaseName        string               `yaml:"interfaceBaseName"`
	OperationNameTemplate    string               `yaml:"operationNameTemplate,omitempty"`
	TypeAccessibility        string               `yaml:"typeAccessibility"`
	IncludeTags              []string             `yaml:"includeTags,omitempty"`
	IncludePathPatterns      []string             `yaml:"includePathPatterns,omitempty"`
	IncludeDeprecated        bool                 `yaml:"includeDeprecated"`
	OptionalParametersLast   bool                 `yaml:"optionalParametersLast"`
	AddAcceptHeaders         bool                 `yaml:"addAcceptHeaders"`
	UseCancellationTokens    bool                 `yaml:"useCancellationTokens"`
	ReturnAPIResponse        bool                 `yaml:"returnApiResponse"`
	GenerateOperationHeaders bool                 `yaml:"generateOperationHeaders"`
	DependencyInjection      *DependencyInjection `yaml:"dependencyInjection,omitempty"`
}

// View returns a snapshot of the policy.
func (p *GenerationPolicy) View() View {
	v := View{
		Namespace:                p.namespace,
		PartitionStrategy:        p.strategy.String(),
		InterfaceBaseName:        p.baseName,
		TypeAccessibility:        p.accessibility.String(),
		IncludeTags:              p.IncludeTags(),
		IncludePathPatterns:      p.PathPatterns(),
		IncludeDeprecated:        p.includeDeprecated,
		OptionalParametersLast:   p.optionalParametersLast,
		AddAcceptHeaders:         p.addAcceptHeaders,
		UseCancellationTokens:    p.useCancellationTokens,
		ReturnAPIResponse:        p.returnAPIResponse,
		GenerateOperationHeaders: p.generateOperationHeaders,
		DependencyInjection:      p.DependencyInjection(),
	}

	if p.template != nil {
		v.OperationNameTemplate = p.template.String()
	}

	return v
}
