package policy

import (
	"github.com/hashicorp/hcl/v2"
)

// Settings is the raw, user-facing configuration. Unset fields are zero
// values or nil pointers; Resolve fills in defaults.
type Settings struct {
	Namespace                string                       `yaml:"namespace" hcl:"namespace,optional"`
	PartitionStrategy        string                       `yaml:"partitionStrategy" hcl:"partition_strategy,optional"`
	InterfaceBaseName        string                       `yaml:"interfaceBaseName" hcl:"interface_base_name,optional"`
	OperationNameTemplate    *string                      `yaml:"operationNameTemplate" hcl:"operation_name_template,optional"`
	IncludeTags              []string                     `yaml:"includeTags" hcl:"include_tags,optional"`
	IncludePathPatterns      []string                     `yaml:"includePathPatterns" hcl:"include_path_patterns,optional"`
	IncludeDeprecated        *bool                        `yaml:"includeDeprecated" hcl:"include_deprecated,optional"`
	OptionalParametersLast   bool                         `yaml:"optionalParametersLast" hcl:"optional_parameters_last,optional"`
	AddAcceptHeaders         *bool                        `yaml:"addAcceptHeaders" hcl:"add_accept_headers,optional"`
	UseCancellationTokens    bool                         `yaml:"useCancellationTokens" hcl:"use_cancellation_tokens,optional"`
	ReturnAPIResponse        bool                         `yaml:"returnApiResponse" hcl:"return_api_response,optional"`
	GenerateOperationHeaders *bool                        `yaml:"generateOperationHeaders" hcl:"generate_operation_headers,optional"`
	TypeAccessibility        string                       `yaml:"typeAccessibility" hcl:"type_accessibility,optional"`
	DependencyInjection      *DependencyInjectionSettings `yaml:"dependencyInjection" hcl:"dependency_injection,block"`

	// Remain swallows HCL attributes meant for other tools.
	Remain hcl.Body `yaml:"-" hcl:",remain"`
}

// DependencyInjectionSettings describes the HTTP pipeline the generated
// client is registered with.
type DependencyInjectionSettings struct {
	BaseURL             string   `yaml:"baseUrl" hcl:"base_url,optional"`
	HandlerChain        []string `yaml:"handlerChain" hcl:"handler_chain,optional"`
	UseRetry            bool     `yaml:"useRetry" hcl:"use_retry,optional"`
	MaxRetryAttempts    *int     `yaml:"maxRetryAttempts" hcl:"max_retry_attempts,optional"`
	FirstBackoffSeconds *float64 `yaml:"firstBackoffSeconds" hcl:"first_backoff_seconds,optional"`

	Remain hcl.Body `yaml:"-" hcl:",remain"`
}
