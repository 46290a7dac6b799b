// Package policy turns raw generator settings into an immutable,
// validated GenerationPolicy.
//
// Construction and validation are one step: Resolve either returns a
// complete policy or an error, never a half-valid value. Every downstream
// stage reads the policy through accessor methods; slices handed out are
// copies.
//
// # Settings file
//
// Settings are read from YAML (or JSON) or HCL, chosen by file extension:
//
//	namespace: Petstore.Client
//	partitionStrategy: byTag
//	interfaceBaseName: PetApi
//	operationNameTemplate: "{operationId}"
//	includeTags: [pet, store]
//	includePathPatterns: ["/pets/**"]
//	includeDeprecated: false
//	optionalParametersLast: true
//	dependencyInjection:
//	  baseUrl: https://petstore.example.com
//	  handlerChain: [AuthHandler, TelemetryHandler]
//	  useRetry: true
//	  maxRetryAttempts: 3
//	  firstBackoffSeconds: 0.5
//
// The same settings in HCL:
//
//	namespace          = "Petstore.Client"
//	partition_strategy = "byTag"
//	include_tags       = ["pet", "store"]
//
//	dependency_injection {
//	  handler_chain      = ["AuthHandler", "TelemetryHandler"]
//	  use_retry          = true
//	  max_retry_attempts = 3
//	}
//
// Keys the generator does not know about are ignored so that one file can
// also carry renderer settings.
//
// # Operation-name templates
//
// A template mixes identifier characters with placeholders:
//
//   - {operationId} (alias {operationName}): the operation id
//   - {httpMethod} (alias {method}): the HTTP method
//   - {lastSegment}: the last path segment, braces stripped
//   - {tag}: the operation's primary tag
//
// Templates are compiled by Resolve, so unknown placeholders and malformed
// templates fail before any operation is processed.
package policy
