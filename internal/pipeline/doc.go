// Package pipeline derives the HTTP pipeline wiring of a generated client
// from the dependency-injection settings: the handler chain in declared
// order and, when retries are on, a precomputed backoff schedule.
//
// The package never looks at operations or interfaces and can run next to
// the partitioning stages.
package pipeline
