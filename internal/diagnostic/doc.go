// Package diagnostic provides structured, non-fatal findings for a
// generation run.
//
// Fatal conditions (invalid policy, naming collisions, bad retry settings)
// are returned as errors by the component that detects them. Everything
// else that a caller may want to surface lands here:
//   - Filters that left no operation to generate
//   - Include tags or path patterns that matched nothing
//   - Templates that give every operation the same method name
package diagnostic
