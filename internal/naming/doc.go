// Package naming computes Go-safe names for generated interfaces and
// methods, and the parameter order of each method.
//
// Names are never silently de-duplicated: two operations that resolve to
// the same method name inside one interface produce a CollisionError, so
// the method-to-endpoint mapping of a generated client stays verifiable.
package naming
