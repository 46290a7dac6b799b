// Package gen renders a generation plan as Go source.
//
// Generation approach uses text/template + go/format, the same inputs
// always producing byte-identical files.
//
// Output files:
//   - one file per interface, named after it in snake case
//   - types.go with the response wrapper, when any method returns it
//   - wiring.go with the base URL, handler chain and retry schedule,
//     when the plan carries a wiring plan
package gen
