// Package plan runs one generation: it produces a Plan consumed by the
// renderer and the YAML exporter.
//
// Generation pipeline:
//  1. Resolve settings into an immutable policy (fails fast)
//  2. In parallel:
//     - filter operations, then partition them into interfaces
//     - assemble the client wiring plan from the DI settings
//  3. Join errors in a fixed order (wiring, then partition)
//  4. Emit diagnostics (empty results, unused filters, constant names)
//
// The same inputs always yield the same Plan.
package plan
