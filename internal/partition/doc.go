// Package partition groups filtered operations into client interfaces.
//
// The grouping follows the policy strategy:
//
//   - None: one interface holding every operation.
//   - ByEndpoint: one single-method interface per operation.
//   - ByTag: one interface per participating tag in first-seen order.
//     Operations carrying several tags are replicated into each of them,
//     and untagged operations go to a reserved interface emitted last.
//
// Method names are resolved per (interface, operation) pair and must be
// unique inside each interface. Interface names must be unique across the
// result. Either collision fails the whole partition.
package partition
