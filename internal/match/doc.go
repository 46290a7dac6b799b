// Package match ranks configuration values by edit distance so that a
// rejected or unused name can come with a "did you mean" hint.
//
// Key functions:
//   - Distance: Levenshtein distance over runes
//   - Similarity: distance scaled to 0..1 after normalization
//   - Rank, Suggest: order candidates by similarity to a name
package match
