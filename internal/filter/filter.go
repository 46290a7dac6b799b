// Package filter selects the operations eligible for generation.
//
// The deprecation, tag and path rules are applied independently and an
// operation must pass all of them. Surviving operations keep their input
// order, which is the emission order of the generated client.
package filter

import (
	"client-generator/internal/apidesc"
	"client-generator/internal/common"
	"client-generator/internal/policy"
)

//go:generate go tool stringer -type=Reason -trimprefix=Reason -output=reason_string.go

// Reason tells which rule dropped an operation.
type Reason int

const (
	ReasonDeprecated Reason = iota
	ReasonTagExcluded
	ReasonPathExcluded
)

// Rejection records one dropped operation and the first rule it failed.
type Rejection struct {
	Operation *apidesc.Operation
	Reason    Reason
}

// Result is the outcome of Apply. Kept points into the input slice.
type Result struct {
	Kept    []*apidesc.Operation
	Dropped []Rejection
}

// Apply filters ops under p. An empty Kept is a valid result.
func Apply(ops []apidesc.Operation, p *policy.GenerationPolicy) Result {
	var res Result

	for i := range ops {
		op := &ops[i]

		if reason, drop := check(op, p); drop {
			res.Dropped = append(res.Dropped, Rejection{Operation: op, Reason: reason})
			continue
		}

		res.Kept = append(res.Kept, op)
	}

	return res
}

// check returns the first failing rule, in the order deprecation, tags, path.
func check(op *apidesc.Operation, p *policy.GenerationPolicy) (Reason, bool) {
	if op.Deprecated && !p.IncludeDeprecated() {
		return ReasonDeprecated, true
	}

	if p.HasTagFilter() && !anyTagIncluded(op, p) {
		return ReasonTagExcluded, true
	}

	if !p.PathIncluded(op.Path) {
		return ReasonPathExcluded, true
	}

	return 0, false
}

func anyTagIncluded(op *apidesc.Operation, p *policy.GenerationPolicy) bool {
	for _, tag := range op.Tags {
		if p.TagIncluded(tag) {
			return true
		}
	}

	return false
}

// UnusedTags returns the include tags that no operation in ops carries,
// in declaration order.
func UnusedTags(ops []apidesc.Operation, p *policy.GenerationPolicy) []string {
	var unused []string

	for _, tag := range p.IncludeTags() {
		found := false

		for i := range ops {
			if ops[i].HasTag(tag) {
				found = true
				break
			}
		}

		if !found {
			unused = append(unused, tag)
		}
	}

	return unused
}

// Tags returns every tag used by ops, in first-seen order.
func Tags(ops []apidesc.Operation) []string {
	var tags []string

	for i := range ops {
		tags = append(tags, ops[i].Tags...)
	}

	return common.Dedupe(tags)
}

// UnusedPathPatterns returns the include path patterns that match no
// operation path in ops, in declaration order.
func UnusedPathPatterns(ops []apidesc.Operation, p *policy.GenerationPolicy) []string {
	var unused []string

	for _, pattern := range p.PathPatterns() {
		found := false

		for i := range ops {
			if policy.MatchPath(pattern, ops[i].Path) {
				found = true
				break
			}
		}

		if !found {
			unused = append(unused, pattern)
		}
	}

	return unused
}
