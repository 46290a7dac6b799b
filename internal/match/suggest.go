package match

import (
	"sort"
)

// MinSuggestScore is the similarity below which Suggest stays silent.
const MinSuggestScore = 0.5

// Candidate is one ranked value.
type Candidate struct {
	Value string
	Score float64
}

// CandidateList is ordered by descending score.
type CandidateList []Candidate

// Rank scores every candidate against name. Ties keep candidate order,
// so the result is deterministic for a given input.
func Rank(name string, candidates []string) CandidateList {
	list := make(CandidateList, 0, len(candidates))
	for _, c := range candidates {
		list = append(list, Candidate{Value: c, Score: Similarity(name, c)})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})

	return list
}

// Best returns the highest-scoring candidate, or nil.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Suggest returns the candidate closest to name when it scores at least
// MinSuggestScore. A candidate equal to name is never suggested.
func Suggest(name string, candidates []string) (string, bool) {
	for _, cand := range Rank(name, candidates).AboveThreshold(MinSuggestScore) {
		if cand.Value != name {
			return cand.Value, true
		}
	}

	return "", false
}

// Hint formats Suggest's result as a message suffix, or "" without one.
func Hint(name string, candidates []string) string {
	s, ok := Suggest(name, candidates)
	if !ok {
		return ""
	}

	return "; did you mean \"" + s + "\"?"
}
