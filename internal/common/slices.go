package common

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Clone returns a copy of s that shares no backing array with it.
// A nil or empty input yields nil.
func Clone[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}

	out := make(S, len(s))
	copy(out, s)

	return out
}

// StablePartition returns a new slice holding every element for which keep
// reports true, followed by every element for which it reports false.
// Relative order inside each group is the input order.
func StablePartition[S ~[]E, E any](s S, keep func(E) bool) S {
	if len(s) == 0 {
		return nil
	}

	out := make(S, 0, len(s))

	var rest S

	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		} else {
			rest = append(rest, e)
		}
	}

	return append(out, rest...)
}

// Dedupe drops repeated and empty values, keeping the first occurrence of each.
func Dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		if v == "" {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
