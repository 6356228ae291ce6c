// Package compactor produces short, readable mismatch messages for two strings, "expected" and "actual".
//
// Identical leading and trailing runs are collapsed, and only a bounded window of unchanged context (the context length) is shown around the first difference.
// The part that differs on each side (the delta) is wrapped in brackets. For example, with a context length of 2:
//
//	compactor.NewStrings(2, "abcdde", "abcde").Compact(failmsg.Absent())
//	// expected:<...cd[d]e> but was:<...cd[]e>
//
// Algorithm: FindCommons computes the common prefix, then the common suffix. The suffix scan is bounded by the prefix length so the two runs never overlap. Each
// side is then rendered as prefix context + "[" + delta + "]" + suffix context. Context text is always taken from the expected string; only the delta differs
// between the two sides.
//
// Invariants:
//   - PrefixLength + SuffixLength <= min(len(expected), len(actual))
//   - The suffix scan never reads an index below PrefixLength.
//   - The prefix context is at most the context length, preceded by "..." only if it was truncated. Likewise for the suffix context, followed by "...".
//
// Comparison is byte-wise. Multi-byte characters are not treated specially.
//
// Compaction only happens when both strings are present and differ. Otherwise the message is the plain failmsg.Format rendering of the raw values, with "null"
// standing in for absent ones. No input combination causes an error or a panic.
package compactor
