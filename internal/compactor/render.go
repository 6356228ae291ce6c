package compactor

import "strings"

const (
	ellipsis   = "..."
	deltaStart = "["
	deltaEnd   = "]"
)

// Rendering is one compacted side of a comparison.
type Rendering struct {
	Prefix string // Context before the delta. Starts with "..." if the common prefix was truncated.
	Delta  string // The differing middle of this side, without brackets. May be empty.
	Suffix string // Context after the delta. Ends with "..." if the common suffix was truncated.
}

// String returns Prefix + "[" + Delta + "]" + Suffix.
func (r Rendering) String() string {
	var b strings.Builder
	b.Grow(len(r.Prefix) + len(r.Delta) + len(r.Suffix) + len(deltaStart) + len(deltaEnd))
	b.WriteString(r.Prefix)
	b.WriteString(deltaStart)
	b.WriteString(r.Delta)
	b.WriteString(deltaEnd)
	b.WriteString(r.Suffix)
	return b.String()
}

// Pair is the compacted rendering of both sides. Expected and Actual share Prefix and Suffix; only Delta differs.
type Pair struct {
	Expected Rendering
	Actual   Rendering
	Commons  Commons
}

func renderPair(contextLength int, expected, actual string) Pair {
	commons := FindCommons(expected, actual)
	prefix := prefixContext(contextLength, expected, commons.PrefixLength)
	suffix := suffixContext(contextLength, expected, commons.SuffixLength)
	return Pair{
		Expected: Rendering{Prefix: prefix, Delta: delta(expected, commons), Suffix: suffix},
		Actual:   Rendering{Prefix: prefix, Delta: delta(actual, commons), Suffix: suffix},
		Commons:  commons,
	}
}

// prefixContext returns the last contextLength bytes of expected[:prefixLength], preceded by an ellipsis if anything was cut.
func prefixContext(contextLength int, expected string, prefixLength int) string {
	start := max(0, prefixLength-contextLength)
	context := expected[start:prefixLength]
	if prefixLength > contextLength {
		return ellipsis + context
	}
	return context
}

// suffixContext returns the first contextLength bytes of the last suffixLength bytes of expected, followed by an ellipsis if anything was cut.
func suffixContext(contextLength int, expected string, suffixLength int) string {
	start := len(expected) - suffixLength
	end := min(len(expected), start+contextLength)
	context := expected[start:end]
	if suffixLength > contextLength {
		return context + ellipsis
	}
	return context
}

func delta(source string, commons Commons) string {
	return source[commons.PrefixLength : len(source)-commons.SuffixLength]
}
