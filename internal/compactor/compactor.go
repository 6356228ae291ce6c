package compactor

import "github.com/CloudFitSoftware/clean-code-exercises/internal/failmsg"

// Compactor compares an expected and an actual string. It is an immutable value and safe for concurrent use.
type Compactor struct {
	contextLength int
	expected      failmsg.Text
	actual        failmsg.Text
}

// New returns a Compactor that shows at most contextLength unchanged bytes on each side of the difference. A negative contextLength is treated as 0.
func New(contextLength int, expected, actual failmsg.Text) Compactor {
	return Compactor{
		contextLength: max(0, contextLength),
		expected:      expected,
		actual:        actual,
	}
}

// NewStrings is New with both values present.
func NewStrings(contextLength int, expected, actual string) Compactor {
	return New(contextLength, failmsg.Some(expected), failmsg.Some(actual))
}

// ContextLength returns the effective context length.
func (c Compactor) ContextLength() int {
	return c.contextLength
}

// Values returns the expected and actual values as given.
func (c Compactor) Values() (expected, actual failmsg.Text) {
	return c.expected, c.actual
}

// Compact returns the mismatch message, optionally labeled:
//
//	<label >expected:<E> but was:<A>
//
// When both values are present and differ, E and A are compacted renderings (see Pair). Otherwise they are the raw values, with "null" for absent ones.
func (c Compactor) Compact(label failmsg.Text) string {
	pair, ok := c.Pair()
	if !ok {
		return failmsg.Format(label, c.expected, c.actual)
	}
	return failmsg.Format(label, failmsg.Some(pair.Expected.String()), failmsg.Some(pair.Actual.String()))
}

// Pair returns the compacted rendering of both sides. ok is false when compaction does not apply: either value is absent, or they are equal.
func (c Compactor) Pair() (pair Pair, ok bool) {
	expected, actual, ok := c.compactable()
	if !ok {
		return Pair{}, false
	}
	return renderPair(c.contextLength, expected, actual), true
}

func (c Compactor) compactable() (expected, actual string, ok bool) {
	expected, expectedOK := c.expected.Get()
	actual, actualOK := c.actual.Get()
	if !expectedOK || !actualOK || expected == actual {
		return "", "", false
	}
	return expected, actual, true
}
