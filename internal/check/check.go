// Package check provides test assertions whose failure messages are compacted with package compactor, so a mismatch between two long strings shows only the
// region around the first difference.
package check

import (
	"fmt"

	"github.com/CloudFitSoftware/clean-code-exercises/internal/compactor"
	"github.com/CloudFitSoftware/clean-code-exercises/internal/failmsg"
)

// DefaultContextLength is the context length used by Equal.
const DefaultContextLength = 20

// TB is the subset of testing.TB used by this package.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
}

// Equal reports a test error if expected != actual, and returns whether they are equal. msgAndArgs is an optional label: either a single value, or a format
// string followed by its arguments.
func Equal(t TB, expected, actual string, msgAndArgs ...any) bool {
	t.Helper()
	return EqualContext(t, DefaultContextLength, expected, actual, msgAndArgs...)
}

// EqualContext is Equal with an explicit context length.
func EqualContext(t TB, contextLength int, expected, actual string, msgAndArgs ...any) bool {
	t.Helper()
	if expected == actual {
		return true
	}
	msg := compactor.NewStrings(contextLength, expected, actual).Compact(label(msgAndArgs))
	t.Errorf("%s", msg)
	return false
}

// EqualText is EqualContext for values that may be absent. Two absent values are equal.
func EqualText(t TB, contextLength int, expected, actual failmsg.Text, msgAndArgs ...any) bool {
	t.Helper()
	if expected == actual {
		return true
	}
	t.Errorf("%s", compactor.New(contextLength, expected, actual).Compact(label(msgAndArgs)))
	return false
}

func label(msgAndArgs []any) failmsg.Text {
	switch len(msgAndArgs) {
	case 0:
		return failmsg.Absent()
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return failmsg.Some(s)
		}
		return failmsg.Some(fmt.Sprint(msgAndArgs[0]))
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return failmsg.Some(fmt.Sprintf(format, msgAndArgs[1:]...))
		}
		return failmsg.Some(fmt.Sprint(msgAndArgs...))
	}
}
