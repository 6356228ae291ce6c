// Package failmsg renders "expected/actual" mismatch messages of the form:
//
//	<label >expected:<E> but was:<A>
//
// It does no truncation or compaction; see package compactor for that.
package failmsg

import "strings"

const nullLiteral = "null"

// Format returns "<label >expected:<E> but was:<A>".
//   - If label is present and non-empty, the output starts with label followed by a single space.
//   - Absent expected/actual values are rendered as the literal "null".
func Format(label, expected, actual Text) string {
	var b strings.Builder
	if l, ok := label.Get(); ok && l != "" {
		b.WriteString(l)
		b.WriteByte(' ')
	}
	b.WriteString("expected:<")
	b.WriteString(expected.String())
	b.WriteString("> but was:<")
	b.WriteString(actual.String())
	b.WriteString(">")
	return b.String()
}
