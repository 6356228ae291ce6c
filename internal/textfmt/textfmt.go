// Package textfmt prepares user-supplied text for display in a terminal: escaping control characters, measuring and padding by display width, and ANSI
// highlighting.
package textfmt

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const hexDigits = "0123456789ABCDEF"

// ANSI escape sequences used by Paint.
const (
	Reset   = "\x1b[0m"
	RedBG   = "\x1b[30m\x1b[48;5;217m" // black on pink, for expected-side deltas
	GreenBG = "\x1b[30m\x1b[48;5;114m" // black on green, for actual-side deltas
)

// Sanitize makes s safe to print on a single terminal line:
//   - \n, \r and \t become the two-character escapes "\n", "\r" and "\t".
//   - Other ASCII control characters (<= 0x1F and 0x7F) become "\xXX" (ex: "\x1B" for ESC).
//   - Invalid UTF-8 is replaced by U+FFFD.
//
// Everything else, including multi-byte characters, is unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			b.WriteRune('\uFFFD')
			continue
		}

		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7F {
				code := byte(r)
				b.WriteByte('\\')
				b.WriteByte('x')
				b.WriteByte(hexDigits[code>>4])
				b.WriteByte(hexDigits[code&0x0F])
				continue
			}
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Paint wraps s in the escape sequence code and a reset. If code is empty or s is empty, s is returned unchanged.
func Paint(s, code string) string {
	if code == "" || s == "" {
		return s
	}
	return code + s + Reset
}

func condition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}

// Width returns the number of monospace terminal cells s occupies. s must not contain ANSI escapes.
func Width(s string) int {
	return condition().StringWidth(s)
}

// PadRight appends spaces to s until it is width cells wide. Strings already at least width wide are returned unchanged.
func PadRight(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// PadLeft is like PadRight, but prepends the spaces.
func PadLeft(s string, width int) string {
	if w := Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
