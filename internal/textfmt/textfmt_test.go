package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain text unchanged", input: "hello, 世界", want: "hello, 世界"},
		{name: "whitespace escapes", input: "a\nb\tc\rd", want: `a\nb\tc\rd`},
		{name: "control characters escaped", input: "\x1bX\x00Y\x7f", want: `\x1BX\x00Y\x7F`},
		{name: "invalid utf8 replaced", input: "a\xffb", want: "a\uFFFDb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestWidthAndPad(t *testing.T) {
	assert.Equal(t, 0, Width(""))
	assert.Equal(t, 3, Width("abc"))
	assert.Equal(t, 4, Width("世界"))

	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "世界 ", PadRight("世界", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, "  ab", PadLeft("ab", 4))
	assert.Equal(t, "abc", PadLeft("abc", 2))
}

func TestPaint(t *testing.T) {
	assert.Equal(t, "x", Paint("x", ""))
	assert.Equal(t, "", Paint("", RedBG))
	assert.Equal(t, RedBG+"x"+Reset, Paint("x", RedBG))
}
