package compactor

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/CloudFitSoftware/clean-code-exercises/internal/failmsg"
)

func TestCompact(t *testing.T) {
	some := failmsg.Some
	absent := failmsg.Absent()

	tests := []struct {
		name          string
		contextLength int
		expected      failmsg.Text
		actual        failmsg.Text
		label         failmsg.Text
		want          string
	}{
		{name: "message", contextLength: 0, expected: some("b"), actual: some("c"), label: some("a"), want: "a expected:<[b]> but was:<[c]>"},
		{name: "start same", contextLength: 1, expected: some("ba"), actual: some("bc"), want: "expected:<b[a]> but was:<b[c]>"},
		{name: "end same", contextLength: 1, expected: some("ab"), actual: some("cb"), want: "expected:<[a]b> but was:<[c]b>"},
		{name: "same", contextLength: 1, expected: some("ab"), actual: some("ab"), want: "expected:<ab> but was:<ab>"},
		{name: "no context start and end same", contextLength: 0, expected: some("abc"), actual: some("adc"), want: "expected:<...[b]...> but was:<...[d]...>"},
		{name: "start and end context", contextLength: 1, expected: some("abc"), actual: some("adc"), want: "expected:<a[b]c> but was:<a[d]c>"},
		{name: "start and end context with ellipses", contextLength: 1, expected: some("abcde"), actual: some("abfde"), want: "expected:<...b[c]d...> but was:<...b[f]d...>"},
		{name: "start same complete", contextLength: 2, expected: some("ab"), actual: some("abc"), want: "expected:<ab[]> but was:<ab[c]>"},
		{name: "end same complete", contextLength: 0, expected: some("bc"), actual: some("abc"), want: "expected:<[]...> but was:<[a]...>"},
		{name: "end same complete context", contextLength: 2, expected: some("bc"), actual: some("abc"), want: "expected:<[]bc> but was:<[a]bc>"},
		{name: "overlapping matches", contextLength: 0, expected: some("abc"), actual: some("abbc"), want: "expected:<...[]...> but was:<...[b]...>"},
		{name: "overlapping matches context", contextLength: 2, expected: some("abc"), actual: some("abbc"), want: "expected:<ab[]c> but was:<ab[b]c>"},
		{name: "overlapping matches 2", contextLength: 0, expected: some("abcdde"), actual: some("abcde"), want: "expected:<...[d]...> but was:<...[]...>"},
		{name: "overlapping matches 2 context", contextLength: 2, expected: some("abcdde"), actual: some("abcde"), want: "expected:<...cd[d]e> but was:<...cd[]e>"},
		{name: "actual absent", contextLength: 0, expected: some("a"), actual: absent, want: "expected:<a> but was:<null>"},
		{name: "actual absent context", contextLength: 2, expected: some("a"), actual: absent, want: "expected:<a> but was:<null>"},
		{name: "expected absent", contextLength: 0, expected: absent, actual: some("a"), want: "expected:<null> but was:<a>"},
		{name: "expected absent context", contextLength: 2, expected: absent, actual: some("a"), want: "expected:<null> but was:<a>"},
		{name: "both absent", contextLength: 3, expected: absent, actual: absent, label: some("x"), want: "x expected:<null> but was:<null>"},
		{name: "shared suffix longer than expected delta", contextLength: 10, expected: some("S&P500"), actual: some("0"), want: "expected:<[S&P50]0> but was:<[]0>"},
		{name: "empty expected", contextLength: 1, expected: some(""), actual: some("a"), want: "expected:<[]> but was:<[a]>"},
		{name: "empty actual", contextLength: 0, expected: some("ab"), actual: some(""), want: "expected:<[ab]> but was:<[]>"},
		{name: "both empty", contextLength: 0, expected: some(""), actual: some(""), want: "expected:<> but was:<>"},
		{name: "negative context is zero", contextLength: -5, expected: some("abc"), actual: some("adc"), want: "expected:<...[b]...> but was:<...[d]...>"},
		{name: "long prefix truncated", contextLength: 3, expected: some("0123456789x"), actual: some("0123456789y"), want: "expected:<...789[x]> but was:<...789[y]>"},
		{name: "long suffix truncated", contextLength: 3, expected: some("x0123456789"), actual: some("y0123456789"), want: "expected:<[x]012...> but was:<[y]012...>"},
		{name: "empty label omitted", contextLength: 0, expected: some("b"), actual: some("c"), label: some(""), want: "expected:<[b]> but was:<[c]>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.contextLength, tt.expected, tt.actual).Compact(tt.label)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPair(t *testing.T) {
	pair, ok := NewStrings(2, "abcdde", "abcde").Pair()
	require.True(t, ok)
	assert.Equal(t, Commons{PrefixLength: 4, SuffixLength: 1}, pair.Commons)
	assert.Equal(t, Rendering{Prefix: "...cd", Delta: "d", Suffix: "e"}, pair.Expected)
	assert.Equal(t, Rendering{Prefix: "...cd", Delta: "", Suffix: "e"}, pair.Actual)

	_, ok = NewStrings(2, "same", "same").Pair()
	assert.False(t, ok)

	_, ok = New(2, failmsg.Some("a"), failmsg.Absent()).Pair()
	assert.False(t, ok)
}

func TestFindCommons(t *testing.T) {
	tests := []struct {
		expected string
		actual   string
		want     Commons
	}{
		{expected: "", actual: "", want: Commons{0, 0}},
		{expected: "b", actual: "c", want: Commons{0, 0}},
		{expected: "ab", actual: "abc", want: Commons{2, 0}},
		{expected: "bc", actual: "abc", want: Commons{0, 2}},
		{expected: "abc", actual: "abbc", want: Commons{2, 1}},
		{expected: "abcdde", actual: "abcde", want: Commons{4, 1}},
		{expected: "S&P500", actual: "0", want: Commons{0, 1}},
		{expected: "aaaa", actual: "aa", want: Commons{2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.expected+"/"+tt.actual, func(t *testing.T) {
			assert.Equal(t, tt.want, FindCommons(tt.expected, tt.actual))
		})
	}
}

// randomString draws from a tiny alphabet so that long shared runs are common.
func randomString(r *rand.Rand, maxLen int) string {
	const alphabet = "ab"
	n := r.IntN(maxLen + 1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[r.IntN(len(alphabet))])
	}
	return b.String()
}

func TestFindCommons_MatchesDiffMatchPatch(t *testing.T) {
	dmp := diffmatchpatch.New()
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 2000; i++ {
		expected := randomString(r, 8)
		actual := randomString(r, 8)

		got := FindCommons(expected, actual)

		wantPrefix := dmp.DiffCommonPrefix(expected, actual)
		wantSuffix := min(dmp.DiffCommonSuffix(expected, actual), min(len(expected), len(actual))-wantPrefix)
		require.Equal(t, wantPrefix, got.PrefixLength, "prefix of %q vs %q", expected, actual)
		require.Equal(t, wantSuffix, got.SuffixLength, "suffix of %q vs %q", expected, actual)
		require.LessOrEqual(t, got.PrefixLength+got.SuffixLength, min(len(expected), len(actual)))
	}
}

func TestCompact_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 2000; i++ {
		expected := randomString(r, 10)
		actual := randomString(r, 10)
		contextLength := r.IntN(6)

		c := NewStrings(contextLength, expected, actual)
		got := c.Compact(failmsg.Absent())

		if expected == actual {
			require.Equal(t, failmsg.Format(failmsg.Absent(), failmsg.Some(expected), failmsg.Some(actual)), got)
			continue
		}

		pair, ok := c.Pair()
		require.True(t, ok)

		// Removing the context from each rendering leaves exactly the delta of that side.
		e, a := expected, actual
		p, s := pair.Commons.PrefixLength, pair.Commons.SuffixLength
		require.Equal(t, e[p:len(e)-s], pair.Expected.Delta)
		require.Equal(t, a[p:len(a)-s], pair.Actual.Delta)
		require.Equal(t, e[:p], a[:p])
		require.Equal(t, e[len(e)-s:], a[len(a)-s:])

		// Context never exceeds contextLength, not counting the ellipsis.
		require.LessOrEqual(t, len(strings.TrimPrefix(pair.Expected.Prefix, ellipsis)), contextLength)
		require.LessOrEqual(t, len(strings.TrimSuffix(pair.Expected.Suffix, ellipsis)), contextLength)

		// Once the context covers both strings, nothing is truncated.
		wide := NewStrings(max(len(expected), len(actual)), expected, actual).Compact(failmsg.Absent())
		require.NotContains(t, wide, ellipsis)
	}
}

func TestCompact_AbsentIgnoresContextLength(t *testing.T) {
	for contextLength := 0; contextLength < 5; contextLength++ {
		got := New(contextLength, failmsg.Absent(), failmsg.Some("abc")).Compact(failmsg.Some("lbl"))
		assert.Equal(t, "lbl expected:<null> but was:<abc>", got)
	}
}

func TestCompact_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewStrings(2, "abcdde", "abcde")
	const want = "expected:<...cd[d]e> but was:<...cd[]e>"

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)
	results := make([]string, 256)
	for i := range results {
		g.Go(func() error {
			results[i] = c.Compact(failmsg.Absent())
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
