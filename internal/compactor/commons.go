package compactor

// Commons holds the lengths of the common prefix and common suffix of two strings.
//
// The suffix never overlaps the prefix: SuffixLength counts only matching trailing bytes at indices >= PrefixLength in both strings.
type Commons struct {
	PrefixLength int // Number of matching leading bytes.
	SuffixLength int // Number of matching trailing bytes not already claimed by the prefix.
}

// FindCommons computes the common prefix and then the common suffix of expected and actual.
//
// Ex: FindCommons("abcdde", "abcde") is {4, 1}: the prefix is "abcd", and the suffix scan stops before re-claiming the "d" of the shorter string.
func FindCommons(expected, actual string) Commons {
	prefixLength := commonPrefixLength(expected, actual)
	return Commons{
		PrefixLength: prefixLength,
		SuffixLength: commonSuffixLength(expected, actual, prefixLength),
	}
}

func commonPrefixLength(expected, actual string) int {
	shorter := min(len(expected), len(actual))
	n := 0
	for n < shorter && expected[n] == actual[n] {
		n++
	}
	return n
}

// commonSuffixLength walks expected and actual backward in lockstep, never below prefixLength.
func commonSuffixLength(expected, actual string, prefixLength int) int {
	expectedIndex := len(expected) - 1
	actualIndex := len(actual) - 1
	n := 0
	for expectedIndex >= prefixLength && actualIndex >= prefixLength && expected[expectedIndex] == actual[actualIndex] {
		n++
		expectedIndex--
		actualIndex--
	}
	return n
}
