package strutil

import (
	"errors"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates the input is not a valid UTF-8 sequence.
var ErrInvalidUTF8 = errors.New("strutil: input is not valid UTF-8")

// Reverse returns a new string whose runes appear in reverse order.
// The input is never mutated. Returns ErrInvalidUTF8 when s contains
// malformed UTF-8, so callers cannot silently reverse byte garbage.
//
// Complexity: O(n) over runes.
func Reverse(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes), nil
}

// IsPalindrome reports whether s reads the same forwards and backwards,
// ignoring case and all whitespace ("Never odd or even" → true).
//
// Complexity: O(n) over runes.
func IsPalindrome(s string) bool {
	runes := normalize(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}

	return true
}

// CharFrequency returns a map from each distinct rune in s to its
// occurrence count. Map iteration order carries no guarantee.
//
// Complexity: O(n) time, O(distinct runes) memory.
func CharFrequency(s string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range s {
		freq[r]++
	}

	return freq
}

// IsAnagram reports whether a and b are anagrams of each other after
// normalization (lowercase, whitespace stripped). Each normalized
// string's runes are sorted by code point and compared for equality.
//
// Complexity: O(n log n) over runes.
func IsAnagram(a, b string) bool {
	ra, rb := normalize(a), normalize(b)
	if len(ra) != len(rb) {
		return false
	}
	slices.Sort(ra)
	slices.Sort(rb)

	return slices.Equal(ra, rb)
}

// normalize lowercases s and drops every whitespace rune, returning the
// surviving runes. Shared by IsPalindrome and IsAnagram.
func normalize(s string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, r)
	}

	return out
}
