// Package strutil provides classic string algorithms over Unicode text:
// reversal, palindrome detection, character frequency, and anagram checks.
//
// What
//
//   - Reverse(s): new string with code points in reverse order.
//   - IsPalindrome(s): case- and whitespace-insensitive palindrome test.
//   - CharFrequency(s): map from rune to occurrence count.
//   - IsAnagram(a, b): normalized, code-point-sorted equality test.
//
// Unicode
//
//	All operations iterate by rune (Unicode code point), never by raw
//	byte, so multi-byte characters survive reversal and comparison.
//	Reverse rejects byte sequences that are not valid UTF-8 with
//	ErrInvalidUTF8 rather than producing garbage output.
//
// Normalization
//
//	IsPalindrome and IsAnagram share one normalization step: lowercase
//	the input, then drop every whitespace rune. No other folding
//	(diacritics, punctuation) is applied.
//
// Complexity (n = number of runes)
//
//   - Reverse, IsPalindrome, IsAnagram: O(n) time (IsAnagram adds an
//     O(n log n) rune sort), O(n) memory.
//   - CharFrequency: O(n) time, O(distinct runes) memory.
//
// Errors
//
//   - ErrInvalidUTF8 if Reverse receives malformed UTF-8.
package strutil
