// Package sorting provides classic comparison sorts and a linear merge
// of sorted slices. Every function returns a NEW slice; callers' input
// is never mutated.
//
// What
//
//   - Bubble(arr): adjacent-swap passes with early exit on a clean pass.
//   - Quick(arr): Lomuto partitioning around the last element.
//   - QuickThreeWay(arr): middle-pivot partition into <, ==, > buckets.
//   - MergeSorted(a, b): linear merge of two individually sorted slices.
//
// Worst cases
//
//	Quick degrades to O(n²) on already-sorted or adversarial input,
//	because the last-element pivot then splits maximally unevenly.
//	QuickThreeWay's middle pivot dodges the sorted-input case and
//	collapses runs of equal keys into the middle bucket, at the cost
//	of O(n) extra memory per level. Bubble is O(n²) in general but
//	O(n) on already-sorted input thanks to the early exit.
//
// Complexity (n = combined input length)
//
//   - Bubble:        O(n²) time worst, O(n) best, O(n) memory (the copy).
//   - Quick:         O(n log n) expected, O(n²) worst, O(n) memory.
//   - QuickThreeWay: O(n log n) expected, O(n) extra memory per level.
//   - MergeSorted:   O(n) time, O(n) memory.
package sorting
