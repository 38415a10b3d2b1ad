package sorting

import (
	"cmp"
	"slices"
)

// Bubble returns a sorted copy of arr. Repeated adjacent-pair passes
// swap out-of-order neighbors; once a full pass performs no swap the
// slice is sorted and the loop exits early, making already-sorted
// input linear.
//
// Complexity: O(n²) worst, O(n) best.
func Bubble[T cmp.Ordered](arr []T) []T {
	out := slices.Clone(arr)
	for n := len(out); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if out[i-1] > out[i] {
				out[i-1], out[i] = out[i], out[i-1]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return out
}

// Quick returns a sorted copy of arr using in-place Lomuto
// partitioning around the last element as pivot, recursing on both
// partitions. Worst case is O(n²) when input is already sorted or
// adversarially ordered; see the package doc.
//
// Complexity: O(n log n) expected, O(n²) worst.
func Quick[T cmp.Ordered](arr []T) []T {
	out := slices.Clone(arr)
	quickLomuto(out, 0, len(out)-1)

	return out
}

// quickLomuto sorts out[lo..hi] in place.
func quickLomuto[T cmp.Ordered](out []T, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(out, lo, hi)
	quickLomuto(out, lo, p-1)
	quickLomuto(out, p+1, hi)
}

// partition applies the Lomuto scheme: pivot = out[hi]; elements below
// the pivot are swapped into the left region, then the pivot lands at
// the boundary. Returns the pivot's final index.
func partition[T cmp.Ordered](out []T, lo, hi int) int {
	pivot := out[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if out[j] < pivot {
			out[i], out[j] = out[j], out[i]
			i++
		}
	}
	out[i], out[hi] = out[hi], out[i]

	return i
}

// QuickThreeWay returns a sorted copy of arr using filter-based
// partitioning: the middle element is the pivot, the slice is split
// into less-than, equal, and greater-than buckets, the outer buckets
// are sorted recursively, and the three are concatenated. Equal runs
// collapse into the middle bucket, and the middle pivot avoids the
// sorted-input worst case of Quick.
//
// Complexity: O(n log n) expected, O(n) extra memory per level.
func QuickThreeWay[T cmp.Ordered](arr []T) []T {
	if len(arr) <= 1 {
		return slices.Clone(arr)
	}
	pivot := arr[len(arr)/2]
	var less, equal, greater []T
	for _, v := range arr {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	out := make([]T, 0, len(arr))
	out = append(out, QuickThreeWay(less)...)
	out = append(out, equal...)
	out = append(out, QuickThreeWay(greater)...)

	return out
}

// MergeSorted merges two individually ascending-sorted slices into one
// sorted slice. Heads are compared repeatedly and the smaller appended;
// whichever input survives is appended wholesale. Neither input is
// mutated. Behavior on unsorted input is undefined.
//
// Complexity: O(len(a)+len(b))
func MergeSorted[T cmp.Ordered](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
