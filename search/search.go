package search

import (
	"cmp"
	"errors"
)

// ErrEmpty indicates Max was called on an empty slice.
var ErrEmpty = errors.New("search: empty input")

// Number constrains TwoSum to types closed under subtraction.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// TwoSum returns the indices (i, j) of the first pair of elements in
// nums, by scan order, whose sum equals target, with i < j. A single
// pass records each seen value's index; for every element the
// complement target-value is probed against that record. Only the
// FIRST qualifying pair is reported. ok is false when no pair exists.
//
// Complexity: O(n) time, O(n) memory.
func TwoSum[T Number](nums []T, target T) (i, j int, ok bool) {
	seen := make(map[T]int, len(nums))
	for cur, v := range nums {
		if prev, found := seen[target-v]; found {
			return prev, cur, true
		}
		// first occurrence wins; later duplicates would pair later
		if _, dup := seen[v]; !dup {
			seen[v] = cur
		}
	}

	return 0, 0, false
}

// BinarySearch returns the index of target in arr, or -1 when absent.
// arr must be sorted ascending; this is not verified and the result on
// unsorted input is undefined. The midpoint is computed as
// lo + (hi-lo)/2 to avoid overflow on wide ranges.
//
// Complexity: O(log n)
func BinarySearch[T cmp.Ordered](arr []T, target T) int {
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case arr[mid] == target:
			return mid
		case arr[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1
}

// Max returns the largest element of arr by natural ordering.
// Implemented as an iterative reduction, so slice length is bounded
// only by memory (no recursion depth or argument-count limits).
// Returns ErrEmpty on an empty slice.
//
// Complexity: O(n)
func Max[T cmp.Ordered](arr []T) (T, error) {
	var zero T
	if len(arr) == 0 {
		return zero, ErrEmpty
	}
	best := arr[0]
	for _, v := range arr[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}
