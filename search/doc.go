// Package search provides classic lookup routines over slices:
// a single-pass two-sum, binary search, and a maximum scan.
//
// What
//
//   - TwoSum(nums, target): indices of the first pair summing to target.
//   - BinarySearch(arr, target): index of target in a sorted slice, -1 on miss.
//   - Max(arr): largest element by natural ordering.
//
// Absent results
//
//	A miss is an expected outcome here, not a failure: TwoSum reports
//	it through its ok flag, BinarySearch through the -1 sentinel.
//	Only Max errors, because "maximum of nothing" is a caller bug
//	(ErrEmpty), not a miss.
//
// Preconditions
//
//	BinarySearch requires arr sorted ascending and does not verify it;
//	the result on unsorted input is undefined.
//
// Complexity (n = len input)
//
//   - TwoSum: O(n) time, O(n) memory.
//   - BinarySearch: O(log n) time, O(1) memory.
//   - Max: O(n) time, O(1) memory.
//
// Errors
//
//   - ErrEmpty — Max called on an empty slice.
package search
