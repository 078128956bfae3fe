package sort

import "golang.org/x/exp/constraints"

// QuickSort returns a sorted copy of nums. nums itself is never modified.
// T must be totally ordered: a NaN compares false against every pivot and
// is lost.
func QuickSort[T constraints.Ordered](nums []T) []T {
	if len(nums) <= 1 {
		return nums
	}

	less, equal, greater := partition(nums)
	res := make([]T, 0, len(nums))
	res = append(res, QuickSort(less)...)
	res = append(res, equal...)
	res = append(res, QuickSort(greater)...)

	return res
}

// partition splits nums around the middle element, keeping the input order
// inside each part.
func partition[T constraints.Ordered](nums []T) (less, equal, greater []T) {
	pivot := nums[len(nums)/2]
	for _, num := range nums {
		switch {
		case num < pivot:
			less = append(less, num)
		case num == pivot:
			equal = append(equal, num)
		case num > pivot:
			greater = append(greater, num)
		}
	}

	return less, equal, greater
}
