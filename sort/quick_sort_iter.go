package sort

import (
	"golang.org/x/exp/constraints"

	"quicksort/algorithm/stack"
)

type segment[T constraints.Ordered] struct {
	nums   []T
	sorted bool
}

// QuickSortIter gives the same result as QuickSort but keeps pending
// partitions on a heap-allocated stack, so sorted or reverse sorted input
// cannot blow the goroutine stack.
func QuickSortIter[T constraints.Ordered](nums []T) []T {
	if len(nums) <= 1 {
		return nums
	}

	res := make([]T, 0, len(nums))
	var work stack.Stack[segment[T]]
	work.Push(segment[T]{nums: nums})
	for work.Len() > 0 {
		seg, _ := work.Pop()
		if seg.sorted || len(seg.nums) <= 1 {
			res = append(res, seg.nums...)
			continue
		}

		less, equal, greater := partition(seg.nums)
		// pushed in reverse, less comes off first
		work.Push(segment[T]{nums: greater})
		work.Push(segment[T]{nums: equal, sorted: true})
		work.Push(segment[T]{nums: less})
	}

	return res
}
