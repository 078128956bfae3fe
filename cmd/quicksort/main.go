package main

import (
	"fmt"
	"io"
	"os"

	"quicksort/algorithm/sort"
)

func run(w io.Writer) {
	numbers := []int{3, 6, 8, 10, 1, 2, 1}
	fmt.Fprintf(w, "Sorted: %v\n", sort.QuickSort(numbers))
}

func main() {
	run(os.Stdout)
}
