package gostream

import (
	"fmt"
)

func Example() {
	// construct a stream over the inclusive interval [1, 5]
	ints := Range(1, 5)

	// map elements by doubling them
	doubled := Map(ints, func(elem int) int {
		return elem * 2
	})

	// keep only elements smaller than 8, then collect them into a slice;
	// no element is evaluated before this point
	result, _ := doubled.
		Filter(func(elem int) bool {
			return elem < 8
		}).
		Collect()

	fmt.Printf("%+v\n", result)
	// Output: [2 4 6]
}

func ExampleChunkEvery() {
	chunks, _ := ChunkEvery(Range(1, 5), 2).Collect()

	fmt.Printf("%+v\n", chunks)
	// Output: [[1 2] [3 4] [5]]
}

func ExampleUniq() {
	result, _ := Uniq(Of([]int{1, 2, 1, 3, 4, 5, 1, 6, 7})).Collect()

	fmt.Printf("%+v\n", result)
	// Output: [1 2 3 4 5 6 7]
}
