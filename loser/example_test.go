package loser_test

import (
	"fmt"
	"iter"
	"slices"

	"github.com/KavinB2004/QueueManager/loser"
)

// ExampleNew_basic demonstrates merging sorted sequences.
func ExampleNew_basic() {
	tree := loser.New(
		[]iter.Seq[int]{
			slices.Values([]int{1, 4, 7}),
			slices.Values([]int{2, 5, 8}),
			slices.Values([]int{3, 6, 9}),
		},
		func(a, b int) bool { return a < b },
	)

	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 1 2 3 4 5 6 7 8 9
}

// ExampleNew_descending merges sequences ordered from high to low.
func ExampleNew_descending() {
	tree := loser.New(
		[]iter.Seq[int]{
			slices.Values([]int{10, 5}),
			slices.Values([]int{}),
			slices.Values([]int{7, 6, 1}),
		},
		func(a, b int) bool { return a > b },
	)

	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 10 7 6 5 1
}
