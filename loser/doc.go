// Package loser implements a tournament tree (also known as a loser tree) that merges
// any number of ordered sequences into one ordered sequence. The design follows
// Bryan Boreham's go-loser (https://github.com/bboreham/go-loser).
//
// Each internal node of the tree remembers the sequence that lost the comparison
// played at that node, and node 0 remembers the overall winner. Producing the next
// value only replays the games on the path from the winner's leaf to the root, so
// each value costs O(log k) comparisons for k sequences.
//
// Sequences are plain iter.Seq values and are pulled lazily. A sequence that is
// exhausted always loses, so no sentinel "maximum" value is needed.
//
// Basic usage:
//
//	tree := loser.New(
//	    []iter.Seq[int]{slices.Values([]int{1, 4}), slices.Values([]int{2, 3})},
//	    func(a, b int) bool { return a < b },
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 1, 2, 3, 4
//	}
//
// Every input sequence must already be ordered by the same function passed to New.
// When two heads compare equal the sequence with the lower index wins, which keeps
// the merge stable.
package loser
