package loser

import (
	"iter"
)

// Tree merges ordered sequences. Leaves occupy nodes[k:2k] for k sequences,
// internal nodes nodes[1:k], and nodes[0] holds the current winner.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []iter.Seq[E]
	before    func(a, b E) bool
}

type node[E any] struct {
	index int              // Losing leaf for internal nodes, winning leaf for node 0.
	value E                // Current head, leaves only.
	done  bool             // Sequence exhausted, leaves only.
	next  func() (E, bool) // Leaves only.
}

// New returns a tree over sequences, each ordered by before.
func New[E any](sequences []iter.Seq[E], before func(a, b E) bool) *Tree[E] {
	return &Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		before:    before,
	}
}

// All yields the merged sequence. Each call restarts every input sequence.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		k := len(t.sequences)
		if k == 0 {
			return
		}
		for i, s := range t.sequences {
			next, stop := iter.Pull(s)
			//nolint:gocritic // stop must run when the merge ends, not per iteration.
			defer stop()
			t.nodes[k+i].next = next
			t.advance(k + i)
		}
		t.nodes[0].index = t.play(1)

		for {
			w := t.nodes[0].index
			if t.nodes[w].done || !yield(t.nodes[w].value) {
				return
			}
			t.advance(w)
			t.replay(w)
		}
	}
}

// advance pulls the next head of the leaf at pos.
func (t *Tree[E]) advance(pos int) {
	n := &t.nodes[pos]
	if v, ok := n.next(); ok {
		n.value, n.done = v, false
		return
	}
	var zero E
	n.value, n.done = zero, true
}

// beats reports whether leaf a wins against leaf b.
func (t *Tree[E]) beats(a, b int) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	switch {
	case na.done:
		return false
	case nb.done:
		return true
	case t.before(nb.value, na.value):
		return false
	case t.before(na.value, nb.value):
		return true
	default:
		return a < b
	}
}

// play returns the winning leaf below pos and records the losers on the way.
func (t *Tree[E]) play(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.play(pos * 2)
	right := t.play(pos*2 + 1)
	if t.beats(left, right) {
		t.nodes[pos].index = right
		return left
	}
	t.nodes[pos].index = left
	return right
}

// replay re-runs the games from leaf pos up to the root after pos advanced.
func (t *Tree[E]) replay(pos int) {
	for n := pos / 2; n != 0; n /= 2 {
		if loser := t.nodes[n].index; t.beats(loser, pos) {
			t.nodes[n].index, pos = pos, loser
		}
	}
	t.nodes[0].index = pos
}
