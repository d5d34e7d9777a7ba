// Package priority implements a priority queue of text elements keyed by a unique
// integer priority. Elements are kept ordered from the highest priority to the
// lowest, so the head of the queue is always the current maximum.
//
// The queue is backed by a B-tree (github.com/google/btree) ordered by
// descending priority. No two elements may share a priority; the same element
// text may appear more than once under different priorities.
//
// Key features:
//   - O(log n) insertion, O(log n) peek and dequeue of the maximum
//   - Range removal of every element whose priority lies in [low, high]
//   - Priority lookup and change by element text
//   - A tri-state Status that distinguishes a nil queue from an empty one
//
// Basic usage:
//
//	q := priority.NewQueue(priority.WithName("jobs"))
//
//	// Add elements; a priority can only be used once
//	_ = q.Insert("low", 1)
//	_ = q.Insert("high", 10)
//	_ = q.Insert("mid", 5)
//
//	if err := q.Insert("again", 5); errors.Is(err, priority.ErrDuplicatePriority) {
//	    fmt.Println("priority 5 is taken")
//	}
//
//	// Inspect and remove the head
//	head, _ := q.Peek()     // "high"
//	head, _ = q.Dequeue()   // "high", Len() == 2
//
//	// Move an element and drop a range
//	_ = q.ChangePriority("low", 7)
//	removed := q.RemoveBetween(0, 6)
//
// Operations report failures through the sentinel errors in this package.
// ErrDuplicatePriority wraps ErrDuplicateKey and ErrAmbiguousElement wraps
// ErrNotFound, so callers can match either the specific or the general case
// with errors.Is.
//
// A Queue is not safe for concurrent use. Len must not be called on a nil
// *Queue; every other method treats a nil receiver as a missing queue.
package priority
