package priority

import (
	"fmt"
	"iter"

	"github.com/KavinB2004/QueueManager/monitoring"
	"github.com/google/btree"
	"go.uber.org/zap"
)

const degree = 8

// record binds one element to its priority.
type record struct {
	priority int
	element  string
}

// higher orders records by descending priority, so the tree minimum is the head.
func higher(a, b record) bool {
	return a.priority > b.priority
}

// Entry is an element together with its priority.
type Entry struct {
	Element  string
	Priority int
}

// Status is the result of Queue.Status.
type Status int

const (
	StatusInvalid Status = iota - 1
	StatusEmpty
	StatusNonEmpty
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusEmpty:
		return "empty"
	case StatusNonEmpty:
		return "non-empty"
	default:
		return "unknown"
	}
}

// Queue holds elements ordered by unique priority, highest first.
// A Queue is not safe for concurrent use.
type Queue struct {
	records *btree.BTreeG[record]
	name    string
	logger  *zap.Logger
	stats   monitoring.Stats
}

// NewQueue creates an empty queue.
func NewQueue(opts ...Option) *Queue {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Queue{
		records: btree.NewG[record](degree, higher),
		name:    o.name,
		logger:  o.logger.With(zap.String("queue", o.name)),
		stats:   o.stats,
	}
}

// Name returns the name the queue was created with.
func (q *Queue) Name() string {
	if q == nil {
		return ""
	}
	return q.name
}

// Insert adds element at priority. It fails with ErrDuplicatePriority and
// leaves the queue unchanged if priority is already queued.
func (q *Queue) Insert(element string, priority int) error {
	if q == nil {
		return ErrInvalidHandle
	}

	if q.records.Has(record{priority: priority}) {
		q.stats.RecordRejected(q.name, "duplicate_priority")
		q.logger.Debug("insert rejected",
			monitoring.Event(monitoring.EventElementRejected),
			zap.String("element", element),
			zap.Int("priority", priority))
		return fmt.Errorf("insert %q: %w: %d", element, ErrDuplicatePriority, priority)
	}

	q.records.ReplaceOrInsert(record{priority: priority, element: element})
	q.stats.RecordInserted(q.name)
	q.stats.SetQueueSize(q.name, q.records.Len())
	return nil
}

// Status reports whether the queue holds any elements. A nil queue reports
// StatusInvalid.
func (q *Queue) Status() Status {
	if q == nil {
		return StatusInvalid
	}
	if q.records.Len() == 0 {
		return StatusEmpty
	}
	return StatusNonEmpty
}

// Len returns the number of queued elements. q must not be nil.
func (q *Queue) Len() int {
	return q.records.Len()
}

// Peek returns the highest priority element without removing it.
func (q *Queue) Peek() (string, error) {
	if q == nil {
		return "", ErrInvalidHandle
	}

	head, ok := q.records.Min()
	if !ok {
		return "", ErrEmpty
	}
	return head.element, nil
}

// Dequeue removes and returns the highest priority element.
func (q *Queue) Dequeue() (string, error) {
	if q == nil {
		return "", ErrInvalidHandle
	}

	head, ok := q.records.DeleteMin()
	if !ok {
		return "", ErrEmpty
	}
	q.stats.RecordDequeued(q.name)
	q.stats.SetQueueSize(q.name, q.records.Len())
	return head.element, nil
}

// Names returns every element from highest to lowest priority. The slice is
// empty, not nil, for an empty queue and nil for a nil queue.
func (q *Queue) Names() []string {
	if q == nil {
		return nil
	}

	names := make([]string, 0, q.records.Len())
	q.records.Ascend(func(r record) bool {
		names = append(names, r.element)
		return true
	})
	return names
}

// Entries returns every element with its priority, highest first.
func (q *Queue) Entries() []Entry {
	if q == nil {
		return nil
	}

	entries := make([]Entry, 0, q.records.Len())
	q.records.Ascend(func(r record) bool {
		entries = append(entries, Entry{Element: r.element, Priority: r.priority})
		return true
	})
	return entries
}

// All yields priority and element pairs, highest priority first. The queue
// must not be modified during iteration.
func (q *Queue) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if q == nil {
			return
		}
		q.records.Ascend(func(r record) bool {
			return yield(r.priority, r.element)
		})
	}
}

// GetPriority returns the priority of element. The whole queue is scanned;
// if element is queued at several priorities the highest one is returned.
func (q *Queue) GetPriority(element string) (int, bool) {
	if q == nil {
		return 0, false
	}

	var (
		priority int
		found    bool
	)
	q.records.Ascend(func(r record) bool {
		if r.element == element && (!found || r.priority > priority) {
			priority, found = r.priority, true
		}
		return true
	})
	return priority, found
}

// RemoveBetween removes every element whose priority lies in [low, high] and
// returns how many were removed.
func (q *Queue) RemoveBetween(low, high int) int {
	if q == nil || low > high {
		return 0
	}

	// Matching records are contiguous: they start at the first record not
	// above high and end before the first record below low.
	var doomed []record
	q.records.AscendGreaterOrEqual(record{priority: high}, func(r record) bool {
		if r.priority < low {
			return false
		}
		doomed = append(doomed, r)
		return true
	})

	for _, r := range doomed {
		q.records.Delete(r)
	}

	if n := len(doomed); n > 0 {
		q.stats.RecordRemoved(q.name, n)
		q.stats.SetQueueSize(q.name, q.records.Len())
		q.logger.Debug("range removed",
			monitoring.Event(monitoring.EventRangeRemoved),
			zap.Int("low", low),
			zap.Int("high", high),
			zap.Int("removed", n))
	}
	return len(doomed)
}

// ChangePriority moves element to newPriority. It succeeds only when element
// is queued exactly once and no element, element itself included, holds
// newPriority.
func (q *Queue) ChangePriority(element string, newPriority int) error {
	if q == nil {
		return ErrInvalidHandle
	}

	var (
		matches int
		match   record
		taken   bool
	)
	q.records.Ascend(func(r record) bool {
		if r.element == element {
			matches++
			match = r
		}
		if r.priority == newPriority {
			taken = true
		}
		return true
	})

	var err error
	switch {
	case matches == 0:
		err = ErrNotFound
	case matches > 1:
		err = ErrAmbiguousElement
	case taken:
		err = ErrDuplicatePriority
	}
	if err != nil {
		q.stats.RecordRejected(q.name, "change_priority")
		return fmt.Errorf("change priority of %q to %d: %w", element, newPriority, err)
	}

	q.records.Delete(match)
	q.records.ReplaceOrInsert(record{priority: newPriority, element: element})
	q.logger.Debug("priority changed",
		monitoring.Event(monitoring.EventPriorityChanged),
		zap.String("element", element),
		zap.Int("from", match.priority),
		zap.Int("to", newPriority))
	return nil
}

// Clear removes every element. Clearing a nil or empty queue does nothing.
func (q *Queue) Clear() {
	if q == nil {
		return
	}

	n := q.records.Len()
	if n == 0 {
		return
	}
	q.records.Clear(false)
	q.stats.RecordRemoved(q.name, n)
	q.stats.SetQueueSize(q.name, 0)
	q.logger.Debug("queue cleared",
		monitoring.Event(monitoring.EventQueueCleared),
		zap.Int("removed", n))
}
