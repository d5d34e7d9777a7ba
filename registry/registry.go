package registry

import (
	"fmt"
	"iter"

	"github.com/KavinB2004/QueueManager/loser"
	"github.com/KavinB2004/QueueManager/monitoring"
	"github.com/KavinB2004/QueueManager/priority"
	"github.com/google/btree"
	"go.uber.org/zap"
)

// InvalidCount is returned by Count on a nil registry.
const InvalidCount = -1

const degree = 8

var ErrDuplicateName = fmt.Errorf("%w: queue name already registered", priority.ErrDuplicateKey)

// Removal is the outcome of RemoveQueue.
type Removal int

const (
	RemoveNotFound Removal = iota - 1
	RemoveEmpty
	RemoveNonEmpty
)

func (r Removal) String() string {
	switch r {
	case RemoveNotFound:
		return "not found"
	case RemoveEmpty:
		return "removed empty"
	case RemoveNonEmpty:
		return "removed non-empty"
	default:
		return "unknown"
	}
}

// Item is one element of one queue, as yielded by Registry.All.
type Item struct {
	Queue    string
	Element  string
	Priority int
}

type entry struct {
	seq   uint64
	name  string
	queue *priority.Queue
}

// newer orders entries newest first.
func newer(a, b *entry) bool {
	return a.seq > b.seq
}

// Registry maps names to the priority queues it owns.
// A Registry is not safe for concurrent use.
type Registry struct {
	entries *btree.BTreeG[*entry]
	byName  map[string]*entry
	nextSeq uint64
	logger  *zap.Logger
	stats   monitoring.Stats
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Registry{
		entries: btree.NewG[*entry](degree, newer),
		byName:  make(map[string]*entry),
		logger:  o.logger,
		stats:   o.stats,
	}
}

// AddQueue creates an empty queue under name and returns it. It fails with
// ErrDuplicateName if the name is taken.
func (r *Registry) AddQueue(name string) (*priority.Queue, error) {
	if r == nil {
		return nil, priority.ErrInvalidHandle
	}
	if _, exists := r.byName[name]; exists {
		return nil, fmt.Errorf("add queue %q: %w", name, ErrDuplicateName)
	}

	e := &entry{
		seq:  r.nextSeq,
		name: name,
		queue: priority.NewQueue(
			priority.WithName(name),
			priority.WithLogger(r.logger),
			priority.WithStats(r.stats),
		),
	}
	r.nextSeq++
	r.entries.ReplaceOrInsert(e)
	r.byName[name] = e

	r.stats.SetQueueCount(len(r.byName))
	r.stats.SetQueueSize(name, 0)
	r.logger.Info("queue added",
		monitoring.Event(monitoring.EventQueueAdded),
		zap.String("queue", name))
	return e.queue, nil
}

// Count returns the number of registered queues, or InvalidCount if r is nil.
func (r *Registry) Count() int {
	if r == nil {
		return InvalidCount
	}
	return len(r.byName)
}

// Queue returns the queue registered under name. The registry keeps
// ownership of the returned queue.
func (r *Registry) Queue(name string) (*priority.Queue, bool) {
	if r == nil {
		return nil, false
	}
	e, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return e.queue, true
}

// RemoveQueue empties the queue registered under name and drops it from the
// registry. The name can be registered again afterwards.
func (r *Registry) RemoveQueue(name string) Removal {
	if r == nil {
		return RemoveNotFound
	}
	e, ok := r.byName[name]
	if !ok {
		return RemoveNotFound
	}

	r.entries.Delete(e)
	delete(r.byName, name)

	result := RemoveEmpty
	if e.queue.Len() > 0 {
		result = RemoveNonEmpty
	}
	e.queue.Clear()

	r.stats.SetQueueCount(len(r.byName))
	r.logger.Info("queue removed",
		monitoring.Event(monitoring.EventQueueRemoved),
		zap.String("queue", name),
		zap.Stringer("result", result))
	return result
}

// ClearAll empties every registered queue. The queues stay registered and
// Count is unchanged.
func (r *Registry) ClearAll() {
	if r == nil {
		return
	}
	r.entries.Ascend(func(e *entry) bool {
		e.queue.Clear()
		return true
	})
	r.logger.Info("queues cleared",
		monitoring.Event(monitoring.EventQueuesCleared),
		zap.Int("queues", r.entries.Len()))
}

// Names returns the registered names, most recently added first.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, r.entries.Len())
	r.entries.Ascend(func(e *entry) bool {
		names = append(names, e.name)
		return true
	})
	return names
}

// All yields every element of every queue from the highest priority to the
// lowest. Equal priorities in different queues are ordered by queue name.
// Queues must not be added, removed or modified during iteration.
func (r *Registry) All() iter.Seq[Item] {
	if r == nil {
		return func(func(Item) bool) {}
	}

	sequences := make([]iter.Seq[Item], 0, r.entries.Len())
	r.entries.Ascend(func(e *entry) bool {
		sequences = append(sequences, items(e))
		return true
	})

	return loser.New(sequences, func(a, b Item) bool {
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.Queue < b.Queue
	}).All()
}

func items(e *entry) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for p, element := range e.queue.All() {
			if !yield(Item{Queue: e.name, Element: element, Priority: p}) {
				return
			}
		}
	}
}
