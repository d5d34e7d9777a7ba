package monitoring

import (
	"github.com/KavinB2004/QueueManager/metrics"
)

// Metric names registered by NewStats.
const (
	MetricInserted = "elements_inserted_total"
	MetricRejected = "elements_rejected_total"
	MetricDequeued = "elements_dequeued_total"
	MetricRemoved  = "elements_removed_total"
	MetricSize     = "queue_size"
	MetricQueues   = "queues_registered"
)

// Stats receives queue and registry activity.
type Stats interface {
	RecordInserted(queue string)
	RecordRejected(queue, reason string)
	RecordDequeued(queue string)
	RecordRemoved(queue string, n int)
	SetQueueSize(queue string, size int)
	SetQueueCount(count int)
}

// stats reports into a metrics.Registry.
type stats struct {
	registry *metrics.Registry
}

func NewStats(registry *metrics.Registry) Stats {
	registry.Register(metrics.Metric{
		Name:        MetricInserted,
		Type:        metrics.Counter,
		Description: "Total number of elements inserted",
	})

	registry.Register(metrics.Metric{
		Name:        MetricRejected,
		Type:        metrics.Counter,
		Description: "Total number of rejected operations by reason",
	})

	registry.Register(metrics.Metric{
		Name:        MetricDequeued,
		Type:        metrics.Counter,
		Description: "Total number of elements dequeued",
	})

	registry.Register(metrics.Metric{
		Name:        MetricRemoved,
		Type:        metrics.Counter,
		Description: "Total number of elements removed by range or clear",
	})

	registry.Register(metrics.Metric{
		Name:        MetricSize,
		Type:        metrics.Gauge,
		Description: "Number of elements currently held by a queue",
	})

	registry.Register(metrics.Metric{
		Name:        MetricQueues,
		Type:        metrics.Gauge,
		Description: "Number of queues in the registry",
	})

	return &stats{registry: registry}
}

func (s *stats) RecordInserted(queue string) {
	s.registry.Add(MetricInserted, 1, queueLabels(queue))
}

func (s *stats) RecordRejected(queue, reason string) {
	s.registry.Add(MetricRejected, 1, map[string]string{
		"queue":  queue,
		"reason": reason,
	})
}

func (s *stats) RecordDequeued(queue string) {
	s.registry.Add(MetricDequeued, 1, queueLabels(queue))
}

func (s *stats) RecordRemoved(queue string, n int) {
	if n == 0 {
		return
	}
	s.registry.Add(MetricRemoved, float64(n), queueLabels(queue))
}

func (s *stats) SetQueueSize(queue string, size int) {
	s.registry.Set(MetricSize, float64(size), queueLabels(queue))
}

func (s *stats) SetQueueCount(count int) {
	s.registry.Set(MetricQueues, float64(count), nil)
}

func queueLabels(queue string) map[string]string {
	return map[string]string{"queue": queue}
}

// NopStats discards everything.
type NopStats struct{}

func (NopStats) RecordInserted(string)         {}
func (NopStats) RecordRejected(string, string) {}
func (NopStats) RecordDequeued(string)         {}
func (NopStats) RecordRemoved(string, int)     {}
func (NopStats) SetQueueSize(string, int)      {}
func (NopStats) SetQueueCount(int)             {}
