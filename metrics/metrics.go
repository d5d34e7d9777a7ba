package metrics

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

func (t MetricType) String() string {
	switch t {
	case Counter:
		return "counter"
	case Gauge:
		return "gauge"
	default:
		return "unknown"
	}
}

// Metric describes a registered metric.
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue is the current value of one label set of a metric.
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics. Counters accumulate per label set,
// gauges keep the last value per label set.
type Registry struct {
	metrics map[string]Metric
	values  map[string]map[string]*MetricValue
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]map[string]*MetricValue),
	}
}

// Register adds a metric definition. Registering the same name twice
// replaces the definition and keeps recorded values.
func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}

// Add increments a counter. Unknown names and non-counter metrics are ignored.
func (r *Registry) Add(name string, delta float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Counter {
		v := r.valueLocked(name, labels)
		v.Value += delta
		v.Timestamp = time.Now()
	}
}

// Set records the current value of a gauge. Unknown names and non-gauge
// metrics are ignored.
func (r *Registry) Set(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Gauge {
		v := r.valueLocked(name, labels)
		v.Value = value
		v.Timestamp = time.Now()
	}
}

// Value returns the value recorded for name and the exact label set.
func (r *Registry) Value(name string, labels map[string]string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[name][labelKey(labels)]
	if !ok {
		return 0, false
	}
	return v.Value, true
}

// Metrics returns the registered definitions sorted by name.
func (r *Registry) Metrics() []Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metric, 0, len(r.metrics))
	for _, m := range r.metrics {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetMetrics returns a copy of every recorded value grouped by metric name.
// Values within a metric are ordered by their label set.
func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue, len(r.values))
	for name, byLabels := range r.values {
		keys := make([]string, 0, len(byLabels))
		for k := range byLabels {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		values := make([]MetricValue, 0, len(keys))
		for _, k := range keys {
			v := *byLabels[k]
			v.Labels = copyLabels(v.Labels)
			values = append(values, v)
		}
		result[name] = values
	}
	return result
}

func (r *Registry) valueLocked(name string, labels map[string]string) *MetricValue {
	byLabels, ok := r.values[name]
	if !ok {
		byLabels = make(map[string]*MetricValue)
		r.values[name] = byLabels
	}
	key := labelKey(labels)
	v, ok := byLabels[key]
	if !ok {
		v = &MetricValue{Labels: copyLabels(labels)}
		byLabels[key] = v
	}
	return v
}

// labelKey renders labels in a canonical order so equal sets share a key.
func labelKey(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	return b.String()
}

func copyLabels(labels map[string]string) map[string]string {
	if labels == nil {
		return nil
	}
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}
