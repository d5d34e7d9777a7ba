package monitoring

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event types attached to log entries with Event.
const (
	EventQueueAdded       = "queue_added"
	EventQueueRemoved     = "queue_removed"
	EventQueuesCleared    = "queues_cleared"
	EventElementRejected  = "element_rejected"
	EventRangeRemoved     = "range_removed"
	EventPriorityChanged  = "priority_changed"
	EventQueueCleared     = "queue_cleared"
	EventScriptStepFailed = "script_step_failed"
)

const (
	componentKey = "component"
	eventTypeKey = "event_type"
)

// NewLogger builds a JSON logger writing to stderr at the given level
// ("debug", "info", "warn", "error"). Every entry carries the component name.
func NewLogger(component, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{componentKey: component}

	return cfg.Build()
}

// Event tags an entry with its event type.
func Event(eventType string) zap.Field {
	return zap.String(eventTypeKey, eventType)
}

// Component returns a child logger for a named component.
func Component(l *zap.Logger, component string) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.With(zap.String(componentKey, component))
}
