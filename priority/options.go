package priority

import (
	"github.com/KavinB2004/QueueManager/monitoring"
	"go.uber.org/zap"
)

// options defines the configuration of a Queue.
type options struct {
	name   string           // Label used in logs and metrics
	logger *zap.Logger      // Receives rejected operations and bulk removals
	stats  monitoring.Stats // Receives element counts
}

// Option configures a Queue.
type Option func(*options)

// WithName sets the name the queue reports itself under.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStats sets the stats recorder.
func WithStats(s monitoring.Stats) Option {
	return func(o *options) {
		if s != nil {
			o.stats = s
		}
	}
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		stats:  monitoring.NopStats{},
	}
}
