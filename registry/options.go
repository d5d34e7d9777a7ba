package registry

import (
	"github.com/KavinB2004/QueueManager/monitoring"
	"go.uber.org/zap"
)

// options defines all configuration options for the registry.
type options struct {
	logger *zap.Logger      // Shared with every queue the registry creates
	stats  monitoring.Stats // Shared with every queue the registry creates
}

// Option is a function that configures the registry options.
type Option func(*options)

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

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		stats:  monitoring.NopStats{},
	}
}
