package ecs

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// config bundles the knobs a World can be constructed with. Every field is
// fixed once the World is built — there is no live reconfiguration.
type config struct {
	logger       *zap.Logger
	metrics      metricsSink
	capacityHint int
}

func defaultConfig() config {
	return config{
		logger:  zap.NewNop(),
		metrics: noopMetrics{},
	}
}

// Option configures a World at construction time. There is no environment
// variable or CLI surface for this library — options are the only knob.
type Option func(*config)

// WithLogger installs a structured logger. The World never logs on the
// Each hot path; only rare events are emitted: pool registration (Debug)
// and singleton violations (Warn).
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics enables Prometheus metrics collection for the World.
// Passing nil leaves metrics disabled (the default).
func WithMetrics(reg *prometheus.Registry) Option {
	return func(c *config) {
		if reg != nil {
			c.metrics = newPromMetrics(reg)
		}
	}
}

// WithEntityCapacityHint reserves capacity for n entities up front,
// propagated through World.Reserve once the World exists.
func WithEntityCapacityHint(n int) Option {
	return func(c *config) {
		c.capacityHint = n
	}
}

func applyOptions(c *config, opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}
