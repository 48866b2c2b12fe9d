// Package metrics exposes validation runs as Prometheus collectors.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/fsacheck/pkg/domain"
)

// Collectors groups the validator metrics.
type Collectors struct {
	Runs     *prometheus.CounterVec
	Warnings *prometheus.CounterVec
	Duration prometheus.Histogram
	Phases   *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsacheck_runs_total",
				Help: "Validation runs by outcome (complete, incomplete or error kind).",
			},
			[]string{"outcome"},
		),
		Warnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsacheck_warnings_total",
				Help: "Warnings reported, by code.",
			},
			[]string{"code"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fsacheck_run_duration_seconds",
				Help:    "Duration of validation runs.",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		Phases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsacheck_phase_failures_total",
				Help: "Fatal errors by the phase that raised them.",
			},
			[]string{"phase"},
		),
	}
	reg.MustRegister(c.Runs, c.Warnings, c.Duration, c.Phases)
	return c
}

// Hooks returns lifecycle hooks feeding the collectors.
func (c *Collectors) Hooks() domain.Hooks {
	return domain.Hooks{
		OnPhase: func(_ context.Context, e *domain.PhaseEvent) {
			if e.Err != nil {
				c.Phases.WithLabelValues(string(e.Phase)).Inc()
			}
		},
		OnReport: func(_ context.Context, e *domain.ReportEvent) {
			c.Runs.WithLabelValues(e.Outcome).Inc()
			for _, w := range e.Warnings {
				c.Warnings.WithLabelValues(w.Code()).Inc()
			}
			c.Duration.Observe(e.Duration.Seconds())
		},
	}
}
