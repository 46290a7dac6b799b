// Package metrics records generation runs as Prometheus metrics.
//
// The generator is a batch tool, so metrics are not served over HTTP;
// they are written once to a node_exporter textfile at the end of a
// command.
//
// Metrics:
//   - client_generator_runs_total: runs by strategy and outcome
//   - client_generator_operations_total: operations by disposition (kept, dropped)
//   - client_generator_interfaces_total: generated interfaces by strategy
//   - client_generator_methods_total: generated methods by strategy
//   - client_generator_warnings_total: non-fatal diagnostics
//   - client_generator_run_duration_seconds: run duration
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"client-generator/internal/plan"
)

const namespace = "client_generator"

// Collector implements plan.Observer on top of a Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	runsTotal       *prometheus.CounterVec
	operationsTotal *prometheus.CounterVec
	interfacesTotal *prometheus.CounterVec
	methodsTotal    *prometheus.CounterVec
	warningsTotal   prometheus.Counter
	runDuration     *prometheus.HistogramVec
}

// NewCollector creates a collector and registers its metrics with
// registry. A nil registry gets a fresh one.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of generation runs",
			},
			[]string{"strategy", "outcome"},
		),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of input operations by filter disposition",
			},
			[]string{"disposition"},
		),
		interfacesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "interfaces_total",
				Help:      "Total number of generated interfaces",
			},
			[]string{"strategy"},
		),
		methodsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "methods_total",
				Help:      "Total number of generated interface methods",
			},
			[]string{"strategy"},
		),
		warningsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "warnings_total",
				Help:      "Total number of non-fatal diagnostics",
			},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of generation runs in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
			},
			[]string{"strategy"},
		),
	}

	registry.MustRegister(
		c.runsTotal,
		c.operationsTotal,
		c.interfacesTotal,
		c.methodsTotal,
		c.warningsTotal,
		c.runDuration,
	)

	return c
}

// ObserveRun records one run.
func (c *Collector) ObserveRun(s plan.RunStats) {
	strategy := s.Strategy
	if strategy == "" {
		strategy = "None"
	}

	c.runsTotal.WithLabelValues(strategy, s.Outcome).Inc()
	c.runDuration.WithLabelValues(strategy).Observe(s.Duration.Seconds())

	if s.Outcome != plan.OutcomeOK {
		return
	}

	c.operationsTotal.WithLabelValues("kept").Add(float64(s.Kept))
	c.operationsTotal.WithLabelValues("dropped").Add(float64(s.Operations - s.Kept))
	c.interfacesTotal.WithLabelValues(strategy).Add(float64(s.Interfaces))
	c.methodsTotal.WithLabelValues(strategy).Add(float64(s.Methods))
	c.warningsTotal.Add(float64(s.Warnings))
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the current metrics to path in the text exposition
// format, replacing the file atomically.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
