package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Document metrics
	DocumentsTotal *prometheus.CounterVec
	LintDuration   prometheus.Histogram
	TokensTotal    prometheus.Counter

	// Rule metrics
	ProblemsTotal    *prometheus.CounterVec
	RuleDefectsTotal *prometheus.CounterVec

	// Cache metrics
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// Document metrics
		DocumentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yamllint_documents_total",
				Help: "Total number of linted documents",
			},
			[]string{"status"},
		),
		LintDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "yamllint_lint_duration_seconds",
				Help:    "Time spent linting one document in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		TokensTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "yamllint_tokens_total",
				Help: "Total number of tokens dispatched to rules",
			},
		),

		// Rule metrics
		ProblemsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yamllint_problems_total",
				Help: "Total number of problems reported",
			},
			[]string{"rule", "severity"},
		),
		RuleDefectsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yamllint_rule_defects_total",
				Help: "Total number of rule panics recovered during dispatch",
			},
			[]string{"rule"},
		),

		// Cache metrics
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "yamllint_cache_hits_total",
				Help: "Total number of result cache hits",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "yamllint_cache_misses_total",
				Help: "Total number of result cache misses",
			},
		),
	}

	registry.MustRegister(
		m.DocumentsTotal,
		m.LintDuration,
		m.TokensTotal,
		m.ProblemsTotal,
		m.RuleDefectsTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
	)

	return m
}

// Document outcome labels
const (
	StatusClean       = "clean"
	StatusProblems    = "problems"
	StatusSyntaxError = "syntax_error"
	StatusDefect      = "defect"
)

// RecordDocument records one finished document pass. All Record methods
// are no-ops on a nil receiver.
func (m *Metrics) RecordDocument(status string, tokens int, duration time.Duration) {
	if m == nil {
		return
	}
	m.DocumentsTotal.WithLabelValues(status).Inc()
	m.TokensTotal.Add(float64(tokens))
	m.LintDuration.Observe(duration.Seconds())
}

// RecordProblem records one reported problem
func (m *Metrics) RecordProblem(rule, severity string) {
	if m == nil {
		return
	}
	m.ProblemsTotal.WithLabelValues(rule, severity).Inc()
}

// RecordDefect records one recovered rule panic
func (m *Metrics) RecordDefect(rule string) {
	if m == nil {
		return
	}
	m.RuleDefectsTotal.WithLabelValues(rule).Inc()
}

// RecordCache records a result cache lookup
func (m *Metrics) RecordCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHitsTotal.Inc()
		return
	}
	m.CacheMissesTotal.Inc()
}

// WriteTextfile dumps every metric gathered by registry to path in the
// Prometheus text format
func WriteTextfile(registry *prometheus.Registry, path string) error {
	return prometheus.WriteToTextfile(path, registry)
}
