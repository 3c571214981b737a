// Package observability provides logrus logging and Prometheus metrics for
// lint runs.
//
// # Logging
//
// Create logger:
//
//	log := observability.NewLogger(observability.InfoLevel, observability.FormatText, os.Stderr)
//	log.WithField("file", "config.yaml").Debug("linted document")
//
// Run-scoped logging:
//
//	ctx = observability.WithRunID(observability.WithLogger(ctx, log), uuid.NewString())
//	observability.FromContext(ctx).Info("lint run started")
//
// # Prometheus Metrics
//
// Initialize metrics and hand them to the engine:
//
//	registry := prometheus.NewRegistry()
//	metrics := observability.NewMetrics(registry)
//	engine := linter.NewLintEngine(config, linter.WithMetrics(metrics))
//
// A CLI run has no scrape endpoint; dump the registry instead:
//
//	observability.WriteTextfile(registry, "yamllint.prom")
package observability
