// Package observability provides OpenTelemetry tracing and metrics for
// HTTP exchanges.
//
// The transport always starts a span per exchange through the global tracer
// provider, which is a no-op until InitTracer installs an exporting one:
//
//	tp, err := observability.InitTracer(ctx, &cfg)
//	defer tp.Shutdown(ctx)
//
// Metrics are opt-in:
//
//	metrics, err := observability.NewMetrics(observability.Meter("bitly"))
//	client, err := bitly.New(token, bitly.WithMetrics(metrics))
package observability
