// Package telemetry provides observability instrumentation for the
// puzzle solver: structured logging with zerolog, Prometheus metrics for
// search runs, OpenTelemetry tracing around solves, and an async event
// publisher for search lifecycle events.
//
// Initialize telemetry once at startup:
//
//	cfg := telemetry.DefaultConfig()
//	tel, err := telemetry.New(cfg)
//	if err != nil {
//	    log.Fatal().Err(err).Msg("telemetry init failed")
//	}
//	defer tel.Shutdown(context.Background())
//
// and attach it to a search engine with search.WithObserver(tel).
package telemetry
