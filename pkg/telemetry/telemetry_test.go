package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

// newTestTelemetry builds a quiet telemetry instance for tests.
func newTestTelemetry(t *testing.T) *Telemetry {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "json"
	tel, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create telemetry: %v", err)
	}
	return tel
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"missing service name", func(c *Config) { c.ServiceName = "" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"bad exporter", func(c *Config) { c.Tracing.Exporter = "jaeger" }, true},
		{"sampling above one", func(c *Config) { c.Tracing.SamplingRate = 1.5 }, true},
		{"json format", func(c *Config) { c.Logging.Format = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoadFileOverridesDefaults tests YAML config loading.
func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/telemetry.yaml"
	doc := "service_name: custom\nlogging:\n  level: debug\n  format: json\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServiceName != "custom" {
		t.Errorf("service name = %q, want custom", cfg.ServiceName)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Metrics.Namespace != "npuzzle" {
		t.Errorf("metrics namespace = %q, want npuzzle", cfg.Metrics.Namespace)
	}
}

// TestMetricsExposition tests that recorded search metrics appear on the
// Prometheus handler.
func TestMetricsExposition(t *testing.T) {
	m, err := NewMetrics(MetricsConfig{Enabled: true, Namespace: "npuzzle"})
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	m.SearchStarted("manhattan")
	m.SearchCompleted("manhattan", "solved", 20*time.Millisecond, 330, 212, 22)
	m.PuzzleRejected("invalid_grid")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	for _, want := range []string{
		"npuzzle_searches_started_total",
		"npuzzle_searches_completed_total",
		"npuzzle_puzzles_rejected_total",
		`heuristic="manhattan"`,
		`outcome="solved"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics exposition missing %q", want)
		}
	}
}

// TestMetricsDisabledIsNoOp tests the no-op collector.
func TestMetricsDisabledIsNoOp(t *testing.T) {
	m, err := NewMetrics(MetricsConfig{Enabled: false})
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	// Must not panic.
	m.SearchStarted("manhattan")
	m.SearchCompleted("manhattan", "solved", time.Millisecond, 1, 1, 1)
	if m.Handler() != nil {
		t.Error("disabled metrics should have no handler")
	}
}

// TestEventPublisher tests async delivery to subscribers and flush on
// close.
func TestEventPublisher(t *testing.T) {
	p, err := NewEventPublisher(EventsConfig{Enabled: true, BufferSize: 16})
	if err != nil {
		t.Fatalf("failed to create publisher: %v", err)
	}

	got := make(chan Event, 16)
	p.Subscribe(func(e Event) { got <- e })

	sent := NewEvent(EventTypeSearchStarted, "test", "hello", map[string]interface{}{"dim": 3})
	p.Publish(sent)
	if err := p.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	select {
	case e := <-got:
		if e.Type != EventTypeSearchStarted || e.ID == "" {
			t.Errorf("unexpected event %+v", e)
		}
	default:
		t.Fatal("event not delivered before Close returned")
	}
}

// TestEventPublisherDisabled tests that a disabled publisher drops
// events silently.
func TestEventPublisherDisabled(t *testing.T) {
	p, err := NewEventPublisher(EventsConfig{Enabled: false})
	if err != nil {
		t.Fatalf("failed to create publisher: %v", err)
	}
	p.Publish(NewEvent(EventTypeSearchStarted, "test", "dropped", nil))
	if err := p.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

// TestLoggerContextRoundTrip tests logger context attachment.
func TestLoggerContextRoundTrip(t *testing.T) {
	tel := newTestTelemetry(t)
	defer tel.Shutdown(context.Background())

	ctx := tel.WithContext(context.Background())
	if FromContext(ctx) == nil {
		t.Fatal("logger not recoverable from context")
	}
	if FromTelemetryContext(ctx) != tel {
		t.Error("telemetry not recoverable from context")
	}
	if FromTelemetryContext(context.Background()) != nil {
		t.Error("empty context should yield nil telemetry")
	}
}
