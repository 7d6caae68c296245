package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		args []any
		want bool
	}{
		{name: "health check", msg: "http request", args: []any{"method", "GET", "path", "/healthz"}, want: true},
		{name: "match listing", msg: "http request", args: []any{"path", "/v1/matches"}},
		{name: "other event", msg: "cricbuzz request failed", args: []any{"path", "/healthz"}},
		{name: "no path", msg: "http request", args: []any{"status", 200}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldSkipUptraceLog(tc.msg, tc.args); got != tc.want {
				t.Fatalf("shouldSkipUptraceLog = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"match_id", int64(42), 7, "orphan-key-value", "series", "IPL 2025", "payload"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "match_id" || attrs[0].Value.AsInt64() != 42 {
		t.Fatalf("unexpected match_id attribute: %v", attrs[0])
	}
	if attrs[1].Key != "arg_1" || attrs[1].Value.AsString() != "orphan-key-value" {
		t.Fatalf("unexpected positional attribute: %v", attrs[1])
	}
	if attrs[2].Key != "series" || attrs[2].Value.AsString() != "IPL 2025" {
		t.Fatalf("unexpected series attribute: %v", attrs[2])
	}
	if attrs[3].Key != "payload" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute: %v", attrs[3])
	}
}

func TestLogAttributes_RedactsSecrets(t *testing.T) {
	attrs := logAttributes([]any{"rapidapi_key", "secret-key", "uptrace_dsn", "https://token@api.uptrace.dev/1", "host", "cricbuzz-cricket.p.rapidapi.com"})
	if attrs[0].Value.AsString() != redactedLogValue {
		t.Fatalf("expected API key to be redacted, got %q", attrs[0].Value.AsString())
	}
	if attrs[1].Value.AsString() != redactedLogValue {
		t.Fatalf("expected DSN to be redacted, got %q", attrs[1].Value.AsString())
	}
	if attrs[2].Value.AsString() != "cricbuzz-cricket.p.rapidapi.com" {
		t.Fatalf("did not expect host to be redacted")
	}
}

func TestLogValue(t *testing.T) {
	if v := logValue(map[string]any{"runs": 180, "wickets": 6}); v.AsString() != `{"runs":180,"wickets":6}` {
		t.Fatalf("expected JSON text for composite value, got %q", v.AsString())
	}
	if v := logValue(errors.New("API error 500")); v.AsString() != "API error 500" {
		t.Fatalf("unexpected error value %q", v.AsString())
	}
	if v := logValue(1500 * time.Millisecond); v.AsString() != "1.5s" {
		t.Fatalf("unexpected duration value %q", v.AsString())
	}
	if v := logValue([]string{"CSK", "MI"}); v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 2 {
		t.Fatalf("expected slice value, got %s", v.Kind())
	}
	if v := logValue(nil); v.Kind() != otellog.KindEmpty {
		t.Fatalf("expected empty value for nil, got %s", v.Kind())
	}
}

func TestToOTelSeverity(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  otellog.Severity
	}{
		{level: logging.LevelDebug, want: otellog.SeverityDebug},
		{level: logging.LevelInfo, want: otellog.SeverityInfo},
		{level: logging.LevelWarn, want: otellog.SeverityWarn},
		{level: logging.LevelError, want: otellog.SeverityError},
	}
	for _, tc := range tests {
		if got := toOTelSeverity(tc.level); got != tc.want {
			t.Fatalf("toOTelSeverity(%s) = %v, want %v", tc.level, got, tc.want)
		}
	}
}
