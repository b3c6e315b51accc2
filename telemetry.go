package dub

import (
	"context"
	"net/http"
	"time"
)

// TelemetryHooks receive every exchange the client makes with the Dub API.
// All hooks are optional; Config.Logger covers plain structured logging, so
// these are for callers that feed their own tracing or metrics pipeline.
type TelemetryHooks struct {
	// OnHTTPRequest sees the request after auth, workspace scope and
	// X-Request-Id have been applied.
	OnHTTPRequest func(ctx context.Context, req *http.Request)
	// OnHTTPResponse fires once per call; resp is nil when err is a transport error.
	OnHTTPResponse func(ctx context.Context, req *http.Request, resp *http.Response, err error, latency time.Duration)
	OnLogEntry     func(ctx context.Context, entry LogEntry)
	// OnMetric currently receives sdk_http_request_latency_ms, labelled by path.
	OnMetric func(ctx context.Context, metric Metric)
}

// LogLevel is the severity of a LogEntry.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
)

// LogEntry is one client event: http_request or http_error, with method,
// url and request_id fields.
type LogEntry struct {
	Level   LogLevel
	Message string
	Fields  map[string]any
}

// Metric is a single datapoint.
type Metric struct {
	Name   string
	Value  float64
	Labels map[string]string
}

func (t TelemetryHooks) log(ctx context.Context, level LogLevel, msg string, fields map[string]any) {
	if t.OnLogEntry != nil {
		t.OnLogEntry(ctx, LogEntry{Level: level, Message: msg, Fields: fields})
	}
}

func (t TelemetryHooks) metric(ctx context.Context, name string, value float64, labels map[string]string) {
	if t.OnMetric != nil {
		t.OnMetric(ctx, Metric{Name: name, Value: value, Labels: labels})
	}
}
