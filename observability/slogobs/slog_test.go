package slogobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rikhuijzer/transformrs/observability"
)

func TestObserverLogsWithAttributes(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelDebug))

	observer.Info(context.Background(), "request sent",
		observability.String("provider", "openai"),
		observability.Int("status", 200),
	)

	out := buf.String()
	if !strings.Contains(out, "request sent") {
		t.Errorf("expected message in output: %s", out)
	}
	if !strings.Contains(out, "provider=openai") {
		t.Errorf("expected provider attribute in output: %s", out)
	}
	if !strings.Contains(out, "status=200") {
		t.Errorf("expected status attribute in output: %s", out)
	}
}

func TestObserverLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelWarn))

	observer.Debug(context.Background(), "hidden")
	observer.Info(context.Background(), "also hidden")
	observer.Warn(context.Background(), "visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug and info records filtered: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("expected warn record: %s", out)
	}
}

func TestTraceIsBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelDebug))

	observer.Trace(context.Background(), "very detailed")
	if strings.Contains(buf.String(), "very detailed") {
		t.Errorf("trace records must be filtered at debug level: %s", buf.String())
	}

	buf.Reset()
	observer = New(WithOutput(&buf), WithLevel(LevelTrace))
	observer.Trace(context.Background(), "very detailed")
	if !strings.Contains(buf.String(), "very detailed") {
		t.Errorf("expected trace record at trace level: %s", buf.String())
	}
}

func TestSpanLifecycle(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelDebug))

	ctx, span := observer.StartSpan(context.Background(), "tts.synthesize",
		observability.String("provider", "deepinfra"))

	if observability.SpanFromContext(ctx) != span {
		t.Error("expected the span attached to the returned context")
	}

	span.AddEvent("http.response.received", observability.Int("http.status_code", 200))
	span.SetStatus(observability.StatusOK, "")
	span.End()

	out := buf.String()
	if !strings.Contains(out, "span.start") {
		t.Errorf("expected span.start event: %s", out)
	}
	if !strings.Contains(out, "http.response.received") {
		t.Errorf("expected the added event: %s", out)
	}
	if !strings.Contains(out, "span.end") {
		t.Errorf("expected span.end event: %s", out)
	}
	if !strings.Contains(out, "duration=") {
		t.Errorf("expected a duration on span end: %s", out)
	}
}

func TestSpanRecordError(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelDebug))

	_, span := observer.StartSpan(context.Background(), "chat.complete")
	span.RecordError(errors.New("connection refused"))

	if !strings.Contains(buf.String(), "connection refused") {
		t.Errorf("expected the error in output: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "ERROR") {
		t.Errorf("expected an error-level record: %s", buf.String())
	}
}

func TestWithJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithJSON())

	observer.Info(context.Background(), "hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected a JSON record: %s", buf.String())
	}
}

func TestWithLoggerOverrides(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	observer := New(WithLogger(logger), WithJSON())

	observer.Info(context.Background(), "hello")
	if strings.Contains(buf.String(), `"msg"`) {
		t.Errorf("WithLogger must win over the JSON option: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected the record through the provided logger: %s", buf.String())
	}
}
