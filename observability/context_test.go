package observability

import (
	"context"
	"testing"
)

type noopSpan struct{}

func (noopSpan) End()                                {}
func (noopSpan) SetAttributes(attrs ...Attribute)    {}
func (noopSpan) SetStatus(code StatusCode, d string) {}
func (noopSpan) RecordError(err error)               {}
func (noopSpan) AddEvent(name string, attrs ...Attribute) {
}

type noopObserver struct{ noopSpan }

func (o noopObserver) StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}
func (noopObserver) Trace(ctx context.Context, msg string, attrs ...Attribute) {}
func (noopObserver) Debug(ctx context.Context, msg string, attrs ...Attribute) {}
func (noopObserver) Info(ctx context.Context, msg string, attrs ...Attribute)  {}
func (noopObserver) Warn(ctx context.Context, msg string, attrs ...Attribute)  {}
func (noopObserver) Error(ctx context.Context, msg string, attrs ...Attribute) {}

func TestSpanContextRoundTrip(t *testing.T) {
	if SpanFromContext(context.Background()) != nil {
		t.Error("expected nil span on an empty context")
	}

	span := noopSpan{}
	ctx := ContextWithSpan(context.Background(), span)
	if SpanFromContext(ctx) != span {
		t.Error("expected the attached span back")
	}
}

func TestObserverContextRoundTrip(t *testing.T) {
	if ObserverFromContext(context.Background()) != nil {
		t.Error("expected nil observer on an empty context")
	}

	obs := noopObserver{}
	ctx := ContextWithObserver(context.Background(), obs)
	if ObserverFromContext(ctx) != obs {
		t.Error("expected the attached observer back")
	}
}

func TestNilContextIsSafe(t *testing.T) {
	if SpanFromContext(nil) != nil {
		t.Error("expected nil span for nil context")
	}
	if ObserverFromContext(nil) != nil {
		t.Error("expected nil observer for nil context")
	}
}
