package instrument

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ly2011/reactivity/pkg/reactivity"
)

// TracingScheduler wraps another Scheduler and records every trigger
// as a span on the configured tracer, in the style of a devtools
// operation timeline. Track reports are forwarded untraced; reads are
// far too frequent to span.
type TracingScheduler struct {
	next   reactivity.Scheduler
	tracer trace.Tracer
}

// NewTracingScheduler creates the decorator. The tracer should come
// from your OpenTelemetry TracerProvider; next may be nil.
func NewTracingScheduler(next reactivity.Scheduler, tracer trace.Tracer) *TracingScheduler {
	return &TracingScheduler{next: next, tracer: tracer}
}

// Track implements reactivity.Scheduler.
func (t *TracingScheduler) Track(target any, op reactivity.Operation, key any) {
	if t.next != nil {
		t.next.Track(target, op, key)
	}
}

// Trigger implements reactivity.Scheduler. The span covers the
// downstream scheduler's notification work.
func (t *TracingScheduler) Trigger(target any, op reactivity.Operation, key any, change *reactivity.Change) {
	attrs := []attribute.KeyValue{
		attribute.String("reactivity.op", op.String()),
		attribute.String("reactivity.key", fmt.Sprint(key)),
		attribute.String("reactivity.target", fmt.Sprintf("%T", target)),
	}
	if change != nil {
		attrs = append(attrs,
			attribute.String("reactivity.old_value", fmt.Sprint(change.OldValue)),
			attribute.String("reactivity.new_value", fmt.Sprint(change.NewValue)),
		)
	}

	_, span := t.tracer.Start(context.Background(), "reactivity.trigger",
		trace.WithAttributes(attrs...))
	defer span.End()

	if t.next != nil {
		t.next.Trigger(target, op, key, change)
	}
}

var _ reactivity.Scheduler = (*TracingScheduler)(nil)
