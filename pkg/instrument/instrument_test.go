package instrument

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ly2011/reactivity/pkg/reactivity"
)

type call struct {
	track bool
	op    reactivity.Operation
	key   any
}

type recordingScheduler struct {
	calls []call
}

func (r *recordingScheduler) Track(_ any, op reactivity.Operation, key any) {
	r.calls = append(r.calls, call{track: true, op: op, key: key})
}

func (r *recordingScheduler) Trigger(_ any, op reactivity.Operation, key any, _ *reactivity.Change) {
	r.calls = append(r.calls, call{op: op, key: key})
}

func TestMetricsSchedulerCounts(t *testing.T) {
	next := &recordingScheduler{}
	m := NewMetricsScheduler(next, WithRegistry(prometheus.NewRegistry()))

	target := reactivity.NewObject()
	m.Track(target, reactivity.OpGet, "a")
	m.Track(target, reactivity.OpGet, "b")
	m.Track(target, reactivity.OpIterate, nil)
	m.Trigger(target, reactivity.OpSet, "a", nil)

	if got := testutil.ToFloat64(m.tracks.WithLabelValues("get")); got != 2 {
		t.Errorf("expected 2 GET tracks, got %v", got)
	}
	if got := testutil.ToFloat64(m.tracks.WithLabelValues("iterate")); got != 1 {
		t.Errorf("expected 1 ITERATE track, got %v", got)
	}
	if got := testutil.ToFloat64(m.triggers.WithLabelValues("set")); got != 1 {
		t.Errorf("expected 1 SET trigger, got %v", got)
	}

	if len(next.calls) != 4 {
		t.Fatalf("expected all 4 reports forwarded, got %d", len(next.calls))
	}
	if next.calls[3].track || next.calls[3].op != reactivity.OpSet {
		t.Errorf("expected the last forwarded call to be the SET trigger, got %+v", next.calls[3])
	}
}

func TestMetricsSchedulerNilNext(t *testing.T) {
	m := NewMetricsScheduler(nil, WithRegistry(prometheus.NewRegistry()))

	target := reactivity.NewObject()
	m.Track(target, reactivity.OpHas, "a")
	m.Trigger(target, reactivity.OpDelete, "a", nil)

	if got := testutil.ToFloat64(m.tracks.WithLabelValues("has")); got != 1 {
		t.Errorf("expected 1 HAS track, got %v", got)
	}
}

func TestMetricsSchedulerOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsScheduler(nil,
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("state"),
		WithConstLabels(prometheus.Labels{"store": "main"}),
	)

	m.Track(reactivity.NewObject(), reactivity.OpGet, "a")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "app_state_tracks_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected metric app_state_tracks_total to be registered")
	}
}

func TestTracingSchedulerForwards(t *testing.T) {
	next := &recordingScheduler{}
	tracer := noop.NewTracerProvider().Tracer("test")
	s := NewTracingScheduler(next, tracer)

	target := reactivity.NewObject()
	s.Track(target, reactivity.OpGet, "a")
	s.Trigger(target, reactivity.OpSet, "a", &reactivity.Change{OldValue: 1, NewValue: 2})
	s.Trigger(target, reactivity.OpClear, nil, nil)

	if len(next.calls) != 3 {
		t.Fatalf("expected 3 forwarded calls, got %d", len(next.calls))
	}
	if !next.calls[0].track || next.calls[0].op != reactivity.OpGet {
		t.Errorf("expected first call to be a GET track, got %+v", next.calls[0])
	}
	if next.calls[2].op != reactivity.OpClear {
		t.Errorf("expected last call to be a CLEAR trigger, got %+v", next.calls[2])
	}
}

func TestTracingSchedulerNilNext(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	s := NewTracingScheduler(nil, tracer)

	// Must not panic without a downstream scheduler.
	s.Track(reactivity.NewObject(), reactivity.OpGet, "a")
	s.Trigger(reactivity.NewObject(), reactivity.OpSet, "a", nil)
}
