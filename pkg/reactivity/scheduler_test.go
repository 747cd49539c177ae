package reactivity

import "testing"

// recordedOp captures one Track or Trigger report.
type recordedOp struct {
	op     Operation
	target any
	key    any
	change *Change
}

// recordingScheduler collects every report for assertions.
type recordingScheduler struct {
	tracks   []recordedOp
	triggers []recordedOp
}

func (r *recordingScheduler) Track(target any, op Operation, key any) {
	r.tracks = append(r.tracks, recordedOp{op: op, target: target, key: key})
}

func (r *recordingScheduler) Trigger(target any, op Operation, key any, change *Change) {
	r.triggers = append(r.triggers, recordedOp{op: op, target: target, key: key, change: change})
}

func (r *recordingScheduler) reset() {
	r.tracks = nil
	r.triggers = nil
}

// withScheduler installs a scheduler for the duration of the test.
func withScheduler(t *testing.T, s Scheduler) {
	t.Helper()
	SetScheduler(s)
	t.Cleanup(func() { SetScheduler(nil) })
}

// testRef is a minimal reference cell for ref-transparency tests.
type testRef struct {
	value any
}

func (r *testRef) RefValue() any         { return r.value }
func (r *testRef) SetRefValue(value any) { r.value = value }

// testListener counts MarkDirty calls.
type testListener struct {
	id    uint64
	dirty int
}

func newTestListener() *testListener {
	return &testListener{id: nextID()}
}

func (l *testListener) MarkDirty() { l.dirty++ }
func (l *testListener) ID() uint64 { return l.id }

func TestOperationString(t *testing.T) {
	cases := map[Operation]string{
		OpGet:     "get",
		OpHas:     "has",
		OpIterate: "iterate",
		OpAdd:     "add",
		OpSet:     "set",
		OpDelete:  "delete",
		OpClear:   "clear",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Operation(%d).String() = %q, want %q", op, got, want)
		}
	}
}

func TestNoSchedulerInstalled(t *testing.T) {
	SetScheduler(nil)

	o := NewObjectFrom(map[string]any{"a": 1})
	view := Reactive(o).(*View)

	// Reads and writes must work with no collaborator installed.
	if got := view.Get("a"); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
	if !view.Set("a", 2) {
		t.Error("expected write to succeed")
	}
}
