package reactivity

import "testing"

func TestLazyNesting(t *testing.T) {
	nested := NewObjectFrom(map[string]any{"b": 1})
	o := NewObjectFrom(map[string]any{"a": nested})
	view := Reactive(o).(*View)

	if TargetDeps(nested) != nil {
		t.Fatal("expected the nested target to stay unwrapped until accessed")
	}

	got := view.Get("a")
	if !IsReactive(got) {
		t.Fatalf("expected a reactive view for the nested target, got %T", got)
	}
	if got == any(nested) {
		t.Error("expected the nested read to return a view, not the raw target")
	}
	if got.(*View).Get("b") != 1 {
		t.Error("expected the nested view to read through")
	}

	// Repeated access yields the memoized nested view.
	if view.Get("a") != got {
		t.Error("expected the same nested view on repeated access")
	}
}

func TestWriteClassification(t *testing.T) {
	rec := &recordingScheduler{}
	withScheduler(t, rec)

	o := NewObject()
	view := Reactive(o).(*View)

	view.Set("x", 1)
	if len(rec.triggers) != 1 || rec.triggers[0].op != OpAdd || rec.triggers[0].key != any("x") {
		t.Fatalf("expected one ADD for a new key, got %+v", rec.triggers)
	}

	rec.reset()
	view.Set("x", 2)
	if len(rec.triggers) != 1 || rec.triggers[0].op != OpSet {
		t.Fatalf("expected one SET for a changed value, got %+v", rec.triggers)
	}

	rec.reset()
	view.Set("x", 2)
	if len(rec.triggers) != 0 {
		t.Fatalf("expected no report for a same-value write, got %+v", rec.triggers)
	}

	rec.reset()
	view.Delete("missing")
	if len(rec.triggers) != 0 {
		t.Fatalf("expected no report for deleting an absent key, got %+v", rec.triggers)
	}

	view.Delete("x")
	if len(rec.triggers) != 1 || rec.triggers[0].op != OpDelete {
		t.Fatalf("expected one DELETE for a present key, got %+v", rec.triggers)
	}
	if view.Has("x") {
		t.Error("expected the key to be gone after delete")
	}
}

func TestReadOperationsTrack(t *testing.T) {
	rec := &recordingScheduler{}
	withScheduler(t, rec)

	o := NewObjectFrom(map[string]any{"a": 1})
	view := Reactive(o).(*View)

	view.Get("a")
	view.Has("a")
	view.Keys()
	view.Len()

	wantOps := []Operation{OpGet, OpHas, OpIterate, OpIterate}
	if len(rec.tracks) != len(wantOps) {
		t.Fatalf("expected %d track reports, got %d", len(wantOps), len(rec.tracks))
	}
	for i, want := range wantOps {
		if rec.tracks[i].op != want {
			t.Errorf("track %d: got %v, want %v", i, rec.tracks[i].op, want)
		}
	}
	if rec.tracks[2].key != nil {
		t.Error("expected ITERATE to carry no specific key")
	}
}

func TestBuiltinSymbolsBypassTracking(t *testing.T) {
	rec := &recordingScheduler{}
	withScheduler(t, rec)

	o := NewObjectFrom(map[string]any{"a": 1})
	view := Reactive(o).(*View)

	if got := view.Get(SymIterator); got != nil {
		t.Errorf("expected nil for an unset protocol key, got %v", got)
	}
	if len(rec.tracks) != 0 {
		t.Errorf("expected no tracking for protocol keys, got %+v", rec.tracks)
	}
}

func TestRefTransparency(t *testing.T) {
	rec := &recordingScheduler{}
	withScheduler(t, rec)

	cell := &testRef{value: 1}
	o := NewObjectFrom(map[string]any{"x": cell})
	view := Reactive(o).(*View)

	if got := view.Get("x"); got != 1 {
		t.Errorf("expected the ref to auto-unwrap on read, got %v", got)
	}
	if len(rec.tracks) != 0 {
		t.Errorf("expected the ref read to skip tracking, got %+v", rec.tracks)
	}

	if !view.Set("x", 2) {
		t.Fatal("expected the ref write to succeed")
	}
	if cell.value != 2 {
		t.Errorf("expected the write to land in the cell, got %v", cell.value)
	}
	if raw, _ := o.rawGet("x"); raw != any(cell) {
		t.Error("expected the slot to still hold the cell")
	}
	if len(rec.triggers) != 0 {
		t.Errorf("expected no generic write report for a cell update, got %+v", rec.triggers)
	}

	// A ref replacing a ref goes through the default write path.
	replacement := &testRef{value: 3}
	view.Set("x", replacement)
	if raw, _ := o.rawGet("x"); raw != any(replacement) {
		t.Error("expected an incoming ref to replace the stored cell")
	}
	if len(rec.triggers) != 1 || rec.triggers[0].op != OpSet {
		t.Errorf("expected a SET for the cell replacement, got %+v", rec.triggers)
	}
}

func TestSetUnwrapsViewValues(t *testing.T) {
	inner := NewObjectFrom(map[string]any{"b": 1})
	innerView := Reactive(inner)

	o := NewObject()
	view := Reactive(o).(*View)
	view.Set("a", innerView)

	if raw, _ := o.rawGet("a"); raw != any(Target(inner)) {
		t.Errorf("expected the stored value to be the raw target, got %T", raw)
	}
}

func TestListOperations(t *testing.T) {
	rec := &recordingScheduler{}
	withScheduler(t, rec)

	l := NewList("a", "b")
	view := Reactive(l).(*View)

	if got := view.Get(0); got != "a" {
		t.Errorf("expected index 0 to read through, got %v", got)
	}

	rec.reset()
	if !view.Append("c") {
		t.Fatal("expected append to succeed")
	}
	if len(rec.triggers) != 1 || rec.triggers[0].op != OpAdd || rec.triggers[0].key != any(2) {
		t.Fatalf("expected an ADD keyed by the new index, got %+v", rec.triggers)
	}

	rec.reset()
	view.Set(0, "z")
	if len(rec.triggers) != 1 || rec.triggers[0].op != OpSet {
		t.Fatalf("expected a SET for an in-range write, got %+v", rec.triggers)
	}

	rec.reset()
	view.Delete(1)
	if len(rec.triggers) != 1 || rec.triggers[0].op != OpDelete {
		t.Fatalf("expected a DELETE, got %+v", rec.triggers)
	}
	if view.Has(1) {
		t.Error("expected the deleted index to report absent")
	}

	// Out-of-range writes fail without a report.
	rec.reset()
	if view.Set(10, "x") {
		t.Error("expected an out-of-range write to fail")
	}
	if len(rec.triggers) != 0 {
		t.Errorf("expected no report for a failed write, got %+v", rec.triggers)
	}
}

func TestNonComparableValuesAlwaysCountAsChanged(t *testing.T) {
	rec := &recordingScheduler{}
	withScheduler(t, rec)

	o := NewObject()
	view := Reactive(o).(*View)

	s := []int{1, 2}
	view.Set("s", s)
	view.Set("s", s)

	// One ADD, then one SET: slice values can never be identity-equal.
	if len(rec.triggers) != 2 || rec.triggers[1].op != OpSet {
		t.Fatalf("expected the repeated slice write to report SET, got %+v", rec.triggers)
	}
}

func TestDevModeChangePayload(t *testing.T) {
	rec := &recordingScheduler{}
	withScheduler(t, rec)

	DevMode = true
	t.Cleanup(func() { DevMode = false })

	o := NewObjectFrom(map[string]any{"a": 1})
	view := Reactive(o).(*View)
	view.Set("a", 2)

	if len(rec.triggers) != 1 {
		t.Fatalf("expected one trigger, got %d", len(rec.triggers))
	}
	change := rec.triggers[0].change
	if change == nil || change.OldValue != 1 || change.NewValue != 2 {
		t.Errorf("expected a populated change payload in dev mode, got %+v", change)
	}
}

func TestProductionOmitsChangePayload(t *testing.T) {
	rec := &recordingScheduler{}
	withScheduler(t, rec)

	o := NewObjectFrom(map[string]any{"a": 1})
	view := Reactive(o).(*View)
	view.Set("a", 2)

	if rec.triggers[0].change != nil {
		t.Error("expected no change payload outside dev mode")
	}
}

func TestSameValue(t *testing.T) {
	if !sameValue(1, 1) || sameValue(1, 2) {
		t.Error("int identity broken")
	}
	if !sameValue(nil, nil) {
		t.Error("expected nil to equal nil")
	}
	if sameValue(nil, 1) || sameValue(1, "1") {
		t.Error("expected different types to differ")
	}
	if sameValue([]int{1}, []int{1}) {
		t.Error("expected non-comparable values to always differ")
	}
}
