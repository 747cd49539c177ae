package reactivity

// The identity registry links raw targets to their wrapped views and
// back, one association per view kind. It is realized as the per-target
// metadata cell plus the view's own raw reference: a view holds its
// target strongly, a target holds its views, so both sides expire
// together and the registry retains nothing globally.

// ToRaw returns the raw target behind a view. Returns x unchanged when
// x is not a known view.
func ToRaw(x any) any {
	if v, ok := x.(*View); ok {
		return v.raw
	}
	return x
}

// IsReactive reports whether x is a mutable reactive view.
func IsReactive(x any) bool {
	v, ok := x.(*View)
	return ok && v.kind == ViewReactive
}

// IsReadonly reports whether x is a read-only view.
func IsReadonly(x any) bool {
	v, ok := x.(*View)
	return ok && v.kind == ViewReadonly
}

// MarkReadonly tags target so future Reactive calls redirect to
// Readonly. Only meaningful before the target's first wrap.
// Returns target.
func MarkReadonly(target any) any {
	if t, ok := target.(Target); ok {
		t.meta().forceReadonly = true
	}
	return target
}

// MarkNonReactive tags target as permanently unobservable: the
// classifier will reject it on every wrap attempt. Returns target.
func MarkNonReactive(target any) any {
	if t, ok := target.(Target); ok {
		t.meta().skip = true
	}
	return target
}

// TargetDeps returns the dependency slot for target, or nil if the
// target has never been wrapped. Accepts a view or a raw target. The
// slot is shared with the scheduler, which populates and consumes it.
func TargetDeps(target any) DepMap {
	if t, ok := ToRaw(target).(Target); ok {
		return t.meta().deps
	}
	return nil
}

// DepFor returns the dependency entry for (target, key), creating the
// entry on first use. Returns nil when the target has no slot, i.e.
// observation never began for it.
func DepFor(target, key any) *Dep {
	t, ok := ToRaw(target).(Target)
	if !ok {
		return nil
	}
	m := t.meta()
	if m.deps == nil {
		return nil
	}
	d := m.deps[key]
	if d == nil {
		d = &Dep{}
		m.deps[key] = d
	}
	return d
}
