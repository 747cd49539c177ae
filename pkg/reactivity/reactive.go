package reactivity

import "fmt"

// Reactive returns the canonical mutable view of target, creating and
// memoizing it on first access. Values that are not observable pass
// through unchanged, so wrapping a primitive is a no-op.
//
// A read-only view passed in is returned as is: it is never upgraded
// to mutable. A target carrying the read-only marker redirects to
// Readonly.
func Reactive(target any) any {
	if v, ok := target.(*View); ok {
		// Covers both the read-only precedence rule and the case of a
		// view arriving where a raw target was expected.
		return v
	}
	t, ok := target.(Target)
	if !ok {
		devWarn("value cannot be made reactive", "value", fmt.Sprintf("%T(%v)", target, target))
		return target
	}
	if t.meta().forceReadonly {
		return Readonly(target)
	}
	return createView(t, ViewReactive)
}

// Readonly returns the canonical read-only view of target. A mutable
// view is first unwrapped to its raw target, so read-only views are
// always keyed by the underlying target, never by another view.
func Readonly(target any) any {
	if v, ok := target.(*View); ok {
		if v.kind == ViewReadonly {
			return v
		}
		target = v.raw
	}
	t, ok := target.(Target)
	if !ok {
		devWarn("value cannot be made readonly", "value", fmt.Sprintf("%T(%v)", target, target))
		return target
	}
	return createView(t, ViewReadonly)
}

// createView is the shared factory behind Reactive and Readonly:
// memoization, classification, handler selection, registration, and
// dependency-slot initialization. Creation is idempotent; repeated or
// re-entrant calls for the same target and kind observe the cached
// view after the first successful creation, which also terminates
// recursive wrapping of cyclic graphs.
func createView(t Target, kind ViewKind) any {
	m := t.meta()
	if kind == ViewReactive {
		if m.reactive != nil {
			return m.reactive
		}
	} else if m.readonly != nil {
		return m.readonly
	}

	if !canObserve(t) {
		return t
	}

	h := handlersFor(t.Kind(), kind)
	v := &View{id: nextID(), raw: t, kind: kind, h: h}

	if kind == ViewReactive {
		m.reactive = v
	} else {
		m.readonly = v
	}

	// Observation begins here: guarantee the dependency slot exists
	// for the scheduler.
	if m.deps == nil {
		m.deps = make(DepMap)
	}

	return v
}

// handlersFor selects the trap table for a target kind and view kind.
func handlersFor(k Kind, kind ViewKind) *handlerSet {
	if k.isCollection() {
		if kind == ViewReadonly {
			return readonlyCollectionHandlers
		}
		return mutableCollectionHandlers
	}
	if kind == ViewReadonly {
		return readonlyHandlers
	}
	return mutableHandlers
}
