package reactivity

import (
	"fmt"
	"reflect"
)

// Trap tables for records and sequences. The read-only set shares the
// read traps and guards the write traps behind the package write lock.
// Populated in init: the get traps recurse into the view factory,
// which selects among these same tables, so var initializers here
// would form an initialization cycle.
var (
	mutableHandlers  *handlerSet
	readonlyHandlers *handlerSet
)

func init() {
	mutableHandlers = &handlerSet{
		get:       makeGetter(ViewReactive),
		set:       baseSet,
		deleteKey: baseDelete,
		has:       baseHas,
		keys:      baseKeys,
		size:      baseSize,
	}

	readonlyHandlers = &handlerSet{
		get:       makeGetter(ViewReadonly),
		set:       guardedSet(baseSet),
		deleteKey: guardedDelete(baseDelete),
		has:       baseHas,
		keys:      baseKeys,
		size:      baseSize,
	}
}

// makeGetter builds the get trap for one view kind; the kind decides
// which factory nested targets recurse through.
func makeGetter(kind ViewKind) func(*View, any) any {
	return func(v *View, key any) any {
		if isBuiltinSymbol(key) {
			// Protocol keys bypass tracking entirely.
			res, _ := v.raw.rawGet(key)
			return res
		}
		res, _ := v.raw.rawGet(key)
		if r, ok := res.(Ref); ok {
			// Auto-unwrap; the cell's own read path handles tracking.
			return r.RefValue()
		}
		track(v.raw, OpGet, key)
		return wrapNested(res, kind)
	}
}

// wrapNested lazily wraps target-valued results in the view's kind.
// Everything else passes through.
func wrapNested(res any, kind ViewKind) any {
	if _, ok := res.(Target); !ok {
		return res
	}
	if kind == ViewReadonly {
		return Readonly(res)
	}
	return Reactive(res)
}

func baseSet(v *View, key, value any) bool {
	target := v.raw
	value = ToRaw(value)

	oldValue, _ := target.rawGet(key)
	if r, ok := oldValue.(Ref); ok && !IsRef(value) {
		// Write into the cell; its own update path notifies.
		r.SetRefValue(value)
		return true
	}

	hadKey := target.rawHas(key)
	if !target.rawSet(key, value) {
		return false
	}

	if !hadKey {
		trigger(target, OpAdd, key, changeFor(nil, value))
	} else if !sameValue(oldValue, value) {
		trigger(target, OpSet, key, changeFor(oldValue, value))
	}
	return true
}

func baseDelete(v *View, key any) bool {
	target := v.raw
	hadKey := target.rawHas(key)
	oldValue, _ := target.rawGet(key)

	if !target.rawDelete(key) {
		return false
	}

	if hadKey {
		trigger(target, OpDelete, key, changeFor(oldValue, nil))
	}
	return true
}

func baseHas(v *View, key any) bool {
	result := v.raw.rawHas(key)
	track(v.raw, OpHas, key)
	return result
}

func baseKeys(v *View) []any {
	// Enumeration depends on the whole key set, so no specific key.
	track(v.raw, OpIterate, nil)
	return v.raw.rawKeys()
}

func baseSize(v *View) int {
	track(v.raw, OpIterate, nil)
	return v.raw.rawLen()
}

// guardedSet wraps a set trap with the read-only write lock: while the
// lock is engaged the mutation is refused, but success is still
// reported so destructuring-style callers do not fail.
func guardedSet(next func(*View, any, any) bool) func(*View, any, any) bool {
	return func(v *View, key, value any) bool {
		if writeLocked {
			devWarn("set operation failed: target is readonly",
				"key", fmt.Sprint(key), "target", v.raw.Kind().String())
			return true
		}
		return next(v, key, value)
	}
}

// guardedDelete is guardedSet for the delete trap.
func guardedDelete(next func(*View, any) bool) func(*View, any) bool {
	return func(v *View, key any) bool {
		if writeLocked {
			devWarn("delete operation failed: target is readonly",
				"key", fmt.Sprint(key), "target", v.raw.Kind().String())
			return true
		}
		return next(v, key)
	}
}

// sameValue is the strict-identity change check: values of the same
// comparable dynamic type compare with ==, anything else always counts
// as changed so a notification is never wrongly suppressed. Structural
// equality is deliberately not used; the no-report path for same-value
// writes is observable behavior.
func sameValue(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}
