package reactivity

import "fmt"

// Trap tables for keyed collections (Dict, KeySet, and their weak
// variants). Keys and values arriving from callers are unwrapped to
// raw before touching storage so views never leak into a collection.
// Populated in init for the same reason as the base tables.
var (
	mutableCollectionHandlers  *handlerSet
	readonlyCollectionHandlers *handlerSet
)

func init() {
	mutableCollectionHandlers = &handlerSet{
		get:       makeCollectionGetter(ViewReactive),
		set:       collectionSet,
		deleteKey: collectionDelete,
		has:       collectionHas,
		keys:      collectionKeys,
		size:      collectionSize,
		add:       collectionAdd,
		clear:     collectionClear,
		forEach:   makeCollectionForEach(ViewReactive),
	}

	readonlyCollectionHandlers = &handlerSet{
		get:       makeCollectionGetter(ViewReadonly),
		set:       guardedSet(collectionSet),
		deleteKey: guardedDelete(collectionDelete),
		has:       collectionHas,
		keys:      collectionKeys,
		size:      collectionSize,
		add:       guardedAdd(collectionAdd),
		clear:     guardedClear(collectionClear),
		forEach:   makeCollectionForEach(ViewReadonly),
	}
}

func makeCollectionGetter(kind ViewKind) func(*View, any) any {
	return func(v *View, key any) any {
		key = ToRaw(key)
		res, _ := v.raw.rawGet(key)
		track(v.raw, OpGet, key)
		return wrapNested(res, kind)
	}
}

func collectionHas(v *View, key any) bool {
	key = ToRaw(key)
	result := v.raw.rawHas(key)
	track(v.raw, OpHas, key)
	return result
}

func collectionSet(v *View, key, value any) bool {
	target := v.raw
	key, value = ToRaw(key), ToRaw(value)

	hadKey := target.rawHas(key)
	oldValue, _ := target.rawGet(key)
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

func collectionAdd(v *View, value any) bool {
	target := v.raw
	value = ToRaw(value)

	if target.rawHas(value) {
		return true
	}
	if !target.rawSet(value, value) {
		return false
	}
	trigger(target, OpAdd, value, changeFor(nil, value))
	return true
}

func collectionDelete(v *View, key any) bool {
	target := v.raw
	key = ToRaw(key)

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

func collectionClear(v *View) {
	target := v.raw
	if target.rawLen() == 0 {
		return
	}

	var change *Change
	if DevMode {
		change = &Change{OldValue: collectionEntries(target)}
	}

	for _, k := range target.rawKeys() {
		target.rawDelete(k)
	}
	trigger(target, OpClear, nil, change)
}

func collectionKeys(v *View) []any {
	track(v.raw, OpIterate, nil)
	return v.raw.rawKeys()
}

func collectionSize(v *View) int {
	track(v.raw, OpIterate, nil)
	return v.raw.rawLen()
}

func makeCollectionForEach(kind ViewKind) func(*View, func(value, key any)) {
	return func(v *View, fn func(value, key any)) {
		track(v.raw, OpIterate, nil)
		for _, k := range v.raw.rawKeys() {
			val, _ := v.raw.rawGet(k)
			fn(wrapNested(val, kind), wrapNested(k, kind))
		}
	}
}

// guardedAdd and guardedClear extend the read-only write lock to the
// collection-only traps.
func guardedAdd(next func(*View, any) bool) func(*View, any) bool {
	return func(v *View, value any) bool {
		if writeLocked {
			devWarn("add operation failed: target is readonly",
				"value", fmt.Sprint(value), "target", v.raw.Kind().String())
			return true
		}
		return next(v, value)
	}
}

func guardedClear(next func(*View)) func(*View) {
	return func(v *View) {
		if writeLocked {
			devWarn("clear operation failed: target is readonly",
				"target", v.raw.Kind().String())
			return
		}
		next(v)
	}
}

// collectionEntries snapshots a collection's contents for the
// development-mode CLEAR payload.
func collectionEntries(target Target) map[any]any {
	entries := make(map[any]any, target.rawLen())
	for _, k := range target.rawKeys() {
		val, _ := target.rawGet(k)
		entries[k] = val
	}
	return entries
}
