package reactivity

// ViewKind distinguishes the two parallel view families.
type ViewKind uint8

const (
	ViewReactive ViewKind = iota + 1
	ViewReadonly
)

// View is the intercepting wrapper over exactly one target. Every
// method on the accessor surface routes through the installed trap
// table, which reports reads and writes to the scheduler and lazily
// wraps nested targets in the view's own kind.
//
// Views are created only by Reactive and Readonly, at most once per
// (target, kind) pair.
type View struct {
	id   uint64
	raw  Target
	kind ViewKind
	h    *handlerSet
}

// Raw returns the wrapped target.
func (v *View) Raw() Target { return v.raw }

// Get reads key through the get trap.
func (v *View) Get(key any) any {
	return v.h.get(v, key)
}

// Set writes key through the set trap and returns the write's success
// indication. On a locked read-only view the mutation is silently
// refused but success is still reported, so callers relying on
// successful-looking writes do not fail.
func (v *View) Set(key, value any) bool {
	return v.h.set(v, key, value)
}

// Delete removes key through the delete trap.
func (v *View) Delete(key any) bool {
	return v.h.deleteKey(v, key)
}

// Has reports key existence through the has trap.
func (v *View) Has(key any) bool {
	return v.h.has(v, key)
}

// Keys enumerates own keys through the ownKeys trap.
func (v *View) Keys() []any {
	return v.h.keys(v)
}

// Len reports the element count through the size trap.
func (v *View) Len() int {
	return v.h.size(v)
}

// Append pushes value onto a sequence target by writing the key one
// past the current end. Reported as an ADD.
func (v *View) Append(value any) bool {
	return v.h.set(v, v.raw.rawLen(), value)
}

// Add inserts value into a keyed-set target. No-op on targets without
// the collection handler set.
func (v *View) Add(value any) bool {
	if v.h.add == nil {
		return false
	}
	return v.h.add(v, value)
}

// Clear wipes a keyed collection. No-op on targets without the
// collection handler set.
func (v *View) Clear() {
	if v.h.clear != nil {
		v.h.clear(v)
	}
}

// ForEach visits every entry of a keyed collection, wrapping members
// the way the get trap does. No-op on targets without the collection
// handler set.
func (v *View) ForEach(fn func(value, key any)) {
	if v.h.forEach != nil {
		v.h.forEach(v, fn)
	}
}

// handlerSet is the trap table installed on a view. The base set
// covers records and sequences; keyed collections get a variant set,
// and each comes in a mutable and a read-only flavor.
type handlerSet struct {
	get       func(v *View, key any) any
	set       func(v *View, key, value any) bool
	deleteKey func(v *View, key any) bool
	has       func(v *View, key any) bool
	keys      func(v *View) []any
	size      func(v *View) int

	// Collection-only traps; nil in the base sets.
	add     func(v *View, value any) bool
	clear   func(v *View)
	forEach func(v *View, fn func(value, key any))
}
