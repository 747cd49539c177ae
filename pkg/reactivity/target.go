package reactivity

import "sync/atomic"

// idSeq issues the identity numbers carried by targets and views.
var idSeq atomic.Uint64

func nextID() uint64 { return idSeq.Add(1) }

// Kind is the structural type tag of a target, determined once at
// construction.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindObject       // plain string-keyed record
	KindList         // integer-indexed sequence
	KindDict         // keyed map
	KindSet          // keyed set
	KindWeakDict     // weak-keyed map variant
	KindWeakSet      // weak-keyed set variant
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindList:
		return "List"
	case KindDict:
		return "Dict"
	case KindSet:
		return "Set"
	case KindWeakDict:
		return "WeakDict"
	case KindWeakSet:
		return "WeakSet"
	default:
		return "Invalid"
	}
}

// isCollection reports whether the kind takes the keyed-collection
// handler set instead of the base handler set.
func (k Kind) isCollection() bool {
	switch k {
	case KindDict, KindSet, KindWeakDict, KindWeakSet:
		return true
	default:
		return false
	}
}

// Target is a value the view factory can wrap. Identity is pointer
// identity. The set of implementations is closed: Object, List, Dict,
// and KeySet.
type Target interface {
	// Kind returns the structural type tag.
	Kind() Kind

	meta() *targetMeta

	rawGet(key any) (any, bool)
	rawSet(key, value any) bool
	rawDelete(key any) bool
	rawHas(key any) bool
	rawKeys() []any
	rawLen() int
}

// targetMeta is the per-target cell backing the identity registry: the
// memoized view for each kind, the explicit markers, and the
// dependency slot shared with the scheduler. A target and its cell
// have the same lifetime, so registry entries can never outlive or
// retain the target.
type targetMeta struct {
	id uint64

	// Canonical views, at most one per kind.
	reactive *View
	readonly *View

	// Explicit markers, settable before the first wrap.
	forceReadonly bool
	skip          bool

	// deps is the per-property dependency slot, created empty the
	// first time the target is wrapped. The scheduler populates and
	// consumes its contents.
	deps DepMap
}
