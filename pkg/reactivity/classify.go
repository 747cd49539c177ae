package reactivity

// RuntimeNodeCheck is an escape hatch for an embedding UI runtime:
// when set, values it reports true for are never made observable. The
// runtime uses it to keep its internal node and instance types out of
// the reactive graph. Set at startup, before any wrapping.
var RuntimeNodeCheck func(value any) bool

// canObserve decides whether value is eligible for wrapping: it must
// be one of the structural container types, not marked non-reactive,
// and not claimed by RuntimeNodeCheck. Pure and cheap; it runs on
// every wrap attempt.
func canObserve(value any) bool {
	t, ok := value.(Target)
	if !ok {
		return false
	}
	if t.meta().skip {
		return false
	}
	if RuntimeNodeCheck != nil && RuntimeNodeCheck(value) {
		return false
	}
	return t.Kind() != KindInvalid
}
