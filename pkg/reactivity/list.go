package reactivity

// List is an integer-indexed sequence target. Keys are indices in
// [0, len]; setting the key equal to the current length appends.
// Deleting an index leaves a nil hole so other index keys stay stable
// for dependency tracking.
type List struct {
	tm   targetMeta
	data []any
}

// NewList creates a sequence seeded with the given items.
func NewList(items ...any) *List {
	l := &List{tm: targetMeta{id: nextID()}}
	l.data = append(l.data, items...)
	return l
}

// Kind implements Target.
func (l *List) Kind() Kind { return KindList }

func (l *List) meta() *targetMeta { return &l.tm }

func (l *List) rawGet(key any) (any, bool) {
	i, ok := key.(int)
	if !ok || i < 0 || i >= len(l.data) {
		return nil, false
	}
	return l.data[i], true
}

func (l *List) rawSet(key, value any) bool {
	i, ok := key.(int)
	if !ok || i < 0 || i > len(l.data) {
		return false
	}
	if i == len(l.data) {
		l.data = append(l.data, value)
		return true
	}
	l.data[i] = value
	return true
}

func (l *List) rawDelete(key any) bool {
	i, ok := key.(int)
	if !ok || i < 0 || i >= len(l.data) {
		return false
	}
	l.data[i] = nil
	return true
}

func (l *List) rawHas(key any) bool {
	i, ok := key.(int)
	return ok && i >= 0 && i < len(l.data) && l.data[i] != nil
}

func (l *List) rawKeys() []any {
	keys := make([]any, 0, len(l.data))
	for i := range l.data {
		if l.data[i] != nil {
			keys = append(keys, i)
		}
	}
	return keys
}

func (l *List) rawLen() int { return len(l.data) }
