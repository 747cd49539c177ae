package reactivity

import "sort"

// Object is a plain string-keyed record target.
type Object struct {
	tm   targetMeta
	data map[string]any
}

// NewObject creates an empty record.
func NewObject() *Object {
	return &Object{
		tm:   targetMeta{id: nextID()},
		data: make(map[string]any),
	}
}

// NewObjectFrom creates a record seeded with the given entries.
func NewObjectFrom(entries map[string]any) *Object {
	o := NewObject()
	for k, v := range entries {
		o.data[k] = v
	}
	return o
}

// Kind implements Target.
func (o *Object) Kind() Kind { return KindObject }

func (o *Object) meta() *targetMeta { return &o.tm }

func (o *Object) rawGet(key any) (any, bool) {
	k, ok := key.(string)
	if !ok {
		return nil, false
	}
	v, ok := o.data[k]
	return v, ok
}

func (o *Object) rawSet(key, value any) bool {
	k, ok := key.(string)
	if !ok {
		return false
	}
	o.data[k] = value
	return true
}

func (o *Object) rawDelete(key any) bool {
	k, ok := key.(string)
	if !ok {
		return false
	}
	delete(o.data, k)
	return true
}

func (o *Object) rawHas(key any) bool {
	k, ok := key.(string)
	if !ok {
		return false
	}
	_, ok = o.data[k]
	return ok
}

func (o *Object) rawKeys() []any {
	names := make([]string, 0, len(o.data))
	for k := range o.data {
		names = append(names, k)
	}
	sort.Strings(names)
	keys := make([]any, len(names))
	for i, k := range names {
		keys[i] = k
	}
	return keys
}

func (o *Object) rawLen() int { return len(o.data) }
