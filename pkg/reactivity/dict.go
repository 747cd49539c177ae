package reactivity

// Dict is an insertion-ordered keyed map target. Keys must be
// comparable; the collection handlers unwrap view keys to raw before
// they reach storage.
type Dict struct {
	tm   targetMeta
	weak bool
	keys []any
	data map[any]any
}

// NewDict creates an empty keyed map.
func NewDict() *Dict {
	return &Dict{
		tm:   targetMeta{id: nextID()},
		data: make(map[any]any),
	}
}

// NewWeakDict creates a keyed map with the weak-variant kind tag. Go
// exposes no user-level weak collections, so the tag only affects
// classification; entries live until removed.
func NewWeakDict() *Dict {
	d := NewDict()
	d.weak = true
	return d
}

// Kind implements Target.
func (d *Dict) Kind() Kind {
	if d.weak {
		return KindWeakDict
	}
	return KindDict
}

func (d *Dict) meta() *targetMeta { return &d.tm }

func (d *Dict) rawGet(key any) (any, bool) {
	v, ok := d.data[key]
	return v, ok
}

func (d *Dict) rawSet(key, value any) bool {
	if _, ok := d.data[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.data[key] = value
	return true
}

func (d *Dict) rawDelete(key any) bool {
	if _, ok := d.data[key]; !ok {
		return true
	}
	delete(d.data, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

func (d *Dict) rawHas(key any) bool {
	_, ok := d.data[key]
	return ok
}

func (d *Dict) rawKeys() []any {
	keys := make([]any, len(d.keys))
	copy(keys, d.keys)
	return keys
}

func (d *Dict) rawLen() int { return len(d.data) }
