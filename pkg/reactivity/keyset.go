package reactivity

// KeySet is an insertion-ordered keyed set target. Members must be
// comparable; the collection handlers unwrap view members to raw
// before they reach storage.
type KeySet struct {
	tm   targetMeta
	weak bool
	keys []any
	data map[any]struct{}
}

// NewKeySet creates an empty keyed set.
func NewKeySet() *KeySet {
	return &KeySet{
		tm:   targetMeta{id: nextID()},
		data: make(map[any]struct{}),
	}
}

// NewWeakKeySet creates a keyed set with the weak-variant kind tag.
// As with NewWeakDict, the tag only affects classification.
func NewWeakKeySet() *KeySet {
	s := NewKeySet()
	s.weak = true
	return s
}

// Kind implements Target.
func (s *KeySet) Kind() Kind {
	if s.weak {
		return KindWeakSet
	}
	return KindSet
}

func (s *KeySet) meta() *targetMeta { return &s.tm }

// rawGet returns the member itself when present, so the collection
// get trap can hand back a wrapped member.
func (s *KeySet) rawGet(key any) (any, bool) {
	if _, ok := s.data[key]; ok {
		return key, true
	}
	return nil, false
}

func (s *KeySet) rawSet(key, _ any) bool {
	if _, ok := s.data[key]; !ok {
		s.keys = append(s.keys, key)
		s.data[key] = struct{}{}
	}
	return true
}

func (s *KeySet) rawDelete(key any) bool {
	if _, ok := s.data[key]; !ok {
		return true
	}
	delete(s.data, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

func (s *KeySet) rawHas(key any) bool {
	_, ok := s.data[key]
	return ok
}

func (s *KeySet) rawKeys() []any {
	keys := make([]any, len(s.keys))
	copy(keys, s.keys)
	return keys
}

func (s *KeySet) rawLen() int { return len(s.data) }
