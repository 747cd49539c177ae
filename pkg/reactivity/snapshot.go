package reactivity

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidSnapshotJSON = errors.New("snapshot json is not valid")
var ErrUnsupportedSnapshotValue = errors.New("value cannot be represented in a snapshot")

var snapshotJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Hydrate builds a raw Object/List graph from a JSON document. The
// result carries no reactive identity yet; hand it to Reactive or
// Readonly to begin observation.
func Hydrate(data []byte) (any, error) {
	if !snapshotJSON.Valid(data) {
		return nil, ErrInvalidSnapshotJSON
	}

	var decoded any
	if err := snapshotJSON.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return fromDecoded(decoded), nil
}

func fromDecoded(value any) any {
	switch v := value.(type) {
	case map[string]any:
		o := NewObject()
		for k, item := range v {
			o.data[k] = fromDecoded(item)
		}
		return o
	case []any:
		l := NewList()
		for _, item := range v {
			l.data = append(l.data, fromDecoded(item))
		}
		return l
	default:
		return value
	}
}

// Dehydrate renders a target graph back to JSON. Views are unwrapped
// to their raw targets and reference cells are read through. Dict and
// KeySet targets have no JSON representation and return
// ErrUnsupportedSnapshotValue. The graph must be acyclic.
func Dehydrate(value any) ([]byte, error) {
	plain, err := toPlain(value)
	if err != nil {
		return nil, err
	}

	out, err := snapshotJSON.Marshal(plain)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return out, nil
}

func toPlain(value any) (any, error) {
	value = ToRaw(value)
	if r, ok := value.(Ref); ok {
		return toPlain(r.RefValue())
	}

	switch v := value.(type) {
	case *Object:
		m := make(map[string]any, len(v.data))
		for k, item := range v.data {
			p, err := toPlain(item)
			if err != nil {
				return nil, err
			}
			m[k] = p
		}
		return m, nil
	case *List:
		s := make([]any, 0, len(v.data))
		for _, item := range v.data {
			p, err := toPlain(item)
			if err != nil {
				return nil, err
			}
			s = append(s, p)
		}
		return s, nil
	case *Dict, *KeySet:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSnapshotValue, v)
	default:
		return value, nil
	}
}
