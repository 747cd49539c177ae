package reactivity

import "sync"

// Listener is anything that can be notified when a tracked property
// changes. It is implemented by the external scheduler's computations
// (effects, memos, component renders).
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies has
	// changed.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication.
	ID() uint64
}

// Dep is the set of listeners subscribed to one property of one
// target. The core only guarantees the containing slot exists; the
// scheduler populates Dep entries during Track and consumes them on
// Trigger.
type Dep struct {
	// subs are the listeners subscribed to this property.
	subs []Listener

	// mu protects the subs slice.
	mu sync.RWMutex
}

// Add subscribes a listener.
// Deduplicates by listener ID to prevent double-subscription.
func (d *Dep) Add(l Listener) {
	if l == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	lid := l.ID()
	for _, existing := range d.subs {
		if existing.ID() == lid {
			return
		}
	}

	d.subs = append(d.subs, l)
}

// Remove unsubscribes a listener.
func (d *Dep) Remove(l Listener) {
	if l == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	lid := l.ID()
	for i, existing := range d.subs {
		if existing.ID() == lid {
			// Remove by swapping with last element (order doesn't matter)
			d.subs[i] = d.subs[len(d.subs)-1]
			d.subs = d.subs[:len(d.subs)-1]
			return
		}
	}
}

// Listeners returns a snapshot of the current subscribers.
func (d *Dep) Listeners() []Listener {
	d.mu.RLock()
	defer d.mu.RUnlock()
	subs := make([]Listener, len(d.subs))
	copy(subs, d.subs)
	return subs
}

// Notify marks every subscriber dirty.
// Uses copy-before-notify to avoid holding the lock during notification.
func (d *Dep) Notify() {
	for _, l := range d.Listeners() {
		l.MarkDirty()
	}
}

// Len returns the number of subscribed listeners.
func (d *Dep) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subs)
}

// DepMap is the per-target dependency slot: one Dep per property key.
type DepMap map[any]*Dep
