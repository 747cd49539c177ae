package effects

import "github.com/ly2011/reactivity/pkg/reactivity"

// Engine implements reactivity.Scheduler. It tracks which Effect is
// currently running and fans triggers out to the dependency entries a
// mutation invalidates.
type Engine struct {
	// current is the effect whose function is running.
	// nil means no tracking (reads don't create subscriptions).
	current *Effect

	// batchDepth tracks nested Batch calls. When > 0, triggers queue
	// notifications instead of firing immediately.
	batchDepth int

	// pending accumulates listeners to notify when the outermost batch
	// completes. Deduplicated by ID before notification.
	pending []reactivity.Listener
}

// New creates an empty engine. Install it with reactivity.SetScheduler.
func New() *Engine {
	return &Engine{}
}

// Track implements reactivity.Scheduler. With no active effect it is a
// no-op; otherwise it subscribes the effect to (target, key).
func (e *Engine) Track(target any, op reactivity.Operation, key any) {
	if e.current == nil {
		return
	}
	if key == nil {
		// ITERATE and friends depend on the whole key set.
		key = reactivity.KeyIteration
	}
	dep := reactivity.DepFor(target, key)
	if dep == nil {
		return
	}
	dep.Add(e.current)
	e.current.addDep(dep)
}

// Trigger implements reactivity.Scheduler. Key-level writes notify the
// key's dependency entry; structural writes (ADD, DELETE) additionally
// notify the iteration entry, and CLEAR notifies everything.
func (e *Engine) Trigger(target any, op reactivity.Operation, key any, _ *reactivity.Change) {
	deps := reactivity.TargetDeps(target)
	if deps == nil {
		return
	}

	var listeners []reactivity.Listener
	seen := make(map[uint64]bool)
	collect := func(d *reactivity.Dep) {
		if d == nil {
			return
		}
		for _, l := range d.Listeners() {
			if e.current != nil && l.ID() == e.current.ID() {
				// An effect writing a key it also reads must not
				// retrigger itself.
				continue
			}
			if !seen[l.ID()] {
				seen[l.ID()] = true
				listeners = append(listeners, l)
			}
		}
	}

	switch op {
	case reactivity.OpClear:
		for _, d := range deps {
			collect(d)
		}
	case reactivity.OpAdd, reactivity.OpDelete:
		if key != nil {
			collect(deps[key])
		}
		collect(deps[reactivity.KeyIteration])
	default:
		if key != nil {
			collect(deps[key])
		}
	}

	if e.batchDepth > 0 {
		e.pending = append(e.pending, listeners...)
		return
	}
	for _, l := range listeners {
		l.MarkDirty()
	}
}

// Batch groups triggers; affected effects run once when the outermost
// batch completes. Batches can be nested.
func (e *Engine) Batch(fn func()) {
	e.batchDepth++

	defer func() {
		e.batchDepth--
		if e.batchDepth == 0 {
			e.flush()
		}
	}()

	fn()
}

// Untracked runs fn with dependency tracking suspended.
func (e *Engine) Untracked(fn func()) {
	prev := e.current
	e.current = nil
	defer func() { e.current = prev }()
	fn()
}

// flush deduplicates and notifies all pending listeners.
func (e *Engine) flush() {
	pending := e.pending
	e.pending = nil
	if len(pending) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(pending))
	for _, l := range pending {
		if seen[l.ID()] {
			continue
		}
		seen[l.ID()] = true
		l.MarkDirty()
	}
}

var _ reactivity.Scheduler = (*Engine)(nil)
