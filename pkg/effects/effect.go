package effects

import (
	"sync/atomic"

	"github.com/ly2011/reactivity/pkg/reactivity"
)

// idSeq issues effect identifiers; the engine and Dep sets
// deduplicate notifications by them.
var idSeq atomic.Uint64

func nextID() uint64 { return idSeq.Add(1) }

// Effect is a computation that re-runs whenever a property it read
// during its last run changes.
type Effect struct {
	id     uint64
	engine *Engine

	// fn is the effect function to run.
	fn func()

	// deps are the dependency entries this effect is subscribed to,
	// swapped out on every run.
	deps []*reactivity.Dep

	stopped bool
}

// Run creates an effect, executes it once to collect its dependencies,
// and returns it.
func (e *Engine) Run(fn func()) *Effect {
	eff := &Effect{id: nextID(), engine: e, fn: fn}
	eff.run()
	return eff
}

// run executes the effect function with tracking enabled.
func (eff *Effect) run() {
	if eff.stopped {
		return
	}

	// Unsubscribe from old dependencies before collecting new ones.
	eff.clearDeps()

	prev := eff.engine.current
	eff.engine.current = eff
	defer func() { eff.engine.current = prev }()

	eff.fn()
}

// MarkDirty implements reactivity.Listener. The effect re-runs
// synchronously on the caller's goroutine.
func (eff *Effect) MarkDirty() {
	eff.run()
}

// ID implements reactivity.Listener.
func (eff *Effect) ID() uint64 {
	return eff.id
}

// Stop detaches the effect from every dependency. A stopped effect
// never runs again.
func (eff *Effect) Stop() {
	if eff.stopped {
		return
	}
	eff.stopped = true
	eff.clearDeps()
}

func (eff *Effect) clearDeps() {
	for _, d := range eff.deps {
		d.Remove(eff)
	}
	eff.deps = eff.deps[:0]
}

// addDep records a dependency entry this effect subscribed to.
// Called by the engine during Track.
func (eff *Effect) addDep(d *reactivity.Dep) {
	for _, existing := range eff.deps {
		if existing == d {
			return
		}
	}
	eff.deps = append(eff.deps, d)
}

var _ reactivity.Listener = (*Effect)(nil)
