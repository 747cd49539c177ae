// Package effects is a reference implementation of the scheduler
// collaborator expected by pkg/reactivity: an effect runner that
// records the currently running computation, populates the per-target
// dependency slots on Track, and re-runs affected effects on Trigger.
//
//	engine := effects.New()
//	reactivity.SetScheduler(engine)
//
//	view := reactivity.Reactive(target).(*reactivity.View)
//	engine.Run(func() {
//	    fmt.Println(view.Get("name")) // re-runs when "name" changes
//	})
//
// An Engine and the views it observes are meant to be confined to one
// goroutine, matching the engine's cooperative execution model.
package effects
