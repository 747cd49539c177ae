// Package reactivity provides the dependency-tracking and
// view-materialization core of a fine-grained reactive state engine.
//
// Given a raw target graph built from the package's container types,
// it produces wrapped views that record which computation last read a
// property and notify those computations when the property is later
// mutated. Go has no transparent proxies, so a view exposes an
// explicit accessor surface; every call routes through an installed
// trap table.
//
// # Core Types
//
// Object, List, Dict, and KeySet are the wrappable targets:
//
//	user := reactivity.NewObjectFrom(map[string]any{
//	    "name":    "Ada",
//	    "profile": reactivity.NewObjectFrom(map[string]any{"visits": 0}),
//	})
//
// Reactive and Readonly return the canonical views:
//
//	view := reactivity.Reactive(user).(*reactivity.View)
//	view.Get("name")      // reports a GET to the scheduler
//	view.Set("name", "G") // reports a SET to the scheduler
//
// Views are created at most once per (target, kind) pair and returned
// from then on, so wrapping is idempotent and cyclic graphs terminate
// by hitting the memoized view. Nested targets are wrapped lazily, on
// access.
//
// # Collaborators
//
// The computation scheduler is external: install one with
// SetScheduler and it receives every Track and Trigger report. The
// pkg/effects package provides a reference implementation. Reference
// cells (the Ref interface) auto-unwrap through views, and read-only
// views reject mutation while the package-wide write lock is engaged.
//
// # Concurrency
//
// The factory and the trap tables are cooperative, single-goroutine
// code: all operations run synchronously to completion on the
// caller's goroutine. Dep sets take a lock because they are shared
// with the scheduler collaborator.
package reactivity
