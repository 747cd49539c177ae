package reactivity

// writeLocked gates mutation through read-only views. It starts
// engaged; the external update machinery clears and restores it in
// matched pairs around its own write batches. No nesting bookkeeping
// is kept.
var writeLocked = true

// Lock re-engages the read-only write lock.
func Lock() {
	writeLocked = true
}

// Unlock temporarily permits writes through read-only views. Used by
// the framework's own update machinery; call Lock again when the
// batch of internal writes is done.
func Unlock() {
	writeLocked = false
}
