package reactivity

// Operation identifies what a trap reported to the scheduler.
type Operation uint8

const (
	// Read operations, reported via Track.
	OpGet Operation = iota + 1
	OpHas
	OpIterate

	// Write operations, reported via Trigger.
	OpAdd
	OpSet
	OpDelete
	OpClear
)

// String returns a human-readable name for the operation.
func (op Operation) String() string {
	switch op {
	case OpGet:
		return "get"
	case OpHas:
		return "has"
	case OpIterate:
		return "iterate"
	case OpAdd:
		return "add"
	case OpSet:
		return "set"
	case OpDelete:
		return "delete"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Change describes a mutation for development tooling. Production
// triggers pass nil; the payload is only populated when DevMode is on.
type Change struct {
	OldValue any
	NewValue any
}

// Scheduler is the external computation scheduler collaborator. Track
// records that the currently running computation read (target, key);
// Trigger notifies computations that (target, key) changed. Both must
// tolerate calls with no active computation.
//
// The key argument is nil for operations that depend on the whole key
// set (ITERATE, CLEAR); schedulers conventionally file those under
// KeyIteration.
type Scheduler interface {
	Track(target any, op Operation, key any)
	Trigger(target any, op Operation, key any, change *Change)
}

// activeScheduler is the installed collaborator. Reported operations
// are dropped while it is nil.
var activeScheduler Scheduler

// SetScheduler installs the process-wide scheduler collaborator.
// Passing nil detaches it.
func SetScheduler(s Scheduler) {
	activeScheduler = s
}

func track(target Target, op Operation, key any) {
	if activeScheduler != nil {
		activeScheduler.Track(target, op, key)
	}
}

func trigger(target Target, op Operation, key any, change *Change) {
	if activeScheduler != nil {
		activeScheduler.Trigger(target, op, key, change)
	}
}

// changeFor builds a Change payload in development mode, nil otherwise.
func changeFor(oldValue, newValue any) *Change {
	if !DevMode {
		return nil
	}
	return &Change{OldValue: oldValue, NewValue: newValue}
}
