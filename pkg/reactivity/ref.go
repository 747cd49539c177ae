package reactivity

// Ref is a mutable reference cell. Views auto-unwrap refs on read and
// write through them on assignment, so a cell stored in a wrapped
// target is invisible at the access site. The concrete cell type lives
// with the scheduler side of the framework; its own read and update
// paths handle tracking and notification.
type Ref interface {
	// RefValue returns the cell's current inner value.
	RefValue() any

	// SetRefValue replaces the cell's inner value, running the cell's
	// own update path.
	SetRefValue(value any)
}

// IsRef reports whether value is a mutable reference cell.
func IsRef(value any) bool {
	_, ok := value.(Ref)
	return ok
}
