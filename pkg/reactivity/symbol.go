package reactivity

// Symbol is an identity-keyed property key. Two symbols are equal only
// if they are the same instance, so a symbol key can never collide with
// a string or integer key.
type Symbol struct {
	name    string
	builtin bool
}

// NewSymbol creates a symbol with the given description.
func NewSymbol(name string) *Symbol {
	return &Symbol{name: name}
}

// String returns the symbol's description.
func (s *Symbol) String() string {
	return "Symbol(" + s.name + ")"
}

// Well-known protocol symbols. Property reads keyed by a builtin symbol
// bypass dependency tracking entirely and yield the raw stored value;
// they exist for iteration and type-coercion machinery that must never
// subscribe a computation.
var (
	SymIterator    = &Symbol{name: "iterator", builtin: true}
	SymToPrimitive = &Symbol{name: "toPrimitive", builtin: true}
	SymToStringTag = &Symbol{name: "toStringTag", builtin: true}
)

// KeyIteration keys the dependency entry for whole-container
// enumeration. ITERATE tracks and ADD/DELETE/CLEAR trigger fan-out
// meet at this key; the scheduler uses it when an operation carries no
// specific property key.
var KeyIteration = &Symbol{name: "iteration"}

// isBuiltinSymbol reports whether key is a well-known protocol symbol.
func isBuiltinSymbol(key any) bool {
	s, ok := key.(*Symbol)
	return ok && s.builtin
}
