package reactivity

import "log/slog"

// DevMode enables development-time diagnostics.
// When true:
//   - Wrapping a non-object value logs a warning
//   - Mutating a locked read-only view logs the offending key and target
//   - Trigger reports carry old/new value payloads
//
// When false (production):
//   - Both paths stay silent and trigger payloads are omitted
//
// Set this at application startup:
//
//	func main() {
//	    reactivity.DevMode = os.Getenv("REACTIVITY_DEV") == "1"
//	    // ...
//	}
var DevMode = false

// Logger receives development diagnostics.
// If nil, slog.Default() is used.
var Logger *slog.Logger

func devLogger() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

// devWarn logs a non-fatal diagnostic. No-op outside development mode;
// nothing in this package ever panics or returns an error for these
// paths.
func devWarn(msg string, args ...any) {
	if !DevMode {
		return
	}
	devLogger().Warn(msg, args...)
}
