// Package instrument provides Scheduler decorators that observe
// track/trigger traffic without changing its semantics: a Prometheus
// metrics collector and an OpenTelemetry tracing collector. Both wrap
// another reactivity.Scheduler (which may be nil) and forward every
// report after recording it.
package instrument
