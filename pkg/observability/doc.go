/*
Package observability binds chain lifecycle hooks to Prometheus metrics and
structured logs.

A Recorder counts walks by stop reason, emitted steps, and observes walk
lengths. LogHooks writes the same events to a slog.Logger. Merge combines
several hook sets into one so both can be attached to a chain.
*/
package observability
