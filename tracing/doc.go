// Package tracing exports OpenTelemetry spans describing simulation runs.
// All instrumentation is kept in a separate package so the simulator core
// stays free of observability dependencies.
package tracing
