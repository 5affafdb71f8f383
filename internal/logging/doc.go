// Package logging assembles structured slog loggers and formatting helpers used
// across rostersrt.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so pipeline code tags every line with
// the batch run ID and the input being processed. NewNop serves tests and
// wiring code that cannot fail.
package logging
