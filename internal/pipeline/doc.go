// Package pipeline wires the roster, timeline, pacing, and captions packages
// into one run per input collection.
//
// Run loads an input, drops unusable records, orders and paces the rest,
// renders the caption track, and writes it atomically next to its siblings in
// the output directory. RunBatch adds the output directory lock and a run ID,
// and keeps going when a single input fails.
package pipeline
