package pipeline

import (
	"rostersrt/internal/pacing"
	"rostersrt/internal/roster"
)

// Status is the outcome of processing one input.
type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result describes what happened to one input collection.
type Result struct {
	Input  string
	Output string
	Status Status
	Err    error

	Team  string
	Stats roster.Stats
	Plan  pacing.Plan
	// Cues counts emitted caption blocks; SkippedCues counts degenerate ones dropped.
	Cues        int
	SkippedCues int
	// Unchanged is set when the artifact already held identical bytes.
	Unchanged bool
}

// Summary tallies a batch by status.
type Summary struct {
	Written int
	Skipped int
	Failed  int
}

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	var s Summary
	for _, result := range results {
		switch result.Status {
		case StatusWritten:
			s.Written++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
