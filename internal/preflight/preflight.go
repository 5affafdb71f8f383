package preflight

import (
	"errors"
	"strings"

	"rostersrt/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the directories a generate run touches. The input directory
// is only checked when inputs are discovered from it.
func RunAll(cfg *config.Config, discoverInputs bool) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	if discoverInputs {
		results = append(results, CheckDirectoryReadable("Input directory", cfg.Paths.InputDir))
	}
	results = append(results, CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir))
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	return results
}

// Failed joins the details of failed results into one error, or returns nil.
func Failed(results []Result) error {
	var failures []string
	for _, result := range results {
		if !result.Passed {
			failures = append(failures, result.Name+": "+result.Detail)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return errors.New("preflight failed: " + strings.Join(failures, "; "))
}
