package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"rostersrt/internal/captions"
	"rostersrt/internal/config"
	"rostersrt/internal/fileutil"
	"rostersrt/internal/joindate"
	"rostersrt/internal/logging"
	"rostersrt/internal/pacing"
	"rostersrt/internal/roster"
	"rostersrt/internal/timeline"
)

// LockFileName is the advisory lock taken inside the output directory.
const LockFileName = ".rostersrt.lock"

// Runner turns roster collections into caption tracks using one configuration.
type Runner struct {
	outputDir string
	suffix    string
	bounds    pacing.Bounds
	ordering  timeline.Policy
	pacing    pacing.Policy
	parser    joindate.Parser
	template  captions.Template
	logger    *slog.Logger
}

// New builds a Runner from a validated configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("pipeline: config is required")
	}
	ordering, err := cfg.OrderingPolicy()
	if err != nil {
		return nil, err
	}
	pacingPolicy, err := cfg.PacingPolicy()
	if err != nil {
		return nil, err
	}
	return &Runner{
		outputDir: cfg.Paths.OutputDir,
		suffix:    cfg.Captions.OutputSuffix,
		bounds:    cfg.Bounds(),
		ordering:  ordering,
		pacing:    pacingPolicy,
		parser:    cfg.DateParser(),
		template:  cfg.Template(),
		logger:    logging.NewComponentLogger(logger, "pipeline"),
	}, nil
}

// Prepared is a rendered track that has not been written.
type Prepared struct {
	Input   string
	Team    string
	Stats   roster.Stats
	Ordered []roster.Record
	Plan    pacing.Plan
	Track   captions.Track
}

// Prepare loads, normalizes, orders, paces, and renders one input.
func (r *Runner) Prepare(path string) (Prepared, error) {
	prepared := Prepared{Input: path}

	raws, err := roster.Load(path)
	if err != nil {
		return prepared, classifyLoadError(path, err)
	}

	records, stats := roster.NormalizeAll(raws)
	prepared.Stats = stats
	if len(records) == 0 {
		return prepared, fmt.Errorf("%s: %w", filepath.Base(path), ErrEmptyCollection)
	}

	prepared.Ordered = timeline.Order(records, r.ordering, r.parser)
	prepared.Team = teamName(prepared.Ordered, path)

	plan, err := r.pacing.Plan(len(prepared.Ordered), r.bounds)
	if err != nil {
		return prepared, fmt.Errorf("pace %s: %w", filepath.Base(path), err)
	}
	prepared.Plan = plan
	prepared.Track = captions.Render(prepared.Ordered, plan, r.template, prepared.Team)
	return prepared, nil
}

// Run processes one input and writes its artifact. It does not take the
// output directory lock; RunBatch does.
func (r *Runner) Run(ctx context.Context, path string) Result {
	ctx = logging.WithInput(ctx, filepath.Base(path))
	logger := logging.WithContext(ctx, r.logger)
	result := Result{Input: path, Output: OutputPath(r.outputDir, path, r.suffix)}

	prepared, err := r.Prepare(path)
	result.Stats = prepared.Stats
	result.Team = prepared.Team
	result.Plan = prepared.Plan
	if err != nil {
		result.Err = err
		if errors.Is(err, ErrEmptyCollection) {
			result.Status = StatusSkipped
			logging.WarnWithContext(logger, "no valid records; caption track not written", "empty_collection",
				logging.Int("raw_records", prepared.Stats.Raw),
				logging.Int("dropped_records", prepared.Stats.Dropped),
				logging.String(logging.FieldErrorHint, "check that records carry a name field"),
				logging.String(logging.FieldImpact, "no artifact for this input"),
			)
			return result
		}
		result.Status = StatusFailed
		logging.ErrorWithContext(logger, "input failed", "input_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, errorHint(err)),
		)
		return result
	}

	if prepared.Stats.Dropped > 0 {
		logger.Info("records dropped during normalization",
			logging.Int("dropped_records", prepared.Stats.Dropped),
			logging.Int("raw_records", prepared.Stats.Raw),
		)
	}
	for _, skip := range prepared.Track.Skipped {
		logging.WarnWithContext(logger, "caption cue skipped", "cue_skipped",
			logging.String("cue", skip.Label),
			logging.Float64("start_seconds", skip.Start),
			logging.Float64("end_seconds", skip.End),
			logging.String(logging.FieldErrorHint, "check pacing seconds_per_card and video timings"),
			logging.String(logging.FieldImpact, "cue omitted from track"),
		)
	}
	result.Cues = len(prepared.Track.Blocks)
	result.SkippedCues = len(prepared.Track.Skipped)

	content := captions.Marshal(prepared.Track.Blocks)
	unchanged, err := fileutil.Matches(result.Output, content)
	if err != nil {
		logger.Debug("compare existing artifact failed", logging.Error(err))
	}
	if !unchanged {
		if err := fileutil.WriteFileAtomic(result.Output, content, 0o644); err != nil {
			result.Status = StatusFailed
			result.Err = fmt.Errorf("write %s: %w", filepath.Base(result.Output), err)
			logging.ErrorWithContext(logger, "write caption track failed", "write_failed",
				logging.Error(result.Err),
				logging.String(logging.FieldErrorHint, "check output directory permissions"),
			)
			return result
		}
	}
	result.Unchanged = unchanged
	result.Status = StatusWritten

	logger.Info("caption track written",
		logging.String(logging.FieldOutput, filepath.Base(result.Output)),
		logging.String("team", prepared.Team),
		logging.Int("raw_records", prepared.Stats.Raw),
		logging.Int("valid_records", prepared.Stats.Valid),
		logging.Int("cards_shown", prepared.Plan.CardsToShow),
		logging.Float64("per_card_seconds", prepared.Plan.SecondsPerCard),
		logging.Float64("total_seconds", prepared.Plan.TotalSeconds),
		logging.Bool("unchanged", unchanged),
		logging.String("output_path", result.Output),
	)
	return result
}

// RunBatch processes paths in order under the output directory lock. One
// input's failure is recorded in its Result and does not stop the rest. The
// context is checked between inputs; on cancellation the results so far are
// returned with the context error.
func (r *Runner) RunBatch(ctx context.Context, paths []string) ([]Result, error) {
	lock := flock.New(filepath.Join(r.outputDir, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, r.outputDir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("release output lock failed", logging.Error(err))
		}
	}()

	ctx = logging.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, r.logger)
	logger.Info("batch started",
		logging.Int("inputs", len(paths)),
		logging.String("output_dir", r.outputDir),
		logging.String("ordering", r.ordering.Name()),
		logging.String("pacing", r.pacing.Name()),
	)

	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			logging.WarnWithContext(logger, "batch interrupted", "batch_interrupted",
				logging.Int("remaining", len(paths)-len(results)),
				logging.String(logging.FieldImpact, "remaining inputs were not processed"),
			)
			return results, err
		}
		results = append(results, r.Run(ctx, path))
	}

	summary := Summarize(results)
	logger.Info("batch complete",
		logging.Int("written", summary.Written),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
	)
	return results, nil
}

func classifyLoadError(path string, err error) error {
	name := filepath.Base(path)
	if errors.Is(err, roster.ErrNotCollection) {
		return fmt.Errorf("load roster %s: %w: %w", name, ErrMalformedInput, err)
	}
	return fmt.Errorf("load roster %s: %w: %w", name, ErrInputUnreadable, err)
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, ErrMalformedInput):
		return "input must be a JSON array or YAML sequence of records"
	case errors.Is(err, ErrInputUnreadable):
		return "check the input path, extension, and permissions"
	default:
		return "check logs for details"
	}
}

// teamName is the first ordered record's team, or the input's base name.
func teamName(ordered []roster.Record, path string) string {
	if len(ordered) > 0 {
		if team := strings.TrimSpace(ordered[0].Team); team != "" {
			return team
		}
	}
	return baseName(path)
}
