package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rostersrt/internal/config"
	"rostersrt/internal/pipeline"
	"rostersrt/internal/preflight"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var inputDir string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate [FILE...]",
		Short: "Render caption tracks for roster collections",
		Long: "Render one SRT caption track per roster collection.\n" +
			"Without arguments every .json, .yaml, and .yml file in the input directory is processed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyDirOverride(&cfg.Paths.InputDir, inputDir); err != nil {
				return err
			}
			if err := applyDirOverride(&cfg.Paths.OutputDir, outputDir); err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}
			discover := len(args) == 0
			if err := preflight.Failed(preflight.RunAll(cfg, discover)); err != nil {
				return err
			}

			paths, err := resolveInputs(cfg, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(paths) == 0 {
				fmt.Fprintf(out, "No roster collections found in %s\n", cfg.Paths.InputDir)
				return nil
			}

			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			runner, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}
			results, runErr := runner.RunBatch(cmd.Context(), paths)

			if len(results) > 0 {
				fmt.Fprintln(out, renderResultsTable(results))
				colorize := shouldColorize(out)
				for _, result := range results {
					kind, message := resultStatus(result)
					fmt.Fprintln(out, renderStatusLine(filepath.Base(result.Input), kind, message, colorize))
				}
			}
			if runErr != nil {
				return runErr
			}
			if summary := pipeline.Summarize(results); summary.Failed > 0 {
				return fmt.Errorf("%d of %d inputs failed", summary.Failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input-dir", "", "Override paths.input_dir")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Override paths.output_dir")
	return cmd
}

func applyDirOverride(target *string, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	expanded, err := config.ExpandPath(value)
	if err != nil {
		return fmt.Errorf("resolve directory %q: %w", value, err)
	}
	*target = expanded
	return nil
}

// resolveInputs expands explicit arguments or discovers inputs from the
// configured input directory.
func resolveInputs(cfg *config.Config, args []string) ([]string, error) {
	if len(args) == 0 {
		return pipeline.Discover(cfg.Paths.InputDir)
	}
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		expanded, err := config.ExpandPath(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve input %q: %w", arg, err)
		}
		paths = append(paths, expanded)
	}
	return paths, nil
}

func renderResultsTable(results []pipeline.Result) string {
	headers := []string{"Input", "Status", "Records", "Cards", "Per card", "Total", "Output"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft}
	rows := make([][]string, 0, len(results))
	var totalSeconds float64
	for _, result := range results {
		row := []string{
			filepath.Base(result.Input),
			string(result.Status),
			fmt.Sprintf("%d/%d", result.Stats.Valid, result.Stats.Raw),
		}
		if result.Status == pipeline.StatusWritten {
			row = append(row,
				strconv.Itoa(result.Plan.CardsToShow),
				formatSeconds(result.Plan.SecondsPerCard),
				formatSeconds(result.Plan.TotalSeconds),
				filepath.Base(result.Output),
			)
			totalSeconds += result.Plan.TotalSeconds
		}
		rows = append(rows, row)
	}
	summary := pipeline.Summarize(results)
	footer := []string{
		fmt.Sprintf("%d inputs", len(results)),
		fmt.Sprintf("%d written, %d skipped, %d failed", summary.Written, summary.Skipped, summary.Failed),
		"", "", "",
		formatSeconds(totalSeconds),
	}
	return renderTable(headers, rows, footer, aligns)
}
