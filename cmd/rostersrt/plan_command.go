package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rostersrt/internal/logging"
	"rostersrt/internal/pacing"
	"rostersrt/internal/pipeline"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan COUNT | FILE...",
		Short: "Preview pacing without writing caption tracks",
		Long: "Show how many cards would be shown and for how long.\n" +
			"Pass a record count, or roster files to plan from their valid records.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				if count, convErr := strconv.Atoi(strings.TrimSpace(args[0])); convErr == nil {
					policy, err := cfg.PacingPolicy()
					if err != nil {
						return err
					}
					plan, err := policy.Plan(count, cfg.Bounds())
					if err != nil {
						return err
					}
					fmt.Fprintln(out, renderPlanTable([]planRow{{source: fmt.Sprintf("%d records", count), records: count, plan: plan}}))
					return nil
				}
			}

			runner, err := pipeline.New(cfg, logging.NewNop())
			if err != nil {
				return err
			}
			rows := make([]planRow, 0, len(args))
			var failures []error
			for _, arg := range args {
				prepared, err := runner.Prepare(arg)
				if err != nil {
					failures = append(failures, err)
					continue
				}
				rows = append(rows, planRow{
					source:  filepath.Base(arg),
					team:    prepared.Team,
					records: prepared.Stats.Valid,
					plan:    prepared.Plan,
				})
			}
			if len(rows) > 0 {
				fmt.Fprintln(out, renderPlanTable(rows))
			}
			return errors.Join(failures...)
		},
	}
}

type planRow struct {
	source  string
	team    string
	records int
	plan    pacing.Plan
}

func renderPlanTable(rows []planRow) string {
	headers := []string{"Source", "Team", "Records", "Cards", "Per card", "Opening", "Ending", "Total"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.source,
			row.team,
			strconv.Itoa(row.records),
			strconv.Itoa(row.plan.CardsToShow),
			formatSeconds(row.plan.SecondsPerCard),
			formatSeconds(row.plan.OpeningSeconds),
			formatSeconds(row.plan.EndingSeconds),
			formatSeconds(row.plan.TotalSeconds),
		})
	}
	return renderTable(headers, cells, nil, aligns)
}
