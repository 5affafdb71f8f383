package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rostersrt/internal/captions"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "check FILE...",
		Short:       "Validate existing SRT caption tracks",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			invalid := 0
			for _, arg := range args {
				label := filepath.Base(arg)
				content, err := os.ReadFile(arg)
				if err != nil {
					invalid++
					fmt.Fprintln(out, renderStatusLine(label, statusError, err.Error(), colorize))
					continue
				}
				issues := captions.Validate(content)
				if len(issues) == 0 {
					cues, _ := captions.Parse(content)
					fmt.Fprintln(out, renderStatusLine(label, statusOK, fmt.Sprintf("%d cues", len(cues)), colorize))
					continue
				}
				invalid++
				fmt.Fprintln(out, renderStatusLine(label, statusError, fmt.Sprintf("%d issue(s)", len(issues)), colorize))
				for _, issue := range issues {
					fmt.Fprintf(out, "%s%s- %s\n", statusIndent, statusIndent, issue)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d caption tracks invalid", invalid, len(args))
			}
			return nil
		},
	}
}
