package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/cpsss/internal/assess"
	"github.com/dshills/cpsss/internal/schema"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <report.json>",
		Short: "Check that a saved JSON report is internally consistent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return exitError(3, "failed to read report: %v", err)
			}
			var rep assess.Report
			if err := json.Unmarshal(data, &rep); err != nil {
				return exitError(3, "failed to parse report as JSON: %v", err)
			}
			if errs := schema.Validate(&rep); len(errs) > 0 {
				w := cmd.ErrOrStderr()
				fmt.Fprintln(w, "Report validation errors:")
				for _, e := range errs {
					fmt.Fprintf(w, "  %s\n", e)
				}
				return exitError(5, "report %s failed validation", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: score %d (%s)\n", rep.Result.Score, rep.Result.SeverityLabel)
			return nil
		},
	}
}
