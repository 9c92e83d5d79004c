package main

import (
	"github.com/dshills/cpsss/internal/assess"
	"github.com/dshills/cpsss/internal/form"
	"github.com/dshills/cpsss/internal/guide"
	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	f := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Answer the assessment questions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose := verboseLogger(f.verbose)
			g, err := guide.LoadBuiltin(f.guideName)
			if err != nil {
				return exitError(3, "failed to load guide: %v", err)
			}
			// Questions go to stderr so stdout carries only the report.
			in, err := form.Ask(cmd.InOrStdin(), cmd.ErrOrStderr(), g)
			if err != nil {
				return exitError(5, "%v", err)
			}
			return emit(in, assess.Source{Mode: "form"}, f, cmd.OutOrStdout(), verbose)
		},
	}
	addOutputFlags(cmd, f)

	return cmd
}
