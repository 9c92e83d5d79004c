package main

import (
	"fmt"

	"github.com/dshills/cpsss/internal/guide"
	"github.com/spf13/cobra"
)

func newGuidesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guides",
		Short: "List built-in guides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := guide.List()
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newRefsCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "refs",
		Short: "Print the references behind the scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := guide.LoadBuiltin(name)
			if err != nil {
				return exitError(3, "failed to load guide: %v", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), guide.FormatReferences(g))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "guide", guide.DefaultName, "Guide to read references from")
	return cmd
}
