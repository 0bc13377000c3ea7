package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/observability"
)

func newListCmd(g *globalOptions) *cobra.Command {
	var (
		jsonOut bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the opportunity catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), a.catalog.All())
			}
			observability.NewPrinter(cmd.OutOrStdout()).WithLimit(limit).PrintOpportunities(a.catalog.All())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a summary")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of entries to print (0 for all)")
	return cmd
}
