package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/catalog"
	"github.com/jonathan/skill-matcher/internal/ranking"
)

func newValidateCatalogCmd() *cobra.Command {
	var resourcesPath string

	cmd := &cobra.Command{
		Use:   "validate-catalog <catalog-file>",
		Short: "Validate a catalog file against the catalog schema",
		Long:  "Checks a JSON or YAML catalog against the catalog JSON Schema, then for duplicate or missing ids. Optionally checks a resource table too.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cat, err := catalog.LoadFile(args[0])
			if err != nil {
				fmt.Fprintf(out, "Validation failed: %s\n", args[0])
				return err
			}
			fmt.Fprintf(out, "Validation passed: %d opportunities in %s\n", cat.Len(), args[0])

			if resourcesPath == "" {
				return nil
			}
			table, err := ranking.LoadResourcesFile(resourcesPath)
			if err != nil {
				fmt.Fprintf(out, "Validation failed: %s\n", resourcesPath)
				return err
			}
			fmt.Fprintf(out, "Validation passed: %d learning resources in %s\n", len(table), resourcesPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&resourcesPath, "resources", "r", "", "Resource table to validate as well")
	return cmd
}
