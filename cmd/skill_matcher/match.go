package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/observability"
)

type matchOptions struct {
	skills  []string
	id      string
	limit   int
	jsonOut bool
}

func newMatchCmd(g *globalOptions) *cobra.Command {
	o := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match [skill...]",
		Short: "Score opportunities against a skill set",
		Long:  "Scores every opportunity in the catalog against the given skills, best match first. With --id, scores a single opportunity and shows the full breakdown.",
		Example: `  skill_matcher match -s React,JavaScript,CSS
  skill_matcher match --id 3 Python SQL`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			return runMatch(cmd.OutOrStdout(), a, collectSkills(o.skills, args), o)
		},
	}

	cmd.Flags().StringSliceVarP(&o.skills, "skills", "s", nil, "Comma-separated skills")
	cmd.Flags().StringVar(&o.id, "id", "", "Score only this opportunity")
	cmd.Flags().IntVarP(&o.limit, "limit", "n", 5, "Number of matches to print (0 for all)")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "Print JSON instead of a summary")
	return cmd
}

func runMatch(w io.Writer, a *app, skills []string, o *matchOptions) error {
	printer := observability.NewPrinter(w).WithLimit(o.limit)

	if o.id != "" {
		result, err := a.catalog.MatchOne(o.id, skills)
		if err != nil {
			return err
		}
		if o.jsonOut {
			return writeJSON(w, result)
		}
		printer.PrintMatch(result)
		return nil
	}

	results, err := a.catalog.MatchAll(skills)
	if err != nil {
		return err
	}
	if o.jsonOut {
		return writeJSON(w, results)
	}
	printer.PrintMatches(results)
	return nil
}
