package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/observability"
	"github.com/jonathan/skill-matcher/internal/ranking"
)

type recommendOptions struct {
	skills  []string
	groupBy string
	jsonOut bool
}

func newRecommendCmd(g *globalOptions) *cobra.Command {
	o := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend [skill...]",
		Short: "Recommend skills to learn next",
		Long:  "Ranks the skills missing from the catalog's opportunities by how many opportunities list them, and shows opportunities that are almost within reach.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			return runRecommend(cmd.OutOrStdout(), a, collectSkills(o.skills, args), o)
		},
	}

	cmd.Flags().StringSliceVarP(&o.skills, "skills", "s", nil, "Comma-separated skills")
	cmd.Flags().StringVar(&o.groupBy, "group-by", "", `Tally missing skills "literal" or "normalized" (overrides config)`)
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "Print JSON instead of a summary")
	return cmd
}

func runRecommend(w io.Writer, a *app, skills []string, o *recommendOptions) error {
	groupBy := a.cfg.GroupBy()
	if o.groupBy != "" {
		parsed, err := ranking.ParseGroupBy(o.groupBy)
		if err != nil {
			return err
		}
		groupBy = parsed
	}

	recs, err := ranking.RecommendWithOptions(a.catalog, skills, a.resources, ranking.Options{GroupBy: groupBy})
	if err != nil {
		return err
	}

	if o.jsonOut {
		return writeJSON(w, recs)
	}
	observability.NewPrinter(w).PrintRecommendations(recs)
	return nil
}
