package main

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-matcher/internal/extraction"
	"github.com/jonathan/skill-matcher/internal/observability"
	"github.com/jonathan/skill-matcher/internal/skills"
)

// maxConcurrentExtractions bounds parallel LLM calls for batch extraction.
const maxConcurrentExtractions = 4

type extractOptions struct {
	files   []string
	text    string
	match   bool
	jsonOut bool
}

// extractedFile is one input's extraction result, as printed by --json.
type extractedFile struct {
	Input  string            `json:"input"`
	Skills []string          `json:"skills"`
	Source extraction.Source `json:"source"`
}

func newExtractCmd(g *globalOptions) *cobra.Command {
	o := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract skills from resume text",
		Long:  "Extracts skill names from one or more resume files (text, HTML, PDF or DOCX) or inline text. Uses Gemini when GEMINI_API_KEY is set and the local skill vocabulary otherwise.",
		Example: `  skill_matcher extract -f resume.txt
  skill_matcher extract -f a.pdf -f b.docx --match`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(o.files) == 0 && o.text == "" {
				return errors.New("provide --file or --text")
			}

			a, err := loadApp(g)
			if err != nil {
				return err
			}
			extractor, closeExtractor := a.newExtractor(cmd.Context())
			defer closeExtractor()

			return runExtract(cmd.Context(), cmd.OutOrStdout(), a, extractor, o)
		},
	}

	cmd.Flags().StringSliceVarP(&o.files, "file", "f", nil, "Resume file to read (repeatable)")
	cmd.Flags().StringVarP(&o.text, "text", "t", "", "Resume text given inline")
	cmd.Flags().BoolVar(&o.match, "match", false, "Also score the catalog against all extracted skills")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "Print JSON instead of a summary")
	return cmd
}

func runExtract(ctx context.Context, w io.Writer, a *app, extractor *extraction.Extractor, o *extractOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	inputs, err := readInputs(o)
	if err != nil {
		return err
	}

	results := make([]extractedFile, len(inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentExtractions)
	for i, in := range inputs {
		eg.Go(func() error {
			r := extractor.ExtractDetailed(egCtx, in.text)
			extracted := r.Skills
			if extracted == nil {
				extracted = []string{}
			}
			results[i] = extractedFile{Input: in.label, Skills: extracted, Source: r.Source}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if !o.match {
		if o.jsonOut {
			return writeJSON(w, results)
		}
		printer := observability.NewPrinter(w)
		for _, r := range results {
			printer.PrintExtraction(r.Input, r.Skills, string(r.Source))
		}
		return nil
	}

	combined := mergeSkills(results)
	matches, err := a.catalog.MatchAll(combined)
	if err != nil {
		return err
	}
	if o.jsonOut {
		return writeJSON(w, map[string]any{"extracted": results, "matches": matches})
	}
	printer := observability.NewPrinter(w)
	for _, r := range results {
		printer.PrintExtraction(r.Input, r.Skills, string(r.Source))
	}
	printer.PrintMatches(matches)
	return nil
}

type extractInput struct {
	label string
	text  string
}

func readInputs(o *extractOptions) ([]extractInput, error) {
	inputs := make([]extractInput, 0, len(o.files)+1)
	if o.text != "" {
		inputs = append(inputs, extractInput{label: "(inline)", text: o.text})
	}
	for _, path := range o.files {
		text, err := extraction.ReadDocument(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, extractInput{label: filepath.Base(path), text: text})
	}
	return inputs, nil
}

// mergeSkills unions the extracted skills, keeping the first spelling of
// each normalized skill.
func mergeSkills(results []extractedFile) []string {
	seen := make(map[string]struct{})
	merged := []string{}
	for _, r := range results {
		for _, s := range r.Skills {
			key := skills.Normalize(s)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, s)
		}
	}
	return merged
}
