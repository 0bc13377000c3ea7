package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/skill-matcher/internal/catalog"
	"github.com/jonathan/skill-matcher/internal/config"
	"github.com/jonathan/skill-matcher/internal/extraction"
	"github.com/jonathan/skill-matcher/internal/llm"
	"github.com/jonathan/skill-matcher/internal/logging"
	"github.com/jonathan/skill-matcher/internal/ranking"
)

// app holds what a command needs after config resolution.
type app struct {
	cfg       config.Config
	log       *logging.Logger
	catalog   *catalog.Catalog
	resources ranking.ResourceTable
}

// loadApp resolves configuration (env over file over defaults) and loads the
// catalog and resource table it points at.
func loadApp(opts *globalOptions) (*app, error) {
	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	log := logging.New(level)

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	resources := ranking.DefaultResources()
	if cfg.ResourcesPath != "" {
		resources, err = ranking.LoadResourcesFile(cfg.ResourcesPath)
		if err != nil {
			return nil, err
		}
	}

	log.Debug("configuration loaded",
		"catalog", describePath(cfg.CatalogPath),
		"opportunities", cat.Len(),
		"resources", len(resources),
		"group_by", cfg.RecommendGroupBy,
	)

	return &app{cfg: cfg, log: log, catalog: cat, resources: resources}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func describePath(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}

// newExtractor builds an extractor backed by Gemini when an API key is
// configured. A client that cannot be created degrades to the vocabulary
// scan. The returned func releases the client.
func (a *app) newExtractor(ctx context.Context) (*extraction.Extractor, func()) {
	timeout, _ := a.cfg.ExtractTimeoutDuration()
	opts := []extraction.Option{
		extraction.WithTimeout(timeout),
		extraction.WithLogger(a.log),
	}

	if a.cfg.APIKey == "" {
		a.log.Info("no API key configured, skill extraction uses the local vocabulary")
		return extraction.New(opts...), func() {}
	}

	llmCfg := llm.DefaultConfig().WithModel(llm.TierStandard, a.cfg.Model)
	client, err := llm.NewClient(ctx, llmCfg, a.cfg.APIKey)
	if err != nil {
		a.log.Warn("failed to create LLM client, skill extraction uses the local vocabulary", "error", err)
		return extraction.New(opts...), func() {}
	}

	opts = append(opts, extraction.WithClient(client), extraction.WithSpellingHints(a.catalog.Skills()))
	return extraction.New(opts...), func() {
		if err := client.Close(); err != nil {
			a.log.Warn("failed to close LLM client", "error", err)
		}
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// collectSkills merges the --skills flag with positional arguments. Both
// absent yields nil so that callers can reject a missing skill list.
func collectSkills(flag []string, args []string) []string {
	if flag == nil && len(args) == 0 {
		return nil
	}
	out := make([]string, 0, len(flag)+len(args))
	out = append(out, flag...)
	return append(out, args...)
}
