package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/server"
)

type serveOptions struct {
	port        int
	staticDir   string
	frontendURL string
}

func newServeCmd(g *globalOptions) *cobra.Command {
	o := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  "Start an HTTP server exposing the match, recommendation and skill extraction endpoints, and optionally the frontend build.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			if cmd.Flags().Changed("port") {
				a.cfg.Port = o.port
			}
			if o.staticDir != "" {
				a.cfg.StaticDir = o.staticDir
			}
			if o.frontendURL != "" {
				a.cfg.FrontendURL = o.frontendURL
			}

			extractor, closeExtractor := a.newExtractor(cmd.Context())
			defer closeExtractor()

			srv, err := server.New(server.Config{
				Addr:        a.cfg.Addr(),
				FrontendURL: a.cfg.FrontendURL,
				StaticDir:   a.cfg.StaticDir,
				GroupBy:     a.cfg.GroupBy(),
			}, server.Deps{
				Catalog:   a.catalog,
				Resources: a.resources,
				Extractor: extractor,
				Logger:    a.log,
			})
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&o.port, "port", "p", 0, "Port to listen on (overrides config and PORT)")
	cmd.Flags().StringVar(&o.staticDir, "static-dir", "", "Directory with the frontend build")
	cmd.Flags().StringVar(&o.frontendURL, "frontend-url", "", "Allowed CORS origin")
	return cmd
}
