// Package server provides the HTTP REST API for the skill matcher.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-matcher/internal/catalog"
	"github.com/jonathan/skill-matcher/internal/extraction"
	"github.com/jonathan/skill-matcher/internal/logging"
	"github.com/jonathan/skill-matcher/internal/ranking"
	"github.com/jonathan/skill-matcher/internal/server/ratelimit"
)

const shutdownTimeout = 30 * time.Second

// SkillExtractor turns resume text into skills. *extraction.Extractor satisfies it.
type SkillExtractor interface {
	ExtractDetailed(ctx context.Context, text string) extraction.Result
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	catalog     *catalog.Catalog
	resources   ranking.ResourceTable
	extractor   SkillExtractor
	groupBy     ranking.GroupBy
	frontendURL string
	log         *logging.Logger
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Addr        string // listen address, e.g. ":3001"
	FrontendURL string // allowed CORS origin; empty reflects any origin
	StaticDir   string // frontend build; empty disables static serving
	GroupBy     ranking.GroupBy
	RateLimit   *ratelimit.Config // nil reads RATE_LIMIT_* from the environment
}

// Deps are the collaborators the handlers call.
type Deps struct {
	Catalog   *catalog.Catalog
	Resources ranking.ResourceTable
	Extractor SkillExtractor
	Logger    *logging.Logger
}

// New creates a new server instance
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Catalog == nil {
		return nil, errors.New("server requires a catalog")
	}
	if deps.Extractor == nil {
		deps.Extractor = extraction.New()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}

	rl := cfg.RateLimit
	if rl == nil {
		rl = ratelimit.LoadConfig()
	}

	s := &Server{
		catalog:     deps.Catalog,
		resources:   deps.Resources,
		extractor:   deps.Extractor,
		groupBy:     cfg.GroupBy,
		frontendURL: cfg.FrontendURL,
		log:         deps.Logger,
		rateLimiter: ratelimit.NewLimiter(rl),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/match", s.handleMatch)
	mux.HandleFunc("POST /api/match/{id}", s.handleMatchOne)
	mux.HandleFunc("POST /api/recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /api/extract-skills", s.handleExtractSkills)
	mux.HandleFunc("POST /api/extract-skills/upload", s.handleExtractSkillsUpload)

	// Read-only catalog
	mux.HandleFunc("GET /api/opportunities", s.handleListOpportunities)
	mux.HandleFunc("GET /api/opportunities/{id}", s.handleGetOpportunity)

	mux.HandleFunc("GET /health", s.handleHealth)

	var frontend http.Handler
	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			frontend = spaHandler(cfg.StaticDir)
		} else {
			s.log.Warn("static dir not found, frontend disabled", "dir", cfg.StaticDir)
		}
	}
	mux.Handle("/", s.fallback(frontend))

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(s.withRateLimit(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // covers one extraction call
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the full middleware chain, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener. The rate limiter's cleanup loop
// runs only while serving.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.rateLimiter.Start()
	defer s.rateLimiter.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("server starting", "addr", ln.Addr().String(), "opportunities", s.catalog.Len())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
