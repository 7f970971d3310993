// Package server exposes the CreatorOS operations over HTTP.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/nikogura/creatoros/pkg/collab"
	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/profile"
	"github.com/nikogura/creatoros/pkg/scrapbook"
	"github.com/nikogura/creatoros/pkg/store"
	"github.com/nikogura/creatoros/pkg/website"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds graceful shutdown once the run context is cancelled.
const ShutdownTimeout = 10 * time.Second

// Assistant is the set of AI operations served under /api/ai. *llm.Client implements it.
type Assistant interface {
	GenerateCalendar(ctx context.Context, req llm.CalendarRequest) (llm.CalendarResponse, error)
	SuggestIdeas(ctx context.Context, req llm.IdeasRequest) (llm.IdeasResponse, error)
	Rescript(ctx context.Context, req llm.RescriptRequest) (llm.RescriptResponse, error)
	GenerateWebsite(ctx context.Context, req llm.WebsiteRequest) (website.PageDescription, error)
	DraftPitch(ctx context.Context, req llm.PitchRequest) (llm.PitchResponse, error)
	AnalyzeCollab(ctx context.Context, req llm.CollabAnalysisRequest) (llm.CollabAnalysis, error)
}

// Config holds listener and access settings.
type Config struct {
	Addr          string
	AuthToken     string
	AllowedOrigin string
}

// Server routes API requests to the store and the assistant.
type Server struct {
	cfg       Config
	store     *store.Store
	assistant Assistant
	profile   profile.Profile
	scorer    *collab.Scorer
	retriever *scrapbook.Retriever
	logger    *zap.Logger
	router    *mux.Router
}

// New builds a server. A nil assistant answers AI routes with 503; a nil logger discards logs.
func New(cfg Config, st *store.Store, assistant Assistant, p profile.Profile, logger *zap.Logger) (s *Server) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}

	s = &Server{
		cfg:       cfg,
		store:     st,
		assistant: assistant,
		profile:   p,
		scorer:    collab.NewScorer(),
		retriever: scrapbook.NewRetriever(),
		logger:    logger,
		router:    mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/sites/{slug}", s.handleServeSite).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.requireToken)

	// AI
	api.HandleFunc("/ai/calendar", s.handleCalendar).Methods(http.MethodPost)
	api.HandleFunc("/ai/ideas", s.handleSuggestIdeas).Methods(http.MethodPost)
	api.HandleFunc("/ai/rescript", s.handleRescript).Methods(http.MethodPost)
	api.HandleFunc("/ai/website", s.handleGenerateWebsite).Methods(http.MethodPost)
	api.HandleFunc("/ai/pitch", s.handlePitch).Methods(http.MethodPost)
	api.HandleFunc("/ai/collab-analysis", s.handleCollabAnalysis).Methods(http.MethodPost)

	// Websites
	api.HandleFunc("/websites/render", s.handleRenderWebsite).Methods(http.MethodPost)
	api.HandleFunc("/websites", s.handleListWebsites).Methods(http.MethodGet)
	api.HandleFunc("/websites", s.handleSaveWebsite).Methods(http.MethodPost)
	api.HandleFunc("/websites/{id}", s.handleGetWebsite).Methods(http.MethodGet)
	api.HandleFunc("/websites/{id}", s.handleDeleteWebsite).Methods(http.MethodDelete)
	api.HandleFunc("/websites/{id}/download", s.handleDownloadWebsite).Methods(http.MethodGet)

	// Scrapbook
	api.HandleFunc("/ideas", s.handleListIdeas).Methods(http.MethodGet)
	api.HandleFunc("/ideas", s.handleCreateIdea).Methods(http.MethodPost)
	api.HandleFunc("/ideas/{id}", s.handleGetIdea).Methods(http.MethodGet)
	api.HandleFunc("/ideas/{id}", s.handleUpdateIdea).Methods(http.MethodPut)
	api.HandleFunc("/ideas/{id}", s.handleDeleteIdea).Methods(http.MethodDelete)
	api.HandleFunc("/ideas/{id}/favorite", s.handleFavoriteIdea).Methods(http.MethodPost)

	// Collaborations
	api.HandleFunc("/collabs", s.handleListCollabs).Methods(http.MethodGet)
	api.HandleFunc("/collabs", s.handleCreateCollab).Methods(http.MethodPost)
	api.HandleFunc("/collabs/{id}", s.handleGetCollab).Methods(http.MethodGet)
	api.HandleFunc("/collabs/{id}", s.handleDeleteCollab).Methods(http.MethodDelete)
	api.HandleFunc("/collabs/{id}/status", s.handleCollabStatus).Methods(http.MethodPost)
}

// Handler returns the full middleware chain around the router.
func (s *Server) Handler() (handler http.Handler) {
	handler = s.logRequests(s.cors(s.router))
	return handler
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) (err error) {
	var ln net.Listener
	ln, err = net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		err = errors.Wrapf(err, "failed to listen on %s", s.cfg.Addr)
		return err
	}

	err = s.Serve(ctx, ln)
	return err
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) (err error) {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("serving", zap.String("addr", ln.Addr().String()))

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		err = errors.Wrap(err, "server stopped")
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		err = errors.Wrap(err, "graceful shutdown failed")
		return err
	}

	<-errCh
	return err
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
