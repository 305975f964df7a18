package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alecheck/internal/api"
	"alecheck/internal/config"
	"alecheck/internal/ledger"
	"alecheck/internal/logging"
)

const (
	// maxUploadBytes bounds one uploaded document.
	maxUploadBytes = 32 << 20
	// recentRuns is how many analyses stay in memory for ingest/manifest calls.
	recentRuns = 32
)

// HistoryReader looks up runs that are no longer held in memory.
type HistoryReader interface {
	GetRun(ctx context.Context, id string) (*ledger.RunDetail, error)
}

// Server exposes the analysis service over HTTP.
type Server struct {
	cfg     *config.Config
	svc     *api.AnalysisService
	history HistoryReader
	logger  *slog.Logger
	router  *mux.Router

	mu    sync.Mutex
	runs  map[string]api.Analysis
	order []string
}

// New builds a server. history may be nil when the ledger is disabled.
func New(cfg *config.Config, svc *api.AnalysisService, history HistoryReader, logger *slog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		svc:     svc,
		history: history,
		logger:  logging.NewComponentLogger(logger, "http"),
		runs:    make(map[string]api.Analysis),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(Metrics(DefaultMetricsConfig()))

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	apiRouter.HandleFunc("/runs/{id}", s.handleGetRun).Methods(http.MethodGet)
	apiRouter.HandleFunc("/runs/{id}/ingest", s.handleIngest).Methods(http.MethodPost)
	apiRouter.HandleFunc("/runs/{id}/manifest", s.handleManifest).Methods(http.MethodPost)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusNotFound, "not found")
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on bind until ctx is canceled.
func (s *Server) Serve(ctx context.Context, bind string) error {
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("http listen: %w", err)
	}
	return s.serveListener(ctx, listener)
}

func (s *Server) serveListener(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()
	s.logger.Info("http server listening", logging.String("address", listener.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		s.logger.Info("http server stopped")
		return nil
	}
}

func (s *Server) remember(a api.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[a.RunID]; !ok {
		s.order = append(s.order, a.RunID)
	}
	s.runs[a.RunID] = a
	for len(s.order) > recentRuns {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *Server) recall(id string) (api.Analysis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.runs[id]
	return a, ok
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
