// Package server provides the HTTP REST API for uploading, parsing,
// listing, and filtering resumes.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      store.Store
	parser     *pipeline.Parser
	lexicon    *skills.Lexicon
	validate   *validator.Validate
	logger     *zap.Logger
}

// Config holds server configuration.
type Config struct {
	ListenAddr string
	Store      store.Store
	Parser     *pipeline.Parser
	Logger     *zap.Logger
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("server requires a store")
	}
	if cfg.Parser == nil {
		return nil, fmt.Errorf("server requires a parser")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	s := &Server{
		store:    cfg.Store,
		parser:   cfg.Parser,
		lexicon:  skills.Default(),
		validate: validator.New(),
		logger:   cfg.Logger,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // model-backed parsing can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /resumes", s.handleUploadResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)
	mux.HandleFunc("POST /resumes/filter", s.handleFilterResumes)

	mux.HandleFunc("GET /skills", s.handleSkills)
	mux.HandleFunc("GET /skills/universe", s.handleSkillsUniverse)
	mux.HandleFunc("GET /years", s.handleYears)

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.store.Close()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleError maps a handler error to its HTTP status and writes it.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}
