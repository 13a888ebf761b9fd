// Package api serves playlists built from the song library over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rcliao/moodlist/internal/model"
	"github.com/rcliao/moodlist/internal/playlist"
	"github.com/rcliao/moodlist/internal/store"
)

// Library is the part of the song store the API reads from.
type Library interface {
	List(ctx context.Context, p store.ListParams) ([]model.RawSong, error)
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr    string
	Library Library
	Profile model.Profile
	Picker  *playlist.Picker // nil means a time-seeded picker
	Logger  *slog.Logger
}

// Server is the HTTP server for the playlist API.
type Server struct {
	router  chi.Router
	server  *http.Server
	library Library
	profile model.Profile
	picker  *playlist.Picker
	log     *slog.Logger
}

// NewServer creates a new API server.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Picker == nil {
		cfg.Picker = playlist.NewPicker(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		router:  chi.NewRouter(),
		library: cfg.Library,
		profile: cfg.Profile,
		picker:  cfg.Picker,
		log:     cfg.Logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the server's router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/playlists", s.handlePlaylists)
	s.router.Get("/playlists/{mood}", s.handlePlaylist)
	s.router.Get("/search", s.handleSearch)
	s.router.Get("/stats", s.handleStats)
	s.router.Get("/lucky", s.handleLucky)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info("starting server", slog.String("addr", "http://"+s.server.Addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.RunContext(ctx)
}

// RunContext serves until ctx is done, then shuts the server down gracefully.
// A listen failure is returned as soon as it happens.
func (s *Server) RunContext(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
