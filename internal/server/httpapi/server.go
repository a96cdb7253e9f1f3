// Package httpapi exposes the scoreboard over an HTTP JSON API. It is a
// thin adapter: handlers decode and validate request bodies, call a service,
// and map sentinel errors to statuses.
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avoronins/scoreboard/internal/logging"
	"github.com/avoronins/scoreboard/internal/server/services"
)

// Server serves the scoreboard HTTP API.
type Server struct {
	addr        string
	corsOrigins string
	logger      logging.Logger
	leaderboard *services.LeaderboardService
	credentials *services.CredentialService
	reset       *services.ResetService
}

func NewServer(
	addr string,
	corsOrigins string,
	logger logging.Logger,
	leaderboard *services.LeaderboardService,
	credentials *services.CredentialService,
	reset *services.ResetService,
) *Server {
	return &Server{
		addr:        addr,
		corsOrigins: corsOrigins,
		logger:      logger.With("module", "httpapi"),
		leaderboard: leaderboard,
		credentials: credentials,
		reset:       reset,
	}
}

// Routes builds the chi router with middleware and all API endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	allowed := []string{"*"}
	if s.corsOrigins != "*" {
		allowed = strings.Split(s.corsOrigins, ",")
		for i := range allowed {
			allowed[i] = strings.TrimSpace(allowed[i])
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/api/leaderboard", s.handleLeaderboard)
	r.Post("/api/score/submit", s.handleSubmitScore)
	r.Post("/api/auth/link_email", s.handleLinkEmail)
	r.Post("/api/auth/recover_id", s.handleRecoverID)
	r.Post("/api/auth/request_reset", s.handleRequestReset)
	r.Post("/api/auth/reset_password", s.handleResetPassword)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
