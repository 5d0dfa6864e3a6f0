package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/injurydesk/internal/bootstrap"
	"github.com/yigit/injurydesk/internal/config"
)

// Server holds the state for the HTTP server and its background workers.
type Server struct {
	config *config.Config
	deps   *bootstrap.Dependencies
	router *gin.Engine
	logger zerolog.Logger
	http   *http.Server

	// background workers
	cancelHub     context.CancelFunc
	cancelWorkers context.CancelFunc
	workers       sync.WaitGroup
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(ctx context.Context, configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	gw, database, err := bootstrap.SetupGateway(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup data backend: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, gw, database, lgr)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router, err := bootstrap.SetupRouter(cfg, deps, lgr)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, err
	}

	return &Server{
		config: cfg,
		deps:   deps,
		router: router,
		logger: lgr,
	}, nil
}

// startWorkers launches the websocket hub, the appointment notifier and the realtime relay
func (s *Server) startWorkers() {
	hubCtx, cancelHub := context.WithCancel(context.Background())
	s.cancelHub = cancelHub
	go s.deps.Hub.Run(hubCtx)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelWorkers = cancel

	if s.deps.Notifier != nil {
		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			s.deps.Notifier.Run(ctx)
		}()
	}
	if s.deps.Relay != nil {
		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			s.deps.Relay.Run(ctx)
		}()
	}
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Str("backend", s.deps.Gateway.Mode()).Msg("Starting server...")

	s.startWorkers()

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.Shutdown(context.Background())
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown stops the HTTP server, then the background workers, then closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if s.cancelWorkers != nil {
		s.logger.Info().Msg("Stopping background workers...")
		s.cancelWorkers()

		done := make(chan struct{})
		go func() {
			s.workers.Wait()
			close(done)
		}()
		select {
		case <-done:
			s.logger.Info().Msg("Background workers stopped.")
		case <-ctx.Done():
			s.logger.Warn().Msg("Timed out waiting for background workers")
			shutdownError = true
		}
	}
	if s.cancelHub != nil {
		s.cancelHub()
	}

	if s.deps.Database != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.deps.Database.Close()
		s.logger.Info().Msg("Database connection pool closed.")
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
