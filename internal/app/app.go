package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mufasadev/account-ledger/internal/config"
	apperrors "github.com/mufasadev/account-ledger/internal/errors"
	"github.com/mufasadev/account-ledger/pkg/log"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 30 * time.Second

type Service struct {
	config *config.Config
	logger *zerolog.Logger
}

// NewService creates a new instance of the service
func NewService(cfg *config.Config) *Service {
	l := log.GetLogger()
	return &Service{config: cfg, logger: &l}
}

// Run listens on the configured address until ctx is cancelled or the
// process receives SIGINT/SIGTERM, then shuts the server down gracefully.
func (s *Service) Run(ctx context.Context, handler http.Handler) error {
	listener, err := net.Listen("tcp", s.config.Server.Addr())
	if err != nil {
		s.logger.Error().Err(err).Msg(apperrors.ErrorFailedToRunTheServer)
		return err
	}
	return s.Serve(ctx, listener, handler)
}

// Serve is Run on an existing listener.
func (s *Service) Serve(ctx context.Context, listener net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	s.logger.Info().Str("addr", listener.Addr().String()).Msg("Server is listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		s.logger.Error().Err(err).Msg(apperrors.ErrorFailedToRunTheServer)
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("Server is shutting down due to context cancellation...")
	case <-quit:
		s.logger.Info().Msg("Server is shutting down...")
	}

	return s.shutdown(server)
}

// shutdown gracefully shuts down the server without interrupting any active connections.
func (s *Service) shutdown(server *http.Server) error {
	ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		s.logger.Error().Err(err).Msg(apperrors.ErrorFailedToShutdownTheServer)
		return err
	}

	s.logger.Info().Msg("Server stopped")
	return nil
}
