package server

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
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

// Start runs the HTTP server until ctx is cancelled or the process receives
// SIGINT or SIGTERM, then shuts everything down.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go s.visits.Run(s.bootCtx, sweepInterval)
	go func() {
		if err := s.assets.Watch(s.bootCtx); err != nil {
			slog.Warn("Asset watcher stopped", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", s.Cfg.Addr, "env", s.Cfg.Env)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		_ = s.Shutdown(context.Background())
		return fmt.Errorf("shutting down the server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops the modules in reverse boot order, then the container
// services, then Echo.
func (s *Server) Shutdown(ctx context.Context) error {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
	s.cancelBoot()

	if report := s.injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		slog.Error("Service shutdown failed", "report", report.Error())
	}

	if err := s.E.Shutdown(ctx); err != nil {
		return fmt.Errorf("echo shutdown: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
