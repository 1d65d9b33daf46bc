// Package server exposes a loaded roster over HTTP for read-only
// inspection. The roster is immutable once the server starts, so
// handlers never need locking.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/olehluchkiv/kennel/internal/animal"
	"github.com/olehluchkiv/kennel/internal/roster"
)

// newMux builds the route table for a roster.
func newMux(dogs []*animal.Dog, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request received", "method", r.Method, "path", r.URL.Path)
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		roster.EmitAll(w, dogs)
	})

	mux.HandleFunc("/roster.json", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request received", "method", r.Method, "path", r.URL.Path)
		data, err := roster.Marshal(dogs)
		if err != nil {
			logger.Error("failed to encode roster", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(data)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return mux
}

// Serve runs an HTTP server for the roster until ctx is cancelled or
// the listener fails. Shutdown is graceful with a 5s deadline.
func Serve(ctx context.Context, dogs []*animal.Dog, port int, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: newMux(dogs, logger),
	}

	logger.Info("starting HTTP server", "addr", fmt.Sprintf("http://localhost:%d", port), "dogs", len(dogs))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(errCh)
	}()

	// Block until the context is cancelled or the server fails.
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}
		return nil
	}
}
