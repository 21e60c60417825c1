package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	authRepo "challenge-admin/internal/auth/repository/sqlite"
	challengeRepo "challenge-admin/internal/challenge/repository/sqlite"
)

// Migrate creates the tables of every domain.
func Migrate(ctx context.Context, db *sql.DB) error {
	if err := authRepo.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate auth: %w", err)
	}
	if err := challengeRepo.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate challenge: %w", err)
	}
	return nil
}

// Handler maps all routes and returns the engine; used by Run and tests.
func (srv *HTTPServer) Handler(ctx context.Context) (http.Handler, error) {
	if err := srv.mapHandlers(ctx); err != nil {
		return nil, err
	}
	return srv.gin, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	handler, err := srv.Handler(ctx)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "Started server on :%d", srv.port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(ctx, "Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
