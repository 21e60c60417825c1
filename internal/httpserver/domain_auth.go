package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"challenge-admin/internal/auth"
	authHTTP "challenge-admin/internal/auth/delivery/http"
	authRepo "challenge-admin/internal/auth/repository/sqlite"
	authUC "challenge-admin/internal/auth/usecase"
	"challenge-admin/internal/middleware"
)

// setupAuthDomain wires repository, use case and handler for /api/auth and
// /api/users, and seeds the bootstrap admin when configured.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authRepo.New(srv.db, srv.l)
	uc := authUC.New(repo, srv.l, srv.encrypter, srv.jwtManager, srv.loginLimiter)

	if srv.admin.Email != "" {
		if err := uc.EnsureAdmin(ctx, auth.EnsureAdminInput{
			Username: srv.admin.Username,
			Email:    srv.admin.Email,
			Password: srv.admin.Password,
		}); err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
	}

	h := authHTTP.New(srv.l, uc, srv.secureCookie)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
