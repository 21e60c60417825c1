package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	challengeHTTP "challenge-admin/internal/challenge/delivery/http"
	challengeRepo "challenge-admin/internal/challenge/repository/sqlite"
	challengeUC "challenge-admin/internal/challenge/usecase"
	"challenge-admin/internal/middleware"
)

// setupChallengeDomain initializes the challenge domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupChallengeDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := challengeRepo.New(srv.db, srv.l)
	uc := challengeUC.New(repo, srv.l)
	h := challengeHTTP.New(srv.l, uc)

	// Registers /api/challenges
	challengeHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Challenge domain registered")
	return nil
}
