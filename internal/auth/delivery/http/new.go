package http

import (
	"github.com/gin-gonic/gin"

	"challenge-admin/internal/auth"
	"challenge-admin/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
	Logout(c *gin.Context)
	ListUsers(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           auth.UseCase
	secureCookie bool
}

// New creates a new HTTP handler for the auth domain.
// secureCookie marks the access_token cookie Secure (HTTPS only).
func New(l log.Logger, uc auth.UseCase, secureCookie bool) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		secureCookie: secureCookie,
	}
}
