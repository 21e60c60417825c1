package http

import (
	"github.com/gin-gonic/gin"

	"challenge-admin/internal/challenge"
	"challenge-admin/pkg/log"
)

// Handler is the public interface for the challenge HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Participate(c *gin.Context)
	Leave(c *gin.Context)
	Start(c *gin.Context)
	Complete(c *gin.Context)
	Reopen(c *gin.Context)
	Cancel(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc challenge.UseCase
}

// New creates a new HTTP handler for the challenge domain.
func New(l log.Logger, uc challenge.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
