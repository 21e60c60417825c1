package http

import (
	"github.com/gin-gonic/gin"

	"challenge-admin/internal/middleware"
)

// RegisterRoutes maps /challenges under rg to Handler methods.
// Reads are public; everything else requires a token.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	challenges := rg.Group("/challenges")
	{
		challenges.GET("", h.List)
		challenges.GET("/:id", h.Detail)

		challenges.POST("", mw.Auth(), h.Create)
		challenges.PUT("/:id", mw.Auth(), h.Update)
		challenges.DELETE("/:id", mw.Auth(), h.Delete)

		challenges.POST("/:id/participate", mw.Auth(), h.Participate)
		challenges.DELETE("/:id/participate", mw.Auth(), h.Leave)

		challenges.PATCH("/:id/start", mw.Auth(), h.Start)
		challenges.PATCH("/:id/complete", mw.Auth(), h.Complete)
		challenges.PATCH("/:id/reopen", mw.Auth(), h.Reopen)
		challenges.PATCH("/:id/cancel", mw.Auth(), h.Cancel)
	}
}
