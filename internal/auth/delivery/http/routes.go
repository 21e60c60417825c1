package http

import (
	"github.com/gin-gonic/gin"

	"challenge-admin/internal/middleware"
	"challenge-admin/internal/model"
)

// RegisterRoutes maps /auth and /users under rg to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", mw.Auth(), h.Me)
		authGroup.POST("/logout", mw.Auth(), h.Logout)
	}

	rg.GET("/users", mw.Auth(), mw.RequireRole(model.RoleAdmin), h.ListUsers)
}
