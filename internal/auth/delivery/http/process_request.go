package http

import (
	"github.com/gin-gonic/gin"

	"challenge-admin/internal/model"
	pkgErrors "challenge-admin/pkg/errors"
)

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

func (h *handler) processListUsersReq(c *gin.Context) (listUsersReq, error) {
	var req listUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

// processScope returns the caller set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrAuthenticationRequired
	}
	return sc, nil
}
