package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"challenge-admin/internal/model"
	pkgErrors "challenge-admin/pkg/errors"
	"challenge-admin/pkg/i18n"
)

// processIDParam parses the :id path segment as a positive integer.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, pkgErrors.WrapInvalidArgument(i18n.MsgInvalidID, err)
	}
	if id <= 0 {
		return 0, pkgErrors.NewInvalidArgument(i18n.MsgInvalidID)
	}
	return id, nil
}

// processScope returns the caller set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrAuthenticationRequired
	}
	return sc, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

// processUpdateReq binds the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	req.ID = id
	return req, nil
}
