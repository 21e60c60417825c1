package errorhandler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	pkgErrors "challenge-admin/pkg/errors"
	"challenge-admin/pkg/i18n"
	"challenge-admin/pkg/response"
)

func (h *handler) Handle(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if c.Writer.Written() {
		h.l.Errorf(ctx, "errorhandler.Handle: response already written, dropping error: %v", err)
		return
	}

	p := h.Resolve(err, i18n.Resolve(c.Request, h.defaultLocale))
	h.logProblem(ctx, c, p)
	h.metrics.observe(p)

	response.Error(c, p.Status, string(p.Code), p.Message, p.Details)
}

func (h *handler) logProblem(ctx context.Context, c *gin.Context, p Problem) {
	route := c.Request.Method + " " + c.Request.URL.Path
	if p.Status >= http.StatusInternalServerError {
		h.l.Errorf(ctx, "%s: internal server error: %v", route, p.Cause)
		return
	}
	if len(p.Details) > 0 {
		h.l.Warnf(ctx, "%s: %s: %v", route, p.Code, p.Details)
		return
	}
	h.l.Warnf(ctx, "%s: %s: %v", route, p.Code, p.Cause)
}

func (h *handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		h.Handle(c, c.Errors.Last().Err)
	}
}

func (h *handler) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// The client went away; nothing to answer.
			if recErr, ok := rec.(error); ok && errors.Is(recErr, http.ErrAbortHandler) {
				panic(rec)
			}
			h.Handle(c, fmt.Errorf("panic recovered: %v\n%s", rec, debug.Stack()))
			c.Abort()
		}()
		c.Next()
	}
}

func (h *handler) NoRoute(c *gin.Context) {
	h.Handle(c, pkgErrors.NewResourceNotFound(i18n.MsgRouteNotFound))
}

func (h *handler) NoMethod(c *gin.Context) {
	h.Handle(c, pkgErrors.NewHTTPError(http.StatusMethodNotAllowed, pkgErrors.CodeMethodNotAllowed, i18n.MsgMethodNotAllowed))
}
