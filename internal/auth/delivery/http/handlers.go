package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"challenge-admin/internal/middleware"
	"challenge-admin/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Description Creates a USER account.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201  {object} userResp
// @Failure     400  {object} response.Resp "VALIDATION_ERROR / INVALID_ARGUMENT"
// @Failure     409  {object} response.Resp "DUPLICATE_RESOURCE"
// @Failure     500  {object} response.Resp "INTERNAL_SERVER_ERROR"
// @Router      /api/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		_ = c.Error(h.mapError(err, req.Email))
		return
	}

	response.Created(c, newUserResp(output.User))
}

// Login godoc
// @Summary     Log in
// @Description Issues an access token and sets it as the access_token cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} loginResp
// @Failure     400  {object} response.Resp "VALIDATION_ERROR"
// @Failure     401  {object} response.Resp "AUTHENTICATION_FAILED"
// @Failure     429  {object} response.Resp "TOO_MANY_REQUESTS"
// @Router      /api/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput(c.ClientIP()))
	if err != nil {
		_ = c.Error(h.mapError(err, req.Email))
		return
	}

	expiresIn := int64(time.Until(output.ExpiresAt).Seconds())
	c.SetCookie(middleware.CookieAccessToken, output.Token, int(expiresIn), "/", "", h.secureCookie, true)
	response.OK(c, h.newLoginResp(output, expiresIn))
}

// Me godoc
// @Summary     Current account
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "AUTHENTICATION_REQUIRED"
// @Router      /api/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		_ = c.Error(h.mapError(err, sc.Email))
		return
	}

	response.OK(c, newUserResp(output.User))
}

// Logout godoc
// @Summary     Log out
// @Description Revokes the presented token and clears the cookie.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "AUTHENTICATION_REQUIRED"
// @Router      /api/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.uc.Logout(ctx, sc); err != nil {
		_ = c.Error(h.mapError(err, sc.Email))
		return
	}

	c.SetCookie(middleware.CookieAccessToken, "", -1, "/", "", h.secureCookie, true)
	response.OK(c, nil)
}

// ListUsers godoc
// @Summary     List accounts
// @Description ADMIN only.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Param       limit  query int false "Page size (default: 20)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listUsersResp
// @Failure     401 {object} response.Resp "AUTHENTICATION_REQUIRED"
// @Failure     403 {object} response.Resp "ACCESS_DENIED"
// @Router      /api/users [GET]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListUsersReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.ListUsers(ctx, req.toInput())
	if err != nil {
		_ = c.Error(h.mapError(err, ""))
		return
	}

	response.OK(c, h.newListUsersResp(output))
}
