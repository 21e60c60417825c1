package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"challenge-admin/internal/challenge"
	"challenge-admin/internal/model"
	"challenge-admin/pkg/response"
)

// Create godoc
// @Summary     Create a challenge
// @Description Opens a RECRUITING challenge authored by the caller.
// @Tags        Challenge
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Challenge data"
// @Success     201  {object} challengeResp
// @Failure     400  {object} response.Resp "VALIDATION_ERROR / INVALID_ARGUMENT"
// @Failure     401  {object} response.Resp "AUTHENTICATION_REQUIRED"
// @Failure     500  {object} response.Resp "INTERNAL_SERVER_ERROR"
// @Router      /api/challenges [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		_ = c.Error(h.mapError(err, 0))
		return
	}

	response.Created(c, newChallengeResp(output.Challenge))
}

// List godoc
// @Summary     List challenges
// @Description Returns a paginated list of challenges with optional status filter.
// @Tags        Challenge
// @Produce     json
// @Param       status query string false "RECRUITING, IN_PROGRESS, COMPLETED or CANCELLED"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "INVALID_ARGUMENT"
// @Router      /api/challenges [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		_ = c.Error(h.mapError(err, 0))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get challenge detail
// @Tags        Challenge
// @Produce     json
// @Param       id path int true "Challenge ID"
// @Success     200 {object} challengeResp
// @Failure     400 {object} response.Resp "INVALID_ARGUMENT"
// @Failure     404 {object} response.Resp "RESOURCE_NOT_FOUND"
// @Router      /api/challenges/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		_ = c.Error(h.mapError(err, id))
		return
	}

	response.OK(c, newChallengeResp(output.Challenge))
}

// Update godoc
// @Summary     Update a challenge
// @Description Partial update of a RECRUITING challenge. Author or ADMIN only.
// @Tags        Challenge
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Challenge ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} challengeResp
// @Failure     400 {object} response.Resp "VALIDATION_ERROR or INVALID_ARGUMENT"
// @Failure     403 {object} response.Resp "ACCESS_DENIED"
// @Failure     404 {object} response.Resp "RESOURCE_NOT_FOUND"
// @Failure     422 {object} response.Resp "BUSINESS_RULE_VIOLATION"
// @Router      /api/challenges/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		_ = c.Error(h.mapError(err, req.ID))
		return
	}

	response.OK(c, newChallengeResp(output.Challenge))
}

// Delete godoc
// @Summary     Delete a challenge
// @Description Author or ADMIN only.
// @Tags        Challenge
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Challenge ID"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "ACCESS_DENIED"
// @Failure     404 {object} response.Resp "RESOURCE_NOT_FOUND"
// @Router      /api/challenges/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	id, err := h.processIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		_ = c.Error(h.mapError(err, id))
		return
	}

	response.OK(c, nil)
}

// Participate godoc
// @Summary     Join a challenge
// @Tags        Challenge
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Challenge ID"
// @Success     200 {object} challengeResp
// @Failure     404 {object} response.Resp "RESOURCE_NOT_FOUND"
// @Failure     422 {object} response.Resp "BUSINESS_RULE_VIOLATION"
// @Router      /api/challenges/{id}/participate [POST]
func (h *handler) Participate(c *gin.Context) {
	h.participation(c, h.uc.Participate)
}

// Leave godoc
// @Summary     Leave a challenge
// @Tags        Challenge
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Challenge ID"
// @Success     200 {object} challengeResp
// @Failure     404 {object} response.Resp "RESOURCE_NOT_FOUND"
// @Failure     422 {object} response.Resp "BUSINESS_RULE_VIOLATION"
// @Router      /api/challenges/{id}/participate [DELETE]
func (h *handler) Leave(c *gin.Context) {
	h.participation(c, h.uc.Leave)
}

// Start godoc
// @Summary     Start a challenge
// @Description RECRUITING -> IN_PROGRESS. Author or ADMIN only.
// @Tags        Challenge
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Challenge ID"
// @Success     200 {object} challengeResp
// @Failure     403 {object} response.Resp "ACCESS_DENIED"
// @Failure     422 {object} response.Resp "BUSINESS_RULE_VIOLATION"
// @Router      /api/challenges/{id}/start [PATCH]
func (h *handler) Start(c *gin.Context) {
	h.changeStatus(c, challenge.StatusInProgress)
}

// Complete godoc
// @Summary     Complete a challenge
// @Description IN_PROGRESS -> COMPLETED. Author or ADMIN only.
// @Tags        Challenge
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Challenge ID"
// @Success     200 {object} challengeResp
// @Failure     403 {object} response.Resp "ACCESS_DENIED"
// @Failure     422 {object} response.Resp "BUSINESS_RULE_VIOLATION"
// @Router      /api/challenges/{id}/complete [PATCH]
func (h *handler) Complete(c *gin.Context) {
	h.changeStatus(c, challenge.StatusCompleted)
}

// Reopen godoc
// @Summary     Reopen a challenge for recruiting
// @Tags        Challenge
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Challenge ID"
// @Success     200 {object} challengeResp
// @Failure     422 {object} response.Resp "BUSINESS_RULE_VIOLATION"
// @Router      /api/challenges/{id}/reopen [PATCH]
func (h *handler) Reopen(c *gin.Context) {
	h.changeStatus(c, challenge.StatusRecruiting)
}

// Cancel godoc
// @Summary     Cancel a challenge
// @Tags        Challenge
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Challenge ID"
// @Success     200 {object} challengeResp
// @Failure     422 {object} response.Resp "BUSINESS_RULE_VIOLATION"
// @Router      /api/challenges/{id}/cancel [PATCH]
func (h *handler) Cancel(c *gin.Context) {
	h.changeStatus(c, challenge.StatusCancelled)
}

type participationFunc func(ctx context.Context, sc model.Scope, id int64) (challenge.ParticipateOutput, error)

func (h *handler) participation(c *gin.Context, fn participationFunc) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	id, err := h.processIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := fn(ctx, sc, id)
	if err != nil {
		_ = c.Error(h.mapError(err, id))
		return
	}

	response.OK(c, newChallengeResp(output.Challenge))
}

func (h *handler) changeStatus(c *gin.Context, target challenge.Status) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	id, err := h.processIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.ChangeStatus(ctx, sc, challenge.ChangeStatusInput{ID: id, Target: target})
	if err != nil {
		_ = c.Error(h.mapError(err, id))
		return
	}

	response.OK(c, newChallengeResp(output.Challenge))
}
