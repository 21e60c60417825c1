package http

import (
	"time"

	"challenge-admin/internal/challenge"
	pkgErrors "challenge-admin/pkg/errors"
	"challenge-admin/pkg/i18n"
	"challenge-admin/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title        string `json:"title"        binding:"required,max=100"`
	Description  string `json:"description"  binding:"max=2000"`
	StartDate    string `json:"startDate"    binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate"      binding:"required,datetime=2006-01-02"`
	RewardAmount int64  `json:"rewardAmount" binding:"gte=0"`
	RewardType   string `json:"rewardType"   binding:"required,oneof=CASH POINT ITEM"`
}

func (r createReq) toInput() (challenge.CreateInput, error) {
	start, err := time.Parse(response.DateFormat, r.StartDate)
	if err != nil {
		return challenge.CreateInput{}, pkgErrors.WrapInvalidArgument(i18n.MsgMalformedBody, err)
	}
	end, err := time.Parse(response.DateFormat, r.EndDate)
	if err != nil {
		return challenge.CreateInput{}, pkgErrors.WrapInvalidArgument(i18n.MsgMalformedBody, err)
	}
	return challenge.CreateInput{
		Title:        r.Title,
		Description:  r.Description,
		StartDate:    start,
		EndDate:      end,
		RewardAmount: r.RewardAmount,
		RewardType:   challenge.RewardType(r.RewardType),
	}, nil
}

// ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"  binding:"omitempty,gte=0"`
	Offset int    `form:"offset" binding:"omitempty,gte=0"`
}

func (r listReq) toInput() challenge.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return challenge.ListInput{
		Status: challenge.Status(r.Status),
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID           int64  `json:"-"` // populated from URI param
	Title        string `json:"title"        binding:"omitempty,max=100"`
	Description  string `json:"description"  binding:"omitempty,max=2000"`
	StartDate    string `json:"startDate"    binding:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"endDate"      binding:"omitempty,datetime=2006-01-02"`
	RewardAmount *int64 `json:"rewardAmount" binding:"omitempty,gte=0"`
	RewardType   string `json:"rewardType"   binding:"omitempty,oneof=CASH POINT ITEM"`
}

func (r updateReq) toInput() (challenge.UpdateInput, error) {
	start, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return challenge.UpdateInput{}, err
	}
	end, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return challenge.UpdateInput{}, err
	}
	return challenge.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		StartDate:    start,
		EndDate:      end,
		RewardAmount: r.RewardAmount,
		RewardType:   challenge.RewardType(r.RewardType),
	}, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return nil, pkgErrors.WrapInvalidArgument(i18n.MsgMalformedBody, err)
	}
	return &d, nil
}

// --- Response DTOs ---

type challengeResp struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	AuthorID         int64             `json:"authorId"`
	Status           string            `json:"status"`
	StartDate        response.Date     `json:"startDate"`
	EndDate          response.Date     `json:"endDate"`
	RewardAmount     int64             `json:"rewardAmount"`
	RewardType       string            `json:"rewardType"`
	ParticipantIDs   []int64           `json:"participantIds"`
	ParticipantCount int               `json:"participantCount"`
	CreatedAt        response.DateTime `json:"createdAt"`
	UpdatedAt        response.DateTime `json:"updatedAt"`
}

func newChallengeResp(ch challenge.Challenge) challengeResp {
	participants := ch.ParticipantIDs
	if participants == nil {
		participants = []int64{}
	}
	return challengeResp{
		ID:               ch.ID,
		Title:            ch.Title,
		Description:      ch.Description,
		AuthorID:         ch.AuthorID,
		Status:           string(ch.Status),
		StartDate:        response.Date(ch.StartDate),
		EndDate:          response.Date(ch.EndDate),
		RewardAmount:     ch.RewardAmount,
		RewardType:       string(ch.RewardType),
		ParticipantIDs:   participants,
		ParticipantCount: len(participants),
		CreatedAt:        response.DateTime(ch.CreatedAt),
		UpdatedAt:        response.DateTime(ch.UpdatedAt),
	}
}

type listResp struct {
	Challenges []challengeResp `json:"challenges"`
	Total      int             `json:"total"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

func (h *handler) newListResp(out challenge.ListOutput) listResp {
	challenges := make([]challengeResp, len(out.Challenges))
	for i, ch := range out.Challenges {
		challenges[i] = newChallengeResp(ch)
	}
	return listResp{
		Challenges: challenges,
		Total:      out.Total,
		Limit:      out.Limit,
		Offset:     out.Offset,
	}
}
