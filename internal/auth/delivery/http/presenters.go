package http

import (
	"challenge-admin/internal/auth"
	"challenge-admin/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Email    string `json:"email"    binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

// ---

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput(clientIP string) auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
		ClientIP: clientIP,
	}
}

// ---

type listUsersReq struct {
	Limit  int `form:"limit"  binding:"omitempty,gte=0"`
	Offset int `form:"offset" binding:"omitempty,gte=0"`
}

func (r listUsersReq) toInput() auth.ListUsersInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return auth.ListUsersInput{Limit: limit, Offset: r.Offset}
}

// --- Response DTOs ---

type userResp struct {
	ID        int64             `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	CreatedAt response.DateTime `json:"createdAt"`
}

func newUserResp(u auth.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type loginResp struct {
	Token       string   `json:"token"`
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Authorities []string `json:"authorities"`
	ExpiresIn   int64    `json:"expiresIn"`
}

func (h *handler) newLoginResp(out auth.LoginOutput, expiresIn int64) loginResp {
	return loginResp{
		Token:       out.Token,
		ID:          out.User.ID,
		Username:    out.User.Username,
		Email:       out.User.Email,
		Role:        string(out.User.Role),
		Authorities: []string{"ROLE_" + string(out.User.Role)},
		ExpiresIn:   expiresIn,
	}
}

type listUsersResp struct {
	Users  []userResp `json:"users"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListUsersResp(out auth.ListUsersOutput) listUsersResp {
	users := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = newUserResp(u)
	}
	return listUsersResp{
		Users:  users,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
