package model

import (
	"context"
	"time"
)

// Role is a user's authorization role.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Scope is the authenticated caller of a request.
type Scope struct {
	UserID    int64
	Username  string
	Email     string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin reports whether the caller has the ADMIN role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the Scope stored by the auth middleware.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok
}
