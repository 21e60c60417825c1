package middleware

import (
	"challenge-admin/pkg/log"
	"challenge-admin/pkg/scope"
)

const (
	HeaderRequestID   = "X-Request-ID"
	CookieAccessToken = "access_token"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
}

func New(l log.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
