package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"challenge-admin/internal/model"
	pkgErrors "challenge-admin/pkg/errors"
	"challenge-admin/pkg/i18n"
	"challenge-admin/pkg/scope"
)

var errMissingToken = errors.New("missing bearer token")

// Auth requires a valid access token from the Authorization header or the
// access_token cookie and stores the caller's Scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			m.abort(c, pkgErrors.NewAuthenticationRequired(errMissingToken))
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if errors.Is(err, scope.ErrExpiredToken) {
			// Clients refresh the session on TOKEN_EXPIRED instead of treating it as logged out.
			m.abort(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, pkgErrors.CodeTokenExpired, i18n.MsgTokenExpired))
			return
		}
		if err != nil {
			m.abort(c, pkgErrors.NewAuthenticationRequired(err))
			return
		}

		sc := model.Scope{
			UserID:   payload.UserID,
			Username: payload.Username,
			Email:    payload.Email,
			Role:     model.Role(payload.Role),
			TokenID:  payload.ID,
		}
		if payload.ExpiresAt != nil {
			sc.ExpiresAt = payload.ExpiresAt.Time
		}

		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

// RequireRole must run after Auth.
func (m Middleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := model.GetScopeFromContext(c.Request.Context())
		if !ok {
			m.abort(c, pkgErrors.NewAuthenticationRequired(errMissingToken))
			return
		}
		for _, r := range roles {
			if sc.Role == r {
				c.Next()
				return
			}
		}
		m.abort(c, pkgErrors.NewAccessDenied(fmt.Errorf("user %d has role %s, need one of %v", sc.UserID, sc.Role, roles)))
	}
}

func (m Middleware) abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie(CookieAccessToken); err == nil {
		return cookie
	}
	return ""
}
