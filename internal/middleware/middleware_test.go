package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"challenge-admin/internal/errorhandler"
	"challenge-admin/internal/middleware"
	"challenge-admin/internal/model"
	"challenge-admin/pkg/i18n"
	"challenge-admin/pkg/log"
	"challenge-admin/pkg/scope"
)

func setup(t *testing.T) (*gin.Engine, scope.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager, err := scope.New("secret", "test", time.Hour)
	require.NoError(t, err)

	l := log.NewNop()
	eh := errorhandler.New(l, errorhandler.Options{DefaultLocale: i18n.English, Registerer: prometheus.NewRegistry()})
	mw := middleware.New(l, jwtManager)

	r := gin.New()
	r.Use(mw.RequestID(), eh.Middleware())
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": sc.UserID, "request_id": log.RequestIDFrom(c.Request.Context())})
	})
	r.GET("/admin", mw.Auth(), mw.RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, jwtManager
}

func TestAuth(t *testing.T) {
	r, jwtManager := setup(t)

	userToken, _, err := jwtManager.CreateToken(scope.Payload{UserID: 5, Role: string(model.RoleUser)})
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"errorCode":"AUTHENTICATION_REQUIRED"`)
	})

	t.Run("bad scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		req.Header.Set(middleware.HeaderRequestID, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":5,"request_id":"req-42"}`, w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieAccessToken, Value: userToken})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("expired", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		claims := scope.Payload{UserID: 7, RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired-1",
			Issuer:    "test",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"errorCode":"TOKEN_EXPIRED"`)
		assert.Contains(t, w.Body.String(), i18n.MsgTokenExpired)
	})

	t.Run("revoked", func(t *testing.T) {
		token, _, err := jwtManager.CreateToken(scope.Payload{UserID: 6})
		require.NoError(t, err)
		p, err := jwtManager.Verify(token)
		require.NoError(t, err)
		jwtManager.Revoke(p.ID)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"errorCode":"AUTHENTICATION_REQUIRED"`)
	})
}

func TestRequireRole(t *testing.T) {
	r, jwtManager := setup(t)

	userToken, _, err := jwtManager.CreateToken(scope.Payload{UserID: 5, Role: string(model.RoleUser)})
	require.NoError(t, err)
	adminToken, _, err := jwtManager.CreateToken(scope.Payload{UserID: 1, Role: string(model.RoleAdmin)})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"errorCode":"ACCESS_DENIED"`)
	assert.Contains(t, w.Body.String(), i18n.MsgAccessDenied)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	l := log.NewFromZap(zap.New(core))

	jwtManager, err := scope.New("secret", "test", time.Hour)
	require.NoError(t, err)
	eh := errorhandler.New(l, errorhandler.Options{DefaultLocale: i18n.English, Registerer: prometheus.NewRegistry()})
	mw := middleware.New(l, jwtManager)

	r := gin.New()
	r.Use(mw.RequestID(), mw.AccessLog(), eh.Middleware())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/me", mw.Auth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))

	info := logs.FilterMessageSnippet("GET /ok 200").All()
	require.Len(t, info, 1)
	assert.Equal(t, zapcore.InfoLevel, info[0].Level)
	assert.NotEmpty(t, info[0].ContextMap()["request_id"])

	warn := logs.FilterMessageSnippet("GET /me 401").All()
	require.Len(t, warn, 1)
	assert.Equal(t, zapcore.WarnLevel, warn[0].Level)
}
