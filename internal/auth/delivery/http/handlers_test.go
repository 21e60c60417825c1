package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"challenge-admin/internal/auth"
	authHTTP "challenge-admin/internal/auth/delivery/http"
	authSqlite "challenge-admin/internal/auth/repository/sqlite"
	"challenge-admin/internal/auth/usecase"
	"challenge-admin/internal/errorhandler"
	"challenge-admin/internal/middleware"
	"challenge-admin/pkg/encrypter"
	"challenge-admin/pkg/i18n"
	"challenge-admin/pkg/log"
	"challenge-admin/pkg/ratelimit"
	"challenge-admin/pkg/scope"
	pkgSqlite "challenge-admin/pkg/sqlite"
)

type body struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"errorCode"`
	Details   []string        `json:"details"`
	Data      json.RawMessage `json:"data"`
}

type testServer struct {
	r  *gin.Engine
	uc auth.UseCase
}

func newServer(t *testing.T, loginsPerMin int) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	errorhandler.RegisterJSONFieldNames()
	ctx := context.Background()

	db, err := pkgSqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, authSqlite.Migrate(ctx, db))

	jwtManager, err := scope.New("secret", "test", time.Hour)
	require.NoError(t, err)

	l := log.NewNop()
	uc := usecase.New(authSqlite.New(db, l), l, encrypter.New(bcrypt.MinCost), jwtManager, ratelimit.New(loginsPerMin))
	eh := errorhandler.New(l, errorhandler.Options{DefaultLocale: i18n.English, Registerer: prometheus.NewRegistry()})

	r := gin.New()
	r.Use(eh.Recovery(), eh.Middleware())
	authHTTP.RegisterRoutes(r.Group("/api"), authHTTP.New(l, uc, false), middleware.New(l, jwtManager))
	return testServer{r: r, uc: uc}
}

func (s testServer) do(t *testing.T, method, target, payload, token string) (*httptest.ResponseRecorder, body) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)

	var b body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b), w.Body.String())
	return w, b
}

func (s testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w, b := s.do(t, http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(b.Data, &data))
	return data.Token
}

func TestRegisterEndpoint(t *testing.T) {
	s := newServer(t, 600)

	w, b := s.do(t, http.MethodPost, "/api/auth/register", `{"username":"alice","email":"alice@example.com","password":"password1"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, b.Success)

	t.Run("duplicate email", func(t *testing.T) {
		w, b := s.do(t, http.MethodPost, "/api/auth/register", `{"username":"alice","email":"alice@example.com","password":"password1"}`, "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "DUPLICATE_RESOURCE", b.ErrorCode)
		assert.Equal(t, "email already exists. (email: alice@example.com)", b.Message)
	})

	t.Run("validation", func(t *testing.T) {
		w, b := s.do(t, http.MethodPost, "/api/auth/register", `{"username":"bob","email":"not-an-email","password":"short"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", b.ErrorCode)
		assert.ElementsMatch(t, []string{
			"email must be a valid email address.",
			"password must be at least 8 characters.",
		}, b.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		w, b := s.do(t, http.MethodPost, "/api/auth/register", `{"username":`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_ARGUMENT", b.ErrorCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	s := newServer(t, 600)
	_, err := s.uc.Register(context.Background(), auth.RegisterInput{Username: "carol", Email: "carol@example.com", Password: "password1"})
	require.NoError(t, err)

	t.Run("success sets cookie", func(t *testing.T) {
		w, b := s.do(t, http.MethodPost, "/api/auth/login", `{"email":"carol@example.com","password":"password1"}`, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, b.Success)
		assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.CookieAccessToken+"=")

		var data map[string]any
		require.NoError(t, json.Unmarshal(b.Data, &data))
		assert.Equal(t, "USER", data["role"])
		assert.Equal(t, []any{"ROLE_USER"}, data["authorities"])
		assert.NotEmpty(t, data["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w, b := s.do(t, http.MethodPost, "/api/auth/login", `{"email":"carol@example.com","password":"wrong-one"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "AUTHENTICATION_FAILED", b.ErrorCode)
		assert.Equal(t, i18n.MsgAuthenticationFailed, b.Message)
	})
}

func TestLoginRateLimit(t *testing.T) {
	s := newServer(t, 1)

	w, _ := s.do(t, http.MethodPost, "/api/auth/login", `{"email":"x@example.com","password":"whatever"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, b := s.do(t, http.MethodPost, "/api/auth/login", `{"email":"x@example.com","password":"whatever"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", b.ErrorCode)
	assert.Equal(t, i18n.MsgTooManyRequests, b.Message)
}

func TestMeLogoutAndUsers(t *testing.T) {
	s := newServer(t, 600)
	ctx := context.Background()
	_, err := s.uc.Register(ctx, auth.RegisterInput{Username: "dave", Email: "dave@example.com", Password: "password1"})
	require.NoError(t, err)
	require.NoError(t, s.uc.EnsureAdmin(ctx, auth.EnsureAdminInput{Username: "root", Email: "root@example.com", Password: "rootpass1"}))

	token := s.login(t, "dave@example.com", "password1")

	w, b := s.do(t, http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(b.Data), `"username":"dave"`)

	w, b = s.do(t, http.MethodGet, "/api/users", "", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ACCESS_DENIED", b.ErrorCode)

	adminToken := s.login(t, "root@example.com", "rootpass1")
	w, b = s.do(t, http.MethodGet, "/api/users?limit=10", "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(b.Data), `"total":2`)

	w, b = s.do(t, http.MethodGet, "/api/users?limit=-1", "", adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", b.ErrorCode)

	w, _ = s.do(t, http.MethodPost, "/api/auth/logout", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w, b = s.do(t, http.MethodGet, "/api/auth/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", b.ErrorCode)
}
