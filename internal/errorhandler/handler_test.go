package errorhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	pkgErrors "challenge-admin/pkg/errors"
	"challenge-admin/pkg/i18n"
	"challenge-admin/pkg/log"
)

type errorBody struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	ErrorCode string   `json:"errorCode"`
	Details   []string `json:"details"`
	Timestamp string   `json:"timestamp"`
}

func newTestHandler(t *testing.T) (*handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	h := New(log.NewFromZap(zap.New(core)), Options{
		DefaultLocale: i18n.Korean,
		Registerer:    prometheus.NewRegistry(),
	})
	return h.(*handler), logs
}

func TestResolve(t *testing.T) {
	h, _ := newTestHandler(t)

	_, numErr := strconv.ParseInt("abc", 10, 64)

	tests := []struct {
		name    string
		err     error
		status  int
		code    pkgErrors.Code
		message string
		details []string
	}{
		{
			name:    "validation",
			err:     pkgErrors.NewValidationError("title is required."),
			status:  http.StatusBadRequest,
			code:    pkgErrors.CodeValidation,
			message: i18n.MsgValidation,
			details: []string{"title is required."},
		},
		{
			name:    "invalid argument keeps its message",
			err:     fmt.Errorf("parse: %w", pkgErrors.NewInvalidArgument("page must be positive")),
			status:  http.StatusBadRequest,
			code:    pkgErrors.CodeInvalidArgument,
			message: "page must be positive",
		},
		{
			name:    "strconv error",
			err:     numErr,
			status:  http.StatusBadRequest,
			code:    pkgErrors.CodeInvalidArgument,
			message: numErr.Error(),
		},
		{
			name:    "empty body",
			err:     pkgErrors.NewBindingError(io.EOF),
			status:  http.StatusBadRequest,
			code:    pkgErrors.CodeInvalidArgument,
			message: i18n.MsgEmptyBody,
		},
		{
			name:    "truncated body",
			err:     pkgErrors.NewBindingError(io.ErrUnexpectedEOF),
			status:  http.StatusBadRequest,
			code:    pkgErrors.CodeInvalidArgument,
			message: i18n.MsgMalformedBody,
		},
		{
			name:    "eof outside binding is internal",
			err:     fmt.Errorf("repo.GetOneUser: %w", io.EOF),
			status:  http.StatusInternalServerError,
			code:    pkgErrors.CodeInternal,
			message: i18n.MsgInternal,
		},
		{
			name:    "unexpected eof outside binding is internal",
			err:     fmt.Errorf("upstream read: %w", io.ErrUnexpectedEOF),
			status:  http.StatusInternalServerError,
			code:    pkgErrors.CodeInternal,
			message: i18n.MsgInternal,
		},
		{
			name:    "authentication failed",
			err:     pkgErrors.NewAuthenticationFailed(errors.New("bad password")),
			status:  http.StatusUnauthorized,
			code:    pkgErrors.CodeAuthenticationFailed,
			message: i18n.MsgAuthenticationFailed,
		},
		{
			name:    "access denied",
			err:     pkgErrors.ErrAccessDenied,
			status:  http.StatusForbidden,
			code:    pkgErrors.CodeAccessDenied,
			message: i18n.MsgAccessDenied,
		},
		{
			name:    "authentication required",
			err:     fmt.Errorf("mw.Auth: %w", pkgErrors.NewAuthenticationRequired(errors.New("no token"))),
			status:  http.StatusUnauthorized,
			code:    pkgErrors.CodeAuthenticationRequired,
			message: i18n.MsgAuthenticationRequired,
		},
		{
			name:    "not found by id",
			err:     pkgErrors.NewResourceNotFoundByID(i18n.ResourceChallenge, 12),
			status:  http.StatusNotFound,
			code:    pkgErrors.CodeResourceNotFound,
			message: "challenge not found. (ID: 12)",
		},
		{
			name:    "not found message",
			err:     pkgErrors.NewResourceNotFound("no such thing"),
			status:  http.StatusNotFound,
			code:    pkgErrors.CodeResourceNotFound,
			message: "no such thing",
		},
		{
			name:    "duplicate by field",
			err:     pkgErrors.NewDuplicateResourceByField(i18n.ResourceEmail, "email", "a@b.c"),
			status:  http.StatusConflict,
			code:    pkgErrors.CodeDuplicateResource,
			message: "email already exists. (email: a@b.c)",
		},
		{
			name:    "business rule",
			err:     pkgErrors.NewBusinessLogic(i18n.MsgAlreadyParticipating),
			status:  http.StatusUnprocessableEntity,
			code:    pkgErrors.CodeBusinessRule,
			message: i18n.MsgAlreadyParticipating,
		},
		{
			name:    "too many requests",
			err:     pkgErrors.NewTooManyRequests(i18n.MsgTooManyRequests),
			status:  http.StatusTooManyRequests,
			code:    pkgErrors.CodeTooManyRequests,
			message: i18n.MsgTooManyRequests,
		},
		{
			name:    "explicit http error",
			err:     pkgErrors.NewHTTPError(http.StatusMethodNotAllowed, pkgErrors.CodeMethodNotAllowed, "nope"),
			status:  http.StatusMethodNotAllowed,
			code:    pkgErrors.CodeMethodNotAllowed,
			message: "nope",
		},
		{
			name:    "unknown error hides cause",
			err:     errors.New("pq: connection refused"),
			status:  http.StatusInternalServerError,
			code:    pkgErrors.CodeInternal,
			message: i18n.MsgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := h.Resolve(tt.err, i18n.English)
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.code, p.Code)
			assert.Equal(t, tt.message, p.Message)
			assert.Equal(t, tt.details, p.Details)
			assert.Equal(t, tt.err, p.Cause)
		})
	}
}

func TestResolveKorean(t *testing.T) {
	h, _ := newTestHandler(t)

	p := h.Resolve(pkgErrors.NewResourceNotFoundByID(i18n.ResourceChallenge, 3), i18n.Korean)
	assert.Equal(t, "챌린지를 찾을 수 없습니다. (ID: 3)", p.Message)

	p = h.Resolve(pkgErrors.NewDuplicateResourceByField(i18n.ResourceEmail, "email", "a@b.c"), i18n.Korean)
	assert.Equal(t, "이미 존재하는 이메일입니다. (email: a@b.c)", p.Message)

	p = h.Resolve(errors.New("boom"), i18n.Korean)
	assert.Equal(t, "서버 내부 오류가 발생했습니다. 잠시 후 다시 시도해주세요.", p.Message)
}

func TestResolveFirstMatchWins(t *testing.T) {
	h, _ := newTestHandler(t)

	// Table order decides, not depth in the chain.
	err := pkgErrors.NewAuthenticationRequired(pkgErrors.NewValidationError("x"))
	p := h.Resolve(err, i18n.English)
	assert.Equal(t, pkgErrors.CodeValidation, p.Code)
}

type signupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

func newTestEngine(h *handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(h.Recovery(), h.Middleware())
	r.NoRoute(h.NoRoute)
	r.NoMethod(h.NoMethod)

	r.POST("/signup", func(c *gin.Context) {
		var req signupReq
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(pkgErrors.NewBindingError(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/missing/:id", func(c *gin.Context) {
		_ = c.Error(pkgErrors.NewResourceNotFoundByID(i18n.ResourceChallenge, c.Param("id")))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("nil map write")
	})
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		_ = c.Error(errors.New("late failure"))
	})
	return r
}

func doRequest(r http.Handler, method, target, body, lang string) (*httptest.ResponseRecorder, errorBody) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var eb errorBody
	_ = json.Unmarshal(w.Body.Bytes(), &eb)
	return w, eb
}

func TestMiddlewareValidationDetails(t *testing.T) {
	h, logs := newTestHandler(t)
	r := newTestEngine(h)

	w, body := doRequest(r, http.MethodPost, "/signup", `{"email":"nope","password":"short","role":"ROOT"}`, "en-US")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.ErrorCode)
	assert.Equal(t, i18n.MsgValidation, body.Message)
	assert.Equal(t, []string{
		"email must be a valid email address.",
		"password must be at least 8 characters.",
		"role must be one of [USER, ADMIN].",
	}, body.Details)
	assert.NotEmpty(t, body.Timestamp)

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestMiddlewareValidationKorean(t *testing.T) {
	h, _ := newTestHandler(t)
	r := newTestEngine(h)

	w, body := doRequest(r, http.MethodPost, "/signup", `{}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "입력 정보를 확인해주세요.", body.Message)
	assert.Equal(t, []string{
		"email은(는) 필수 입력 항목입니다.",
		"password은(는) 필수 입력 항목입니다.",
	}, body.Details)
}

func TestMiddlewareBodyErrors(t *testing.T) {
	h, _ := newTestHandler(t)
	r := newTestEngine(h)

	w, body := doRequest(r, http.MethodPost, "/signup", ``, "en")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ARGUMENT", body.ErrorCode)
	assert.Equal(t, i18n.MsgEmptyBody, body.Message)

	w, body = doRequest(r, http.MethodPost, "/signup", `{"email":`, "en")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ARGUMENT", body.ErrorCode)
	assert.Equal(t, i18n.MsgMalformedBody, body.Message)

	w, body = doRequest(r, http.MethodPost, "/signup", `{"email": 5}`, "en")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ARGUMENT", body.ErrorCode)
	assert.Equal(t, "email is invalid.", body.Message)
}

func TestMiddlewareNotFoundAndMetrics(t *testing.T) {
	h, _ := newTestHandler(t)
	r := newTestEngine(h)

	w, body := doRequest(r, http.MethodGet, "/missing/77?lang=en", "", "ko")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RESOURCE_NOT_FOUND", body.ErrorCode)
	assert.Equal(t, "challenge not found. (ID: 77)", body.Message)
	assert.Nil(t, body.Details)

	doRequest(r, http.MethodGet, "/missing/78", "", "")
	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.responses.WithLabelValues("RESOURCE_NOT_FOUND", "404")))
}

func TestRecoveryHidesPanic(t *testing.T) {
	h, logs := newTestHandler(t)
	r := newTestEngine(h)

	w, body := doRequest(r, http.MethodGet, "/panic", "", "en")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.ErrorCode)
	assert.Equal(t, i18n.MsgInternal, body.Message)
	assert.NotContains(t, w.Body.String(), "nil map write")

	errLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errLogs, 1)
	assert.Contains(t, errLogs[0].Message, "nil map write")
}

func TestNoRouteAndNoMethod(t *testing.T) {
	h, _ := newTestHandler(t)
	r := newTestEngine(h)

	w, body := doRequest(r, http.MethodGet, "/nowhere", "", "en")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RESOURCE_NOT_FOUND", body.ErrorCode)
	assert.Equal(t, i18n.MsgRouteNotFound, body.Message)

	w, body = doRequest(r, http.MethodDelete, "/signup", "", "en")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body.ErrorCode)
}

func TestAlreadyWrittenResponseIsKept(t *testing.T) {
	h, logs := newTestHandler(t)
	r := newTestEngine(h)

	w, _ := doRequest(r, http.MethodGet, "/written", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
