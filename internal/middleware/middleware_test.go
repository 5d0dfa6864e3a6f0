package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type tokenTable map[string]appauth.Session

func (t tokenTable) Authenticate(_ context.Context, token string) (appauth.Session, error) {
	if token == "expired" {
		return appauth.Session{}, apperrors.ErrTokenExpired
	}
	session, ok := t[token]
	if !ok {
		return appauth.Session{}, fmt.Errorf("%w: unknown", apperrors.ErrTokenInvalid)
	}
	return session, nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func newRouter() *gin.Engine {
	m := NewAuthMiddleware(tokenTable{
		"student-token": {UserID: "s-1", Email: "s@uni.edu", Role: appauth.StudentRole{}},
		"admin-token":   {UserID: "a-1", Email: "a@uni.edu", Role: appauth.AdminRole{}},
	})

	r := gin.New()
	r.Use(Recovery(zerolog.Nop()), RequestLogger(zerolog.Nop()))
	api := r.Group("/", m.JWTAuth())
	api.GET("/me", func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(UserIDKey), "role": session.Role.Type()})
	})
	api.GET("/admin", m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestJWTAuth(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		url    string
		header string
		status int
		code   dto.ErrorCode
	}{
		{name: "bearer header", url: "/me", header: "Bearer student-token", status: http.StatusOK},
		{name: "quoted header", url: "/me", header: `"Bearer student-token"`, status: http.StatusOK},
		{name: "query token", url: "/me?token=student-token", status: http.StatusOK},
		{name: "missing", url: "/me", status: http.StatusUnauthorized, code: dto.ErrorCodeUnauthorized},
		{name: "unknown token", url: "/me", header: "Bearer nope", status: http.StatusUnauthorized, code: dto.ErrorCodeInvalidToken},
		{name: "expired token", url: "/me", header: "Bearer expired", status: http.StatusUnauthorized, code: dto.ErrorCodeExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
			if tt.code != "" {
				resp := decode(t, w)
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.code, resp.Error.Code)
				assert.False(t, resp.Success)
			} else {
				assert.Contains(t, w.Body.String(), `"userID":"s-1"`)
			}
		})
	}
}

func TestRoleRequired(t *testing.T) {
	r := newRouter()

	for token, status := range map[string]int{"admin-token": http.StatusNoContent, "student-token": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, status, w.Code, token)
	}
}

func TestRecovery(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, dto.ErrorCodeInternalServer, resp.Error.Code)
	assert.Equal(t, dto.ErrorSeverityCritical, resp.Error.Severity)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"backend required", fmt.Errorf("update: %w", apperrors.ErrBackendRequired), http.StatusServiceUnavailable, dto.ErrorCodeBackendRequired, "This operation needs a live database"},
		{"not found keeps message", apperrors.NewResourceNotFoundError("injury not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "injury not found"},
		{"domain not found", apperrors.NewCustomError(fmt.Errorf("%w: %w", apperrors.ErrPlanNotFound, apperrors.ErrResourceNotFound), "treatment plan not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "treatment plan not found"},
		{"forbidden", apperrors.NewForbiddenError("not your injury"), http.StatusForbidden, dto.ErrorCodeForbidden, "not your injury"},
		{"validation", apperrors.NewValidationError("painLevel must be 0-10"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "painLevel must be 0-10"},
		{"conflict", apperrors.NewConflictError("already cleared"), http.StatusConflict, dto.ErrorCodeConflict, "already cleared"},
		{"undo", apperrors.ErrNothingToUndo, http.StatusConflict, dto.ErrorCodeConflict, "Nothing to undo"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}

func TestBindJSON(t *testing.T) {
	type body struct {
		Name string `json:"name" binding:"required"`
	}

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var b body
		if !BindJSON(c, &b) {
			return
		}
		c.String(http.StatusOK, b.Name)
	})

	for payload, status := range map[string]int{`{"name":"ok"}`: http.StatusOK, `{}`: http.StatusBadRequest, `{`: http.StatusBadRequest} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(payload)))
		assert.Equal(t, status, w.Code, payload)
	}
}
