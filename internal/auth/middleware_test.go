package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"trackr/backend/internal/models"
	"trackr/backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubResolver map[string]session.Session

func (s stubResolver) Current(_ context.Context, token string) session.Session {
	if sess, ok := s[token]; ok {
		return sess
	}
	return session.Session{State: session.StateAnonymous}
}

var resolver = stubResolver{
	"member": {State: session.StateAuthenticated, UserID: "u1", Profile: &models.Profile{UID: "u1", Rid: models.RoleMember}},
	"admin":  {State: session.StateAuthenticated, UserID: "u2", Profile: &models.Profile{UID: "u2", Rid: models.RoleAdmin}},
	"noprof": {State: session.StateAuthenticated, UserID: "u3"},
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/optional", OptionalAuthMiddleware(resolver), func(c *gin.Context) {
		c.String(http.StatusOK, string(GetSession(c).State))
	})
	r.GET("/private", AuthMiddleware(resolver), func(c *gin.Context) {
		c.String(http.StatusOK, GetSession(c).UserID)
	})
	r.GET("/admin", AuthMiddleware(resolver), AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMiddlewares(t *testing.T) {
	r := newRouter()
	tests := []struct {
		name, path, token string
		status            int
		body              string
	}{
		{"optional anonymous", "/optional", "", http.StatusOK, "anonymous"},
		{"optional bad token", "/optional", "junk", http.StatusOK, "anonymous"},
		{"optional member", "/optional", "member", http.StatusOK, "authenticated"},
		{"private anonymous", "/private", "", http.StatusUnauthorized, ""},
		{"private member", "/private", "member", http.StatusOK, "u1"},
		{"admin as member", "/admin", "member", http.StatusForbidden, ""},
		{"admin without profile", "/admin", "noprof", http.StatusNotFound, ""},
		{"admin", "/admin", "admin", http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestBearerTokenFromQuery(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private?access_token=member", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/private?access_token=member", nil)
	req.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
