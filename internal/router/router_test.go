package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "trackr/backend/docs"
	"trackr/backend/internal/handler"
	"trackr/backend/internal/metrics"
	"trackr/backend/internal/models"
	"trackr/backend/internal/service"
	"trackr/backend/internal/session"
	"trackr/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenResolver maps fixed tokens to sessions.
type tokenResolver map[string]session.Session

func (r tokenResolver) Current(_ context.Context, token string) session.Session {
	if s, ok := r[token]; ok {
		return s
	}
	return session.Session{State: session.StateAnonymous}
}

type emptyHome struct{}

func (emptyHome) Load(context.Context) service.HomeView { return service.HomeView{} }

// listCatalog serves reads only; any other call panics.
type listCatalog struct {
	handler.Catalog
}

func (listCatalog) ListGames(context.Context) ([]models.Game, error) {
	g := models.Game{Name: "Chrono Quest"}
	g.ID = 1
	return []models.Game{g}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *storage.FSStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := storage.NewFSStore(afero.NewMemMapFs(), "http://localhost:8080")
	resolver := tokenResolver{
		"member": {State: session.StateAuthenticated, UserID: "u1", Profile: &models.Profile{UID: "u1", Nickname: "ada", Rid: models.RoleMember}},
		"admin":  {State: session.StateAuthenticated, UserID: "u2", Profile: &models.Profile{UID: "u2", Nickname: "root", Rid: models.RoleAdmin}},
	}
	h := handler.New(handler.Deps{
		Catalog: listCatalog{},
		Home:    emptyHome{},
		Store:   store,
		Metrics: metrics.New(),
		Log:     zerolog.Nop(),
	})
	return New(Options{Handler: h, Sessions: resolver, Storage: store.FileSystem(), Log: zerolog.Nop()}), store
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func view(t *testing.T, w *httptest.ResponseRecorder) handler.PageResponse {
	t.Helper()
	var page handler.PageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page), w.Body.String())
	return page
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestViews(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		path   string
		token  string
		status int
		view   string
	}{
		{"/", "", http.StatusOK, handler.ViewHome},
		{"/login", "", http.StatusOK, handler.ViewLogin},
		{"/register", "", http.StatusOK, handler.ViewRegister},
		{"/dashboard", "", http.StatusOK, handler.ViewLoginRequired},
		{"/settings", "", http.StatusOK, handler.ViewLoginRequired},
		{"/api/v1/dashboard", "", http.StatusOK, handler.ViewLoginRequired},
		{"/settings", "member", http.StatusOK, handler.ViewSettings},
		{"/does-not-exist", "", http.StatusNotFound, handler.ViewNotFound},
		{"/api/v1/nope", "member", http.StatusNotFound, handler.ViewNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.token, func(t *testing.T) {
			w := get(r, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.view, view(t, w).View)
		})
	}
}

func TestShellFollowsSession(t *testing.T) {
	r, _ := newTestRouter(t)

	anon := view(t, get(r, "/", ""))
	assert.Nil(t, anon.Shell.Profile)

	admin := view(t, get(r, "/?theme=light", "admin"))
	require.NotNil(t, admin.Shell.Profile)
	assert.True(t, admin.Shell.Profile.IsAdmin)
	assert.Equal(t, "light", string(admin.Shell.Mode))
}

func TestAccessControl(t *testing.T) {
	r, _ := newTestRouter(t)

	post := func(path, token string) int {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, post("/api/v1/admin/games", ""))
	assert.Equal(t, http.StatusForbidden, post("/api/v1/admin/games", "member"))
	assert.Equal(t, http.StatusForbidden, post("/api/v1/admin/forms/game", "member"))
	assert.Equal(t, http.StatusUnauthorized, post("/api/v1/games/1/follow", ""))
	assert.Equal(t, http.StatusUnauthorized, post("/api/v1/auth/logout", "bogus"))
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/v1/auth/events", "").Code)
}

func TestPublicCatalog(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/api/v1/games", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Chrono Quest"`)
}

func TestStorageServing(t *testing.T) {
	r, store := newTestRouter(t)
	path, err := store.Upload(context.Background(), storage.BucketGames, "cover.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	w := get(r, "/storage/"+storage.BucketGames+"/"+path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
}

func TestMetricsAndSwagger(t *testing.T) {
	r, _ := newTestRouter(t)
	get(r, "/ping", "")

	w := get(r, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `trackr_http_requests_total{method="GET",route="/ping",status="200"} 1`)

	w = get(r, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/auth/register"`)
}
