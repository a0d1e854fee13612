package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/ping", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))
}

func TestDomainCounters(t *testing.T) {
	m := New()
	m.SignIn("success")
	m.FollowToggled("game", true)
	m.FollowToggled("game", false)
	m.Uploaded("game")
	m.FormSubmitted("console", "ok")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.signIns.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.followToggles.WithLabelValues("game", "off")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploads.WithLabelValues("game")))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "trackr_sign_ins_total")
}
