package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookies_SetPair(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewSessionCookies("example.com", true).SetPair(c, "acc", time.Now().Add(time.Hour), "ref", time.Now().Add(24*time.Hour))

	res := w.Result()
	cookies := map[string]*http.Cookie{}
	for _, ck := range res.Cookies() {
		cookies[ck.Name] = ck
	}
	require.Contains(t, cookies, AccessCookie)
	require.Contains(t, cookies, RefreshCookie)

	assert.Equal(t, "/", cookies[AccessCookie].Path)
	assert.Equal(t, RefreshCookiePath, cookies[RefreshCookie].Path)
	assert.True(t, cookies[RefreshCookie].HttpOnly)
	assert.True(t, cookies[RefreshCookie].Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookies[AccessCookie].SameSite)
}

func TestMaxAgeFrom(t *testing.T) {
	assert.Equal(t, -1, maxAgeFrom(time.Now().Add(-time.Minute)))
	assert.InDelta(t, 3600, maxAgeFrom(time.Now().Add(time.Hour)), 2)
}
