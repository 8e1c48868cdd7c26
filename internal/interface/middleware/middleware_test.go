package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

type fakeSessions map[string]map[string]string

func (f fakeSessions) Get(_ context.Context, userID string) (map[string]string, error) {
	if userID == "boom" {
		return nil, errors.New("redis down")
	}
	return f[userID], nil
}

func newJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("access", "refresh", time.Hour, 2*time.Hour)
}

func protected(sessions SessionLookup, jwt *helpers.JWTManager, mws ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{Auth(sessions, jwt)}, mws...)
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c)+"|"+string(Role(c)))
	})
	r.GET("/p", chain...)
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	jwt := newJWT()
	token, _, err := jwt.GenerateAccessToken("u1", "seller", "sid-1")
	require.NoError(t, err)
	sessions := fakeSessions{"u1": {"sid": "sid-1"}}
	r := protected(sessions, jwt)

	t.Run("BearerHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := do(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1|seller", w.Body.String())
	})

	t.Run("Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: token})
		assert.Equal(t, http.StatusOK, do(r, req).Code)
	})

	t.Run("Missing", func(t *testing.T) {
		w := do(r, httptest.NewRequest(http.MethodGet, "/p", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "missing access token")
	})

	t.Run("Garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, do(r, req).Code)
	})

	t.Run("LoggedOut", func(t *testing.T) {
		r := protected(fakeSessions{}, jwt)
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := do(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "session not found")
	})

	t.Run("RotatedSession", func(t *testing.T) {
		r := protected(fakeSessions{"u1": {"sid": "sid-2"}}, jwt)
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, do(r, req).Code)
	})

	t.Run("SessionStoreError", func(t *testing.T) {
		tok, _, _ := jwt.GenerateAccessToken("boom", "buyer", "s")
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, do(r, req).Code)
	})

	t.Run("NoSessionTracking", func(t *testing.T) {
		r := protected(nil, jwt)
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusOK, do(r, req).Code)
	})
}

func TestRequireRole(t *testing.T) {
	jwt := newJWT()
	r := protected(nil, jwt, RequireRole(entity.RoleAdmin))

	buyer, _, _ := jwt.GenerateAccessToken("u1", "buyer", "s")
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+buyer)
	w := do(r, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")

	admin, _, _ := jwt.GenerateAccessToken("u2", "admin", "s")
	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	assert.Equal(t, http.StatusOK, do(r, req).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "3f2b9a4e-4b1c-4d8e-9f6a-2c1d0e7b5a91")
	w = do(r, req)
	assert.Equal(t, "3f2b9a4e-4b1c-4d8e-9f6a-2c1d0e7b5a91", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = do(r, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestRealIP(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRealIPKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", do(r, req).Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("CF-Connecting-IP", "198.51.100.2")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "198.51.100.2", do(r, req).Body.String())
}

func TestRateLimit_LocalFallback(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", RateLimit(nil, 2, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	get := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", ip)
		return do(r, req)
	}

	assert.Equal(t, http.StatusOK, get("203.0.113.1").Code)
	w := get("203.0.113.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))

	w = get("203.0.113.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, get("203.0.113.2").Code)
}

func TestRateLimit_Bypass(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP(), AllowPrivateIP()), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.1.2.3:5555"
		assert.Equal(t, http.StatusOK, do(r, req).Code)
	}
}

func TestLocalLimiter_Sweep(t *testing.T) {
	l := newLocalLimiter(1, time.Second)
	now := time.Unix(1000, 0)
	l.now = func() time.Time { return now }

	_, _ = l.check(nil, "a")
	require.Len(t, l.buckets, 1)

	now = now.Add(2 * time.Second)
	_, _ = l.check(nil, "b")
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "b")
}
