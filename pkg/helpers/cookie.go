package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"

	// RefreshCookiePath keeps the refresh token off every request except the
	// auth endpoints that consume it.
	RefreshCookiePath = "/api/auth"
)

// SessionCookies writes the token pair as HttpOnly cookies.
type SessionCookies struct {
	Domain string
	Secure bool
}

func NewSessionCookies(domain string, secure bool) *SessionCookies {
	return &SessionCookies{Domain: domain, Secure: secure}
}

func (s *SessionCookies) SetPair(c *gin.Context, access string, aexp time.Time, refresh string, rexp time.Time) {
	c.SetSameSite(s.sameSite())
	c.SetCookie(AccessCookie, access, maxAgeFrom(aexp), "/", s.Domain, s.Secure, true)
	c.SetCookie(RefreshCookie, refresh, maxAgeFrom(rexp), RefreshCookiePath, s.Domain, s.Secure, true)
}

func (s *SessionCookies) Clear(c *gin.Context) {
	c.SetSameSite(s.sameSite())
	c.SetCookie(AccessCookie, "", -1, "/", s.Domain, s.Secure, true)
	c.SetCookie(RefreshCookie, "", -1, RefreshCookiePath, s.Domain, s.Secure, true)
}

// sameSite is strict on HTTPS deployments; plain-HTTP dev setups need Lax so
// the frontend dev server can still send cookies.
func (s *SessionCookies) sameSite() http.SameSite {
	if s.Secure {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}

// maxAgeFrom converts an expiry into a cookie Max-Age. An already expired
// time yields -1 so the browser drops the cookie instead of keeping a
// session cookie.
func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec <= 0 {
		return -1
	}
	return sec
}
