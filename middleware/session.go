package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-site/services"
)

const (
	sessionKey      = "visitor_session"
	sessionTokenKey = "visitor_session_token"
)

// VisitorSession attaches the visitor's in-memory session to the request,
// creating one (and its cookie) on first visit or after expiry.
func VisitorSession(store *services.SessionStore, cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName)
		token, sess := store.Get(token)

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, token, int(ttl.Seconds()), "/", "", false, true)

		c.Set(sessionKey, sess)
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// Session returns the visitor session set by VisitorSession.
func Session(c *gin.Context) *services.VisitorSession {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*services.VisitorSession); ok {
			return sess
		}
	}
	return nil
}

// SessionToken returns the visitor's session token.
func SessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}
