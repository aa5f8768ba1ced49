package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys. The presence of SessionUserID is the whole of the
// authorization model: authenticated is binary.
const (
	SessionUserID       = "user_id"
	SessionUsername     = "username"
	SessionFullname     = "fullname"
	SessionProfileImage = "profile_image"
	SessionLanguage     = "language"
)

// LoginRequired redirects unauthenticated requests to the login page
// with a notice instead of invoking the handler.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(SessionUserID) == nil {
			session.AddFlash("Please log in to access this page.")
			_ = session.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user's id from the session.
func CurrentUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	val := session.Get(SessionUserID)
	if val == nil {
		return 0, false
	}
	id, ok := val.(uint)
	if !ok {
		return 0, false
	}
	return id, true
}

// CurrentUsername returns the session username, or "" when absent.
func CurrentUsername(c *gin.Context) string {
	session := sessions.Default(c)
	if name, ok := session.Get(SessionUsername).(string); ok {
		return name
	}
	return ""
}
