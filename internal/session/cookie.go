package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_id"

// SetCookie issues the session cookie to the client. No MaxAge: the
// cookie lives for the browser session, like the registry entry it names.
func SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, 0, "/", "", false, true)
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// TokenFrom reads the session token from the request cookie, returning
// the empty string when absent.
func TokenFrom(c *gin.Context) string {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return token
}
