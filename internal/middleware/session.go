package middleware

import (
	"net/http"

	"charm-shop/internal/models"
	"charm-shop/internal/session"
	"charm-shop/internal/store"

	"github.com/gin-gonic/gin"
)

// CurrentUser resolves the session cookie to an account and puts it in
// the gin context. Anonymous requests pass through with nothing set;
// resolution never fails a request on its own.
func CurrentUser(registry *session.Registry, accounts *store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.TokenFrom(c)
		c.Set("sessionToken", token)

		username, ok := registry.Resolve(token)
		if ok {
			if user, err := accounts.FindByUsername(username); err == nil {
				c.Set("currentUser", user)
			}
		}
		c.Next()
	}
}

// RequireUser guards mutating routes: anonymous requests are sent to the
// login page before they can reach the stores.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserFrom(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserFrom extracts the resolved account from the gin context.
func UserFrom(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// TokenFrom extracts the raw session token from the gin context.
func TokenFrom(c *gin.Context) string {
	return c.GetString("sessionToken")
}
