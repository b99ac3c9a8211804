package handler

import (
	"errors"
	"net/http"

	"charm-shop/internal/middleware"
	"charm-shop/internal/session"
	"charm-shop/internal/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and logout. Outcomes travel as
// 303 redirects; failures carry an error code in the query string for
// the page templates to render.
type AuthHandler struct {
	Accounts *store.AccountStore
	Sessions *session.Registry
}

func NewAuthHandler(accounts *store.AccountStore, sessions *session.Registry) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Sessions: sessions}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("password_confirm")

	user, err := h.Accounts.Register(username, email, password, confirm)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPasswordMismatch):
			c.Redirect(http.StatusSeeOther, "/register?error=passwords_mismatch")
		case errors.Is(err, store.ErrUsernameTaken):
			c.Redirect(http.StatusSeeOther, "/register?error=username_taken")
		default:
			c.String(http.StatusInternalServerError, "server error")
		}
		return
	}

	token := h.Sessions.Create(user.Username)
	session.SetCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.Accounts.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			c.Redirect(http.StatusSeeOther, "/login?error=invalid_credentials")
		} else {
			c.String(http.StatusInternalServerError, "server error")
		}
		return
	}

	token := h.Sessions.Create(user.Username)
	session.SetCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles GET /logout. Destroying an already-dead session is fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.TokenFrom(c); token != "" {
		h.Sessions.Destroy(token)
	}
	session.ClearCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}
