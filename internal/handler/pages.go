package handler

import (
	"net/http"

	"charm-shop/internal/catalog"
	"charm-shop/internal/middleware"
	"charm-shop/internal/models"
	"charm-shop/internal/session"
	"charm-shop/internal/store"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the HTML pages. The pages are plain views over the
// stores; every template gets the signed-in username, the session's
// favorites and the cart lines for the header badges.
type PageHandler struct {
	Catalog  *catalog.Catalog
	Cart     *store.CartStore
	Sessions *session.Registry
}

func NewPageHandler(cat *catalog.Catalog, cart *store.CartStore, sessions *session.Registry) *PageHandler {
	return &PageHandler{Catalog: cat, Cart: cart, Sessions: sessions}
}

// base assembles the template context shared by every page.
func (h *PageHandler) base(c *gin.Context) gin.H {
	username := ""
	var items []models.CartItem
	if user, ok := middleware.UserFrom(c); ok {
		username = user.Username
		items, _ = h.Cart.ListFor(user.ID)
	}
	return gin.H{
		"user":      username,
		"favorites": h.Sessions.Favorites(middleware.TokenFrom(c)),
		"cart":      items,
		"error":     c.Query("error"),
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.base(c))
}

func (h *PageHandler) CatalogPage(c *gin.Context) {
	data := h.base(c)
	data["product_rows"] = h.Catalog.Rows(3)
	data["brands"] = h.Catalog.Brands()
	c.HTML(http.StatusOK, "catalog.html", data)
}

func (h *PageHandler) FavoritesPage(c *gin.Context) {
	c.HTML(http.StatusOK, "favorites.html", h.base(c))
}

func (h *PageHandler) CartPage(c *gin.Context) {
	data := h.base(c)
	items, _ := data["cart"].([]models.CartItem)
	data["total"] = store.Total(items)
	c.HTML(http.StatusOK, "cart.html", data)
}

func (h *PageHandler) CustomizePage(c *gin.Context) {
	data := h.base(c)
	data["products"] = h.Catalog.Products()
	data["sizes"] = []string{"S", "M", "L"}
	c.HTML(http.StatusOK, "customize.html", data)
}

func (h *PageHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", h.base(c))
}

func (h *PageHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.base(c))
}
