package handler

import (
	"strconv"

	"charm-shop/internal/catalog"
	"charm-shop/internal/middleware"
	"charm-shop/internal/session"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler serves the favorites mutations. Favorites are kept on
// the session record only; they vanish with the session.
type FavoriteHandler struct {
	Catalog  *catalog.Catalog
	Sessions *session.Registry
}

func NewFavoriteHandler(cat *catalog.Catalog, sessions *session.Registry) *FavoriteHandler {
	return &FavoriteHandler{Catalog: cat, Sessions: sessions}
}

// AddFavorite handles POST /add_favorite.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	token := middleware.TokenFrom(c)

	productID, err := strconv.Atoi(c.PostForm("product_id"))
	if err != nil {
		redirectBack(c, "/catalog", "product_not_found")
		return
	}
	p, ok := h.Catalog.Find(productID)
	if !ok {
		redirectBack(c, "/catalog", "product_not_found")
		return
	}

	h.Sessions.AddFavorite(token, p)
	redirectBack(c, "/catalog", "")
}

// RemoveFavorite handles POST /remove_favorite. Removing a product that
// is not on the list is a no-op.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	token := middleware.TokenFrom(c)

	if productID, err := strconv.Atoi(c.PostForm("product_id")); err == nil {
		h.Sessions.RemoveFavorite(token, productID)
	}
	redirectBack(c, "/favorites", "")
}
