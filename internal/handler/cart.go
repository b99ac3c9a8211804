package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"charm-shop/internal/catalog"
	"charm-shop/internal/customize"
	"charm-shop/internal/middleware"
	"charm-shop/internal/store"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the cart mutations. All routes here sit behind
// RequireUser, so a resolved account is always present.
type CartHandler struct {
	Cart    *store.CartStore
	Catalog *catalog.Catalog
}

func NewCartHandler(cart *store.CartStore, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{Cart: cart, Catalog: cat}
}

// AddCart handles POST /add_cart.
func (h *CartHandler) AddCart(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	productID, err := strconv.Atoi(c.PostForm("product_id"))
	if err != nil {
		redirectBack(c, "/catalog", "product_not_found")
		return
	}

	if _, err := h.Cart.AddCatalogItem(user.ID, productID); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			redirectBack(c, "/catalog", "product_not_found")
		} else {
			c.String(http.StatusInternalServerError, "server error")
		}
		return
	}
	redirectBack(c, "/catalog", "")
}

// RemoveCart handles POST /remove_cart. The product_id field carries the
// cart item id. Missing or foreign items are silently ignored.
func (h *CartHandler) RemoveCart(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	itemID, err := strconv.ParseUint(c.PostForm("product_id"), 10, 64)
	if err == nil {
		if err := h.Cart.Remove(user.ID, uint(itemID)); err != nil {
			c.String(http.StatusInternalServerError, "server error")
			return
		}
	}
	redirectBack(c, "/cart", "")
}

// CustomizeAddCart handles POST /customize_add_cart.
func (h *CartHandler) CustomizeAddCart(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	baseID, err := strconv.Atoi(c.PostForm("base_product_id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/customize?error=invalid_params")
		return
	}

	desc, err := customize.Validate(h.Catalog, baseID, c.PostForm("color"), c.PostForm("size"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/customize?error=invalid_params")
		return
	}

	if _, err := h.Cart.AddCustomItem(user.ID, desc); err != nil {
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// redirectBack sends the client to the referring page, or to fallback
// when the referrer is absent, optionally tagging an error code.
func redirectBack(c *gin.Context, fallback, errCode string) {
	target := c.Request.Referer()
	if target == "" {
		target = fallback
	}
	if errCode != "" {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target = target + sep + "error=" + errCode
	}
	c.Redirect(http.StatusSeeOther, target)
}
