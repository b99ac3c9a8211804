package router

import (
	"charm-shop/internal/catalog"
	"charm-shop/internal/config"
	"charm-shop/internal/handler"
	"charm-shop/internal/middleware"
	"charm-shop/internal/session"
	"charm-shop/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, templates and static resources.
func SetupRouter(cfg *config.Config, db *gorm.DB, cat *catalog.Catalog, sessions *session.Registry) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	accounts := store.NewAccountStore(db, cfg.Security.BcryptCost)
	cart := store.NewCartStore(db, cat)

	r.Use(middleware.CurrentUser(sessions, accounts))

	pages := handler.NewPageHandler(cat, cart, sessions)
	r.GET("/", pages.Home)
	r.GET("/catalog", pages.CatalogPage)
	r.GET("/favorites", pages.FavoritesPage)
	r.GET("/cart", pages.CartPage)
	r.GET("/customize", pages.CustomizePage)
	r.GET("/register", pages.RegisterPage)
	r.GET("/login", pages.LoginPage)

	auth := handler.NewAuthHandler(accounts, sessions)
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/logout", auth.Logout)

	// mutations require a signed-in user; anonymous requests go to /login
	authed := r.Group("", middleware.RequireUser())

	carts := handler.NewCartHandler(cart, cat)
	authed.POST("/add_cart", carts.AddCart)
	authed.POST("/remove_cart", carts.RemoveCart)
	authed.POST("/customize_add_cart", carts.CustomizeAddCart)

	favorites := handler.NewFavoriteHandler(cat, sessions)
	authed.POST("/add_favorite", favorites.AddFavorite)
	authed.POST("/remove_favorite", favorites.RemoveFavorite)

	return r
}
